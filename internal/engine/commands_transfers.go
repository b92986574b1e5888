package engine

import (
	"bankreplay/internal/ledger"
	"bankreplay/internal/money"
)

type SendMoney struct {
	Account     string
	Amount      float64
	Receiver    string
	Timestamp   int
	Description string
}

func (c *SendMoney) Kind() string { return "sendMoney" }

func (c *SendMoney) Execute(env *Env) {
	sender := ledger.FindAccount(env.Users, c.Account)
	receiver := ledger.FindAccount(env.Users, c.Receiver)
	if sender == nil || receiver == nil {
		return
	}
	// The nominal amount is in the sender's currency; the rejection check
	// ignores the plan surcharge.
	if sender.Balance < c.Amount {
		sender.Append(ledger.NewTransaction(c.Kind(), c.Timestamp, "Insufficient funds"))
		return
	}
	total := surcharged(env, sender.Plan, c.Amount, sender.Currency)
	converted, err := env.Rates.Convert(c.Amount, sender.Currency, receiver.Currency)
	if err != nil {
		return
	}
	sender.Balance -= total
	receiver.Balance += converted

	sent := ledger.NewTransaction(c.Kind(), c.Timestamp, c.Description)
	sent.Amount = c.Amount
	sent.Currency = sender.Currency
	sent.SenderIBAN = sender.IBAN
	sent.ReceiverIBAN = receiver.IBAN
	sent.TransferType = "sent"
	sender.Append(sent)

	received := ledger.NewTransaction(c.Kind(), c.Timestamp, c.Description)
	received.Amount = converted
	received.Currency = receiver.Currency
	received.SenderIBAN = sender.IBAN
	received.ReceiverIBAN = receiver.IBAN
	received.TransferType = "received"
	receiver.Append(received)
}

type SplitPayment struct {
	Accounts  []string
	Amount    float64
	Currency  string
	Timestamp int
}

func (c *SplitPayment) Kind() string { return "splitPayment" }

// Execute divides the amount evenly and debits all accounts or none. Every
// resolvable participant logs a split record either way; on failure the record
// carries the failing IBAN.
func (c *SplitPayment) Execute(env *Env) {
	if len(c.Accounts) == 0 {
		return
	}
	share := c.Amount / float64(len(c.Accounts))

	failing := ""
	for _, iban := range c.Accounts {
		account := ledger.FindAccountByIBAN(env.Users, iban)
		if account == nil {
			failing = iban
			continue
		}
		converted, err := env.Rates.Convert(share, c.Currency, account.Currency)
		if err != nil || account.Balance < converted {
			failing = iban
		}
	}

	description := "Split payment of " + money.Fixed2(c.Amount) + " " + c.Currency
	for _, iban := range c.Accounts {
		account := ledger.FindAccountByIBAN(env.Users, iban)
		if account == nil {
			continue
		}
		tx := ledger.NewTransaction(c.Kind(), c.Timestamp, description)
		tx.Amount = share
		tx.Currency = c.Currency
		tx.InvolvedAccounts = c.Accounts
		tx.Error = failing
		account.Append(tx)
		if failing == "" {
			converted, err := env.Rates.Convert(share, c.Currency, account.Currency)
			if err != nil {
				continue
			}
			account.Balance -= converted
		}
	}
}
