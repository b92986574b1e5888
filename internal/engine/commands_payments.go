package engine

import (
	"bankreplay/internal/ledger"
	"bankreplay/internal/money"
)

type PayOnline struct {
	Email       string
	CardNumber  string
	Amount      float64
	Currency    string
	Timestamp   int
	Description string
	Commerciant string
}

func (c *PayOnline) Kind() string { return "payOnline" }

func (c *PayOnline) Execute(env *Env) {
	user := ledger.FindUserByEmail(env.Users, c.Email)
	if user != nil {
		for _, account := range user.Accounts {
			if card := account.Card(c.CardNumber); card != nil {
				c.pay(env, user, account, card)
				return
			}
		}
	}
	env.Out.Add(map[string]any{
		"command": c.Kind(),
		"output": map[string]any{
			"timestamp":   c.Timestamp,
			"description": "Card not found",
		},
		"timestamp": c.Timestamp,
	})
}

func (c *PayOnline) pay(env *Env, user *ledger.User, account *ledger.Account, card *ledger.Card) {
	if card.Status != ledger.CardActive {
		tx := ledger.NewTransaction(c.Kind(), c.Timestamp, "The card is frozen")
		tx.Currency = c.Currency
		account.Append(tx)
		return
	}
	if card.Kind == ledger.CardOneTime && card.Used {
		return
	}
	total := surcharged(env, account.Plan, c.Amount, c.Currency)
	converted, err := env.Rates.Convert(total, c.Currency, account.Currency)
	if err != nil {
		return
	}
	if account.Balance < converted {
		account.Append(ledger.NewTransaction(c.Kind(), c.Timestamp, "Insufficient funds"))
		return
	}
	account.Balance -= converted

	// The logged amount is the nominal one, without surcharge, in the
	// account's currency. The path is reachable: total converted above.
	nominal, _ := env.Rates.Convert(c.Amount, c.Currency, account.Currency)
	tx := ledger.NewTransaction(c.Kind(), c.Timestamp, "Card payment")
	tx.Amount = nominal
	tx.Card = card.Number
	tx.Commerciant = c.Commerciant
	account.Append(tx)

	if card.Kind == ledger.CardOneTime {
		c.replaceOneTime(env, user, account, card)
	}
}

// replaceOneTime retires a used one-time card and mints exactly one
// replacement on the same account, logging both lifecycle events.
func (c *PayOnline) replaceOneTime(env *Env, user *ledger.User, account *ledger.Account, card *ledger.Card) {
	card.Use()

	destroyed := ledger.NewTransaction("deleteCard", c.Timestamp, "The card has been destroyed")
	destroyed.Card = card.Number
	destroyed.CardHolder = user.Email
	destroyed.Account = account.IBAN
	account.Append(destroyed)

	number := env.Gen.CardNumber()
	replacement := &ledger.Card{Number: number, Status: ledger.CardActive, Kind: ledger.CardOneTime}
	created := ledger.NewTransaction("createCard", c.Timestamp, "New card created")
	created.Card = number
	created.CardHolder = user.Email
	created.Account = account.IBAN
	account.Append(created)
	account.AddCard(replacement)
}

type CashWithdrawal struct {
	CardNumber string
	Amount     float64 // always in RON
	Email      string
	Location   string
	Timestamp  int
}

func (c *CashWithdrawal) Kind() string { return "cashWithdrawal" }

func (c *CashWithdrawal) Execute(env *Env) {
	_, account, card := ledger.FindByCard(env.Users, c.CardNumber)
	if account == nil {
		return
	}
	total := surcharged(env, account.Plan, c.Amount, baseCurrency)
	converted, err := env.Rates.Convert(total, baseCurrency, account.Currency)
	if err != nil {
		return
	}
	if account.Balance < converted {
		return
	}
	if card.Status != ledger.CardActive {
		env.Out.Add(map[string]any{
			"command": c.Kind(),
			"output": map[string]any{
				"description": "Card has already been used",
				"timestamp":   c.Timestamp,
			},
			"timestamp": c.Timestamp,
		})
		return
	}
	account.Balance -= converted
	tx := ledger.NewTransaction(c.Kind(), c.Timestamp, "Cash withdrawal of "+money.Format(c.Amount))
	tx.Amount = c.Amount
	account.Append(tx)
}
