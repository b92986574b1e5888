package engine

import "bankreplay/internal/ledger"

type CreateCard struct {
	Email     string
	Account   string
	Timestamp int
	OneTime   bool
}

func (c *CreateCard) Kind() string {
	if c.OneTime {
		return "createOneTimeCard"
	}
	return "createCard"
}

func (c *CreateCard) Execute(env *Env) {
	user := ledger.FindUserByEmail(env.Users, c.Email)
	if user == nil {
		return
	}
	var account *ledger.Account
	for _, candidate := range user.Accounts {
		if candidate.IBAN == c.Account {
			account = candidate
			break
		}
	}
	if account == nil {
		return
	}
	number := env.Gen.CardNumber()
	// Generated-number collision skips creation, no retry.
	if ledger.CardNumberExists(env.Users, number) {
		return
	}
	card := &ledger.Card{Number: number, Status: ledger.CardActive, Kind: ledger.CardStandard}
	if c.OneTime {
		card.Kind = ledger.CardOneTime
	}
	account.AddCard(card)

	tx := ledger.NewTransaction("createCard", c.Timestamp, "New card created")
	tx.Card = number
	tx.CardHolder = user.Email
	tx.Account = account.IBAN
	account.Append(tx)
}

type DeleteCard struct {
	CardNumber string
	Timestamp  int
}

func (c *DeleteCard) Kind() string { return "deleteCard" }

func (c *DeleteCard) Execute(env *Env) {
	user, account, card := ledger.FindByCard(env.Users, c.CardNumber)
	if card == nil {
		return
	}
	account.RemoveCard(card.Number)
	tx := ledger.NewTransaction("deleteCard", c.Timestamp, "The card has been destroyed")
	tx.Card = card.Number
	tx.CardHolder = user.Email
	tx.Account = account.IBAN
	account.Append(tx)
}

// freezeThreshold is the balance margin over the account minimum under which
// a checked card freezes.
const freezeThreshold = 30

type CheckCardStatus struct {
	CardNumber string
	Timestamp  int
}

func (c *CheckCardStatus) Kind() string { return "checkCardStatus" }

func (c *CheckCardStatus) Execute(env *Env) {
	_, account, card := ledger.FindByCard(env.Users, c.CardNumber)
	if card == nil {
		env.Out.Add(map[string]any{
			"command": c.Kind(),
			"output": map[string]any{
				"timestamp":   c.Timestamp,
				"description": "Card not found",
			},
			"timestamp": c.Timestamp,
		})
		return
	}
	if account.Balance-account.MinimumBalance <= freezeThreshold {
		card.Status = ledger.CardFrozen
		account.Append(ledger.NewTransaction("checkCardStatus", c.Timestamp,
			"You have reached the minimum amount of funds, the card will be frozen"))
	}
}
