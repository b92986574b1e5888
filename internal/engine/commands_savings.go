package engine

import (
	"time"

	"bankreplay/internal/ledger"
	"bankreplay/internal/money"
)

type ChangeInterestRate struct {
	Account      string
	InterestRate float64
	Timestamp    int
}

func (c *ChangeInterestRate) Kind() string { return "changeInterestRate" }

func (c *ChangeInterestRate) Execute(env *Env) {
	account := ledger.FindAccountByIBAN(env.Users, c.Account)
	if account == nil {
		return
	}
	if !account.IsSavings() {
		addNotSavingsError(env, c.Kind(), c.Timestamp)
		return
	}
	account.InterestRate = c.InterestRate
	account.Append(ledger.NewTransaction(c.Kind(), c.Timestamp,
		"Interest rate of the account changed to "+money.Format(c.InterestRate)))
}

type AddInterest struct {
	Account      string
	InterestRate float64
	Timestamp    int
}

func (c *AddInterest) Kind() string { return "addInterest" }

// Execute credits balance*rate/100 using the rate given on the command.
func (c *AddInterest) Execute(env *Env) {
	account := ledger.FindAccountByIBAN(env.Users, c.Account)
	if account == nil {
		return
	}
	if !account.IsSavings() {
		addNotSavingsError(env, c.Kind(), c.Timestamp)
		return
	}
	interest := account.Balance * c.InterestRate / 100
	account.Balance += interest

	tx := ledger.NewTransaction(c.Kind(), c.Timestamp, "Interest added")
	tx.Amount = interest
	tx.ReceiverIBAN = account.IBAN
	account.Append(tx)

	env.Out.Add(map[string]any{
		"command": c.Kind(),
		"output": map[string]any{
			"description": "Interest added successfully",
			"newBalance":  account.Balance,
		},
		"timestamp": c.Timestamp,
	})
}

func addNotSavingsError(env *Env, kind string, timestamp int) {
	env.Out.Add(map[string]any{
		"command": kind,
		"output": map[string]any{
			"description": "This is not a savings account",
			"timestamp":   timestamp,
		},
		"timestamp": timestamp,
	})
}

// minimumWithdrawalAge gates savings withdrawals.
const minimumWithdrawalAge = 21

type WithdrawSavings struct {
	Account   string
	Amount    float64
	Currency  string
	Timestamp int
}

func (c *WithdrawSavings) Kind() string { return "withdrawSavings" }

func (c *WithdrawSavings) Execute(env *Env) {
	account := ledger.FindAccountByIBAN(env.Users, c.Account)
	if account == nil {
		return
	}
	owner := ledger.OwnerOf(env.Users, account)
	if owner == nil {
		return
	}
	if ageAt(owner.BirthDate, env.Now) < minimumWithdrawalAge {
		account.Append(ledger.NewTransaction(c.Kind(), c.Timestamp,
			"You don't have the minimum age required."))
		return
	}
	converted, err := env.Rates.Convert(c.Amount, c.Currency, account.Currency)
	if err != nil {
		return
	}
	if account.Balance < converted {
		return
	}
	account.Balance -= converted
}

// ageAt computes full years between a yyyy-mm-dd birth date and now. An
// unparseable date counts as age zero, which rejects the withdrawal.
func ageAt(birthDate string, now time.Time) int {
	birth, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return 0
	}
	years := now.Year() - birth.Year()
	anniversary := birth.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}
