package engine

import "bankreplay/internal/ledger"

type AddAccount struct {
	Email        string
	Currency     string
	AccountType  string
	InterestRate float64
	Timestamp    int
}

func (c *AddAccount) Kind() string { return "addAccount" }

func (c *AddAccount) Execute(env *Env) {
	user := ledger.FindUserByEmail(env.Users, c.Email)
	if user == nil {
		return
	}
	iban := env.Gen.IBAN()
	if ledger.IBANExists(env.Users, iban) {
		return
	}
	account := &ledger.Account{
		IBAN:     iban,
		Currency: c.Currency,
		Plan:     ledger.PlanStandard,
		Kind:     ledger.AccountClassic,
	}
	if c.AccountType == string(ledger.AccountSavings) {
		account.Kind = ledger.AccountSavings
		account.InterestRate = c.InterestRate
	}
	if user.Occupation == "student" {
		account.Plan = ledger.PlanStudent
	}
	user.AddAccount(account)
	account.Append(ledger.NewTransaction("addAccount", c.Timestamp, "New account created"))
}

type AddFunds struct {
	Account string
	Amount  float64
}

func (c *AddFunds) Kind() string { return "addFunds" }

// Execute credits the account with a same-currency amount; no conversion.
func (c *AddFunds) Execute(env *Env) {
	account := ledger.FindAccountByIBAN(env.Users, c.Account)
	if account == nil {
		return
	}
	account.Balance += c.Amount
}

type DeleteAccount struct {
	Email     string
	Account   string
	Timestamp int
}

func (c *DeleteAccount) Kind() string { return "deleteAccount" }

func (c *DeleteAccount) Execute(env *Env) {
	user := ledger.FindUserByEmail(env.Users, c.Email)
	if user == nil {
		c.addError(env, "User not found")
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
		c.addError(env, "Account not found")
		return
	}
	if account.Balance != 0 {
		c.addError(env, "Account couldn't be deleted - see transactions for details")
		account.Append(ledger.NewTransaction("deleteAccount", c.Timestamp,
			"Account couldn't be deleted - there are funds remaining"))
		return
	}
	user.RemoveAccount(account.IBAN)
	env.Out.Add(map[string]any{
		"command": c.Kind(),
		"output": map[string]any{
			"success":   "Account deleted",
			"timestamp": c.Timestamp,
		},
		"timestamp": c.Timestamp,
	})
}

func (c *DeleteAccount) addError(env *Env, message string) {
	env.Out.Add(map[string]any{
		"command": c.Kind(),
		"output": map[string]any{
			"error":     message,
			"timestamp": c.Timestamp,
		},
		"timestamp": c.Timestamp,
	})
}

type SetAlias struct {
	Email   string
	Alias   string
	Account string
}

func (c *SetAlias) Kind() string { return "setAlias" }

func (c *SetAlias) Execute(env *Env) {
	user := ledger.FindUserByEmail(env.Users, c.Email)
	if user == nil {
		return
	}
	for _, account := range user.Accounts {
		if account.IBAN == c.Account {
			account.Alias = c.Alias
			return
		}
	}
}

type SetMinimumBalance struct {
	Account   string
	Amount    float64
	Timestamp int
}

func (c *SetMinimumBalance) Kind() string { return "setMinimumBalance" }

func (c *SetMinimumBalance) Execute(env *Env) {
	account := ledger.FindAccountByIBAN(env.Users, c.Account)
	if account == nil {
		return
	}
	account.MinimumBalance = c.Amount
}
