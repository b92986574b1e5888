package engine

import (
	"sort"

	"bankreplay/internal/ledger"
	"bankreplay/internal/render"
)

type PrintUsers struct {
	Timestamp int
}

func (c *PrintUsers) Kind() string { return "printUsers" }

// Execute emits a full snapshot of every user, account and card in display
// order.
func (c *PrintUsers) Execute(env *Env) {
	users := make([]map[string]any, 0, len(env.Users))
	for _, user := range env.Users {
		accounts := make([]map[string]any, 0, len(user.Accounts))
		for _, account := range user.Accounts {
			cards := make([]map[string]any, 0, len(account.Cards))
			for _, card := range account.Cards {
				cards = append(cards, map[string]any{
					"cardNumber": card.Number,
					"status":     string(card.Status),
				})
			}
			accounts = append(accounts, map[string]any{
				"IBAN":     account.IBAN,
				"balance":  account.Balance,
				"currency": account.Currency,
				"type":     string(account.Kind),
				"cards":    cards,
			})
		}
		users = append(users, map[string]any{
			"firstName": user.FirstName,
			"lastName":  user.LastName,
			"email":     user.Email,
			"accounts":  accounts,
		})
	}
	env.Out.Add(map[string]any{
		"command":   c.Kind(),
		"output":    users,
		"timestamp": c.Timestamp,
	})
}

type PrintTransactions struct {
	Email     string
	Timestamp int
}

func (c *PrintTransactions) Kind() string { return "printTransactions" }

func (c *PrintTransactions) Execute(env *Env) {
	user := ledger.FindUserByEmail(env.Users, c.Email)
	if user == nil {
		env.Out.Add(map[string]any{
			"command": c.Kind(),
			"output": map[string]any{
				"timestamp":   c.Timestamp,
				"description": "User not found",
			},
		})
		return
	}
	var all []*ledger.Transaction
	for _, account := range user.Accounts {
		all = append(all, account.Transactions...)
	}
	// Stable sort keeps insertion order for same-timestamp ties.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Timestamp < all[j].Timestamp
	})
	rows := make([]map[string]any, 0, len(all))
	for _, tx := range all {
		rows = append(rows, render.History(tx))
	}
	if len(rows) == 0 {
		return
	}
	env.Out.Add(map[string]any{
		"command":   c.Kind(),
		"output":    rows,
		"timestamp": c.Timestamp,
	})
}

type Report struct {
	Account        string
	StartTimestamp int
	EndTimestamp   int
	Timestamp      int
}

func (c *Report) Kind() string { return "report" }

func (c *Report) Execute(env *Env) {
	account := ledger.FindAccountByIBAN(env.Users, c.Account)
	if account == nil {
		addReportNotFound(env, c.Kind(), c.Timestamp)
		return
	}
	rows := make([]map[string]any, 0)
	for _, tx := range account.Transactions {
		if tx.Timestamp < c.StartTimestamp || tx.Timestamp > c.EndTimestamp {
			continue
		}
		rows = append(rows, render.Report(tx))
	}
	env.Out.Add(map[string]any{
		"command": c.Kind(),
		"output": map[string]any{
			"balance":      account.Balance,
			"currency":     account.Currency,
			"IBAN":         account.IBAN,
			"transactions": rows,
		},
		"timestamp": c.Timestamp,
	})
}

type SpendingsReport struct {
	Account        string
	StartTimestamp int
	EndTimestamp   int
	Timestamp      int
}

func (c *SpendingsReport) Kind() string { return "spendingsReport" }

func (c *SpendingsReport) Execute(env *Env) {
	account := ledger.FindAccountByIBAN(env.Users, c.Account)
	if account == nil {
		addReportNotFound(env, c.Kind(), c.Timestamp)
		return
	}
	if account.IsSavings() {
		env.Out.Add(map[string]any{
			"command": c.Kind(),
			"output": map[string]any{
				"error": "This kind of report is not supported for a saving account",
			},
			"timestamp": c.Timestamp,
		})
		return
	}
	rows, totals := render.Spending(account.Transactions, c.StartTimestamp, c.EndTimestamp)
	env.Out.Add(map[string]any{
		"command": c.Kind(),
		"output": map[string]any{
			"balance":      account.Balance,
			"commerciants": totals,
			"currency":     account.Currency,
			"IBAN":         account.IBAN,
			"transactions": rows,
		},
		"timestamp": c.Timestamp,
	})
}

func addReportNotFound(env *Env, kind string, timestamp int) {
	env.Out.Add(map[string]any{
		"command": kind,
		"output": map[string]any{
			"description": "Account not found",
			"timestamp":   timestamp,
		},
		"timestamp": timestamp,
	})
}
