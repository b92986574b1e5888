package engine

import "bankreplay/internal/ledger"

// Plan upgrade costs are RON-denominated and converted into the account's
// currency at debit time.
const (
	silverUpgradeCost = 100
	silverToGoldCost  = 250
	directToGoldCost  = 350
)

type UpgradePlan struct {
	Account   string
	NewPlan   string
	Timestamp int
}

func (c *UpgradePlan) Kind() string { return "upgradePlan" }

func (c *UpgradePlan) Execute(env *Env) {
	account := ledger.FindAccountByIBAN(env.Users, c.Account)
	if account == nil {
		return
	}
	var cost float64
	var plan ledger.Plan
	switch {
	case c.NewPlan == string(ledger.PlanSilver):
		plan = ledger.PlanSilver
		cost = silverUpgradeCost
	case c.NewPlan == string(ledger.PlanGold) && account.Plan == ledger.PlanSilver:
		plan = ledger.PlanGold
		cost = silverToGoldCost
	default:
		plan = ledger.PlanGold
		cost = directToGoldCost
	}
	converted, err := env.Rates.Convert(cost, baseCurrency, account.Currency)
	if err != nil {
		return
	}
	account.Plan = plan
	account.Balance -= converted

	tx := ledger.NewTransaction(c.Kind(), c.Timestamp, "Upgrade plan")
	tx.Account = account.IBAN
	tx.NewPlan = c.NewPlan
	account.Append(tx)
}
