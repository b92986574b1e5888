package engine

import (
	"math"
	"testing"

	"bankreplay/internal/exchange"
	"bankreplay/internal/ledger"
)

func TestUpgradePlanToSilver(t *testing.T) {
	account := newAccount("RO1", "RON", 500, ledger.PlanStandard)
	env := newTestEnv(singleUser("ada@example.com", account), nil)

	(&UpgradePlan{Account: "RO1", NewPlan: "silver", Timestamp: 1}).Execute(env)

	if account.Plan != ledger.PlanSilver {
		t.Fatalf("plan = %v, want silver", account.Plan)
	}
	if account.Balance != 400 {
		t.Fatalf("balance = %v, want 400", account.Balance)
	}
	tx := lastTransaction(t, account)
	if tx.Description != "Upgrade plan" || tx.NewPlan != "silver" || tx.Account != "RO1" {
		t.Fatalf("record wrong: %+v", tx)
	}
}

func TestUpgradePlanSilverToGold(t *testing.T) {
	account := newAccount("RO1", "RON", 500, ledger.PlanSilver)
	env := newTestEnv(singleUser("ada@example.com", account), nil)

	(&UpgradePlan{Account: "RO1", NewPlan: "gold", Timestamp: 1}).Execute(env)

	if account.Plan != ledger.PlanGold || account.Balance != 250 {
		t.Fatalf("got plan %v balance %v, want gold 250", account.Plan, account.Balance)
	}
}

func TestUpgradePlanStandardToGold(t *testing.T) {
	account := newAccount("RO1", "RON", 500, ledger.PlanStandard)
	env := newTestEnv(singleUser("ada@example.com", account), nil)

	(&UpgradePlan{Account: "RO1", NewPlan: "gold", Timestamp: 1}).Execute(env)

	if account.Plan != ledger.PlanGold || account.Balance != 150 {
		t.Fatalf("got plan %v balance %v, want gold 150", account.Plan, account.Balance)
	}
}

func TestUpgradePlanConvertsCost(t *testing.T) {
	account := newAccount("RO1", "EUR", 100, ledger.PlanStandard)
	env := newTestEnv(singleUser("ada@example.com", account),
		[]exchange.Rate{{From: "RON", To: "EUR", Rate: 0.2}})

	(&UpgradePlan{Account: "RO1", NewPlan: "silver", Timestamp: 1}).Execute(env)

	if math.Abs(account.Balance-80) > 1e-9 {
		t.Fatalf("balance = %v, want 80", account.Balance)
	}
}

func TestUpgradePlanUnreachableCurrencyAborts(t *testing.T) {
	account := newAccount("RO1", "JPY", 1000, ledger.PlanStandard)
	env := newTestEnv(singleUser("ada@example.com", account), nil)

	(&UpgradePlan{Account: "RO1", NewPlan: "gold", Timestamp: 1}).Execute(env)

	if account.Plan != ledger.PlanStandard || account.Balance != 1000 || len(account.Transactions) != 0 {
		t.Fatal("unreachable conversion must abort with no side effects")
	}
}
