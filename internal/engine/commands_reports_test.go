package engine

import (
	"testing"

	"bankreplay/internal/ledger"
)

func outputOf(t *testing.T, env *Env) map[string]any {
	t.Helper()
	entries := env.Out.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	return entries[0].(map[string]any)
}

func TestPrintUsersSnapshot(t *testing.T) {
	account := newAccount("RO1", "RON", 150, ledger.PlanStandard)
	account.AddCard(&ledger.Card{Number: "1111", Status: ledger.CardActive, Kind: ledger.CardStandard})
	users := singleUser("ada@example.com", account)
	users[0].FirstName = "Ada"
	users[0].LastName = "Lovelace"
	env := newTestEnv(users, nil)

	(&PrintUsers{Timestamp: 9}).Execute(env)

	entry := outputOf(t, env)
	if entry["command"] != "printUsers" || entry["timestamp"] != 9 {
		t.Fatalf("entry wrong: %+v", entry)
	}
	snapshot := entry["output"].([]map[string]any)
	if len(snapshot) != 1 {
		t.Fatalf("expected 1 user, got %d", len(snapshot))
	}
	if snapshot[0]["firstName"] != "Ada" || snapshot[0]["email"] != "ada@example.com" {
		t.Fatalf("user row wrong: %+v", snapshot[0])
	}
	accounts := snapshot[0]["accounts"].([]map[string]any)
	if accounts[0]["IBAN"] != "RO1" || accounts[0]["type"] != "classic" || accounts[0]["balance"] != 150.0 {
		t.Fatalf("account row wrong: %+v", accounts[0])
	}
	cards := accounts[0]["cards"].([]map[string]any)
	if cards[0]["cardNumber"] != "1111" || cards[0]["status"] != "active" {
		t.Fatalf("card row wrong: %+v", cards[0])
	}
}

func TestPrintTransactionsSortsByTimestamp(t *testing.T) {
	first := newAccount("RO1", "RON", 0, ledger.PlanStandard)
	second := newAccount("RO2", "RON", 0, ledger.PlanStandard)
	first.Append(ledger.NewTransaction("addAccount", 5, "New account created"))
	second.Append(ledger.NewTransaction("addAccount", 2, "New account created"))
	first.Append(ledger.NewTransaction("payOnline", 8, "Card payment"))
	env := newTestEnv(singleUser("ada@example.com", first, second), nil)

	(&PrintTransactions{Email: "ada@example.com", Timestamp: 10}).Execute(env)

	rows := outputOf(t, env)["output"].([]map[string]any)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	stamps := []int{rows[0]["timestamp"].(int), rows[1]["timestamp"].(int), rows[2]["timestamp"].(int)}
	if stamps[0] != 2 || stamps[1] != 5 || stamps[2] != 8 {
		t.Fatalf("rows out of order: %v", stamps)
	}
}

func TestPrintTransactionsUserNotFound(t *testing.T) {
	env := newTestEnv(nil, nil)

	(&PrintTransactions{Email: "ghost@example.com", Timestamp: 3}).Execute(env)

	entry := outputOf(t, env)
	payload := entry["output"].(map[string]any)
	if payload["description"] != "User not found" || payload["timestamp"] != 3 {
		t.Fatalf("payload wrong: %+v", payload)
	}
	if _, ok := entry["timestamp"]; ok {
		t.Fatal("not-found entry carries only the inner timestamp")
	}
}

func TestPrintTransactionsEmptyEmitsNothing(t *testing.T) {
	env := newTestEnv(singleUser("ada@example.com", newAccount("RO1", "RON", 0, ledger.PlanStandard)), nil)

	(&PrintTransactions{Email: "ada@example.com", Timestamp: 3}).Execute(env)

	if len(env.Out.Entries()) != 0 {
		t.Fatal("an empty history must emit nothing")
	}
}

func TestReportWindow(t *testing.T) {
	account := newAccount("RO1", "RON", 75, ledger.PlanStandard)
	account.Append(ledger.NewTransaction("addAccount", 1, "New account created"))
	account.Append(ledger.NewTransaction("payOnline", 5, "Card payment"))
	account.Append(ledger.NewTransaction("payOnline", 20, "Card payment"))
	env := newTestEnv(singleUser("ada@example.com", account), nil)

	(&Report{Account: "RO1", StartTimestamp: 2, EndTimestamp: 10, Timestamp: 30}).Execute(env)

	payload := outputOf(t, env)["output"].(map[string]any)
	if payload["IBAN"] != "RO1" || payload["currency"] != "RON" || payload["balance"] != 75.0 {
		t.Fatalf("payload wrong: %+v", payload)
	}
	rows := payload["transactions"].([]map[string]any)
	if len(rows) != 1 || rows[0]["timestamp"] != 5 {
		t.Fatalf("window filter wrong: %+v", rows)
	}
}

func TestReportAccountNotFound(t *testing.T) {
	env := newTestEnv(nil, nil)

	(&Report{Account: "RO404", Timestamp: 3}).Execute(env)

	payload := outputOf(t, env)["output"].(map[string]any)
	if payload["description"] != "Account not found" || payload["timestamp"] != 3 {
		t.Fatalf("payload wrong: %+v", payload)
	}
}

func TestSpendingsReport(t *testing.T) {
	account := newAccount("RO1", "RON", 40, ledger.PlanStandard)
	pay := func(ts int, amount float64, commerciant string) {
		tx := ledger.NewTransaction("payOnline", ts, "Card payment")
		tx.Amount = amount
		tx.Commerciant = commerciant
		account.Append(tx)
	}
	pay(1, 10, "Zara")
	pay(2, 20, "Altex")
	pay(3, 5, "Zara")
	env := newTestEnv(singleUser("ada@example.com", account), nil)

	(&SpendingsReport{Account: "RO1", StartTimestamp: 0, EndTimestamp: 10, Timestamp: 11}).Execute(env)

	payload := outputOf(t, env)["output"].(map[string]any)
	totals := payload["commerciants"].([]map[string]any)
	if len(totals) != 2 {
		t.Fatalf("expected 2 commerciants, got %d", len(totals))
	}
	if totals[0]["commerciant"] != "Altex" || totals[0]["total"] != 20.0 {
		t.Fatalf("totals wrong: %+v", totals)
	}
	if totals[1]["commerciant"] != "Zara" || totals[1]["total"] != 15.0 {
		t.Fatalf("totals wrong: %+v", totals)
	}
	if len(payload["transactions"].([]map[string]any)) != 3 {
		t.Fatal("all commerciant payments belong in the report")
	}
}

func TestSpendingsReportOnSavings(t *testing.T) {
	account := savingsAccount("RO1", "RON", 100, 2)
	env := newTestEnv(singleUser("ada@example.com", account), nil)

	(&SpendingsReport{Account: "RO1", Timestamp: 3}).Execute(env)

	payload := outputOf(t, env)["output"].(map[string]any)
	if payload["error"] != "This kind of report is not supported for a saving account" {
		t.Fatalf("payload wrong: %+v", payload)
	}
}
