package ledger

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewTransactionAssignsUniqueIDs(t *testing.T) {
	account := &Account{IBAN: "RO1", Currency: "RON"}
	for i := 0; i < 50; i++ {
		account.Append(NewTransaction("payOnline", i, "Card payment"))
	}
	seen := make(map[string]bool)
	for _, tx := range account.Transactions {
		if _, err := uuid.Parse(tx.ID); err != nil {
			t.Fatalf("transaction ID %q is not a uuid: %v", tx.ID, err)
		}
		if seen[tx.ID] {
			t.Fatalf("duplicate transaction ID %q", tx.ID)
		}
		seen[tx.ID] = true
	}
}
