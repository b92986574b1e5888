package ledger

import "github.com/google/uuid"

// Transaction is an immutable append-only log entry tagged with the command
// kind that produced it. Only the fields relevant to that kind are populated;
// the rest stay at their zero value and renderers omit them.
type Transaction struct {
	ID          string
	Kind        string
	Timestamp   int
	Description string

	Amount           float64
	Currency         string
	SenderIBAN       string
	ReceiverIBAN     string
	TransferType     string // "sent" or "received"
	Card             string
	CardHolder       string
	Account          string // card lifecycle and plan upgrade rows
	Commerciant      string
	NewPlan          string
	InvolvedAccounts []string
	Error            string // IBAN that failed a split payment
}

func NewTransaction(kind string, timestamp int, description string) *Transaction {
	return &Transaction{
		ID:          uuid.NewString(),
		Kind:        kind,
		Timestamp:   timestamp,
		Description: description,
	}
}
