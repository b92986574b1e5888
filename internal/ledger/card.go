package ledger

type CardKind string

const (
	CardStandard CardKind = "standard"
	CardOneTime  CardKind = "one-time"
)

type CardStatus string

const (
	CardActive   CardStatus = "active"
	CardFrozen   CardStatus = "frozen"
	CardInactive CardStatus = "inactive"
)

// Card is a tagged variant: a one-time card carries a Used flag and becomes
// inactive after its single successful payment.
type Card struct {
	Number string
	Status CardStatus
	Kind   CardKind
	Used   bool
}

// Use consumes a one-time card. It is a no-op for standard cards and for
// cards already used.
func (c *Card) Use() {
	if c.Kind != CardOneTime || c.Used {
		return
	}
	c.Used = true
	c.Status = CardInactive
}
