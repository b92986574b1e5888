package ledger

type AccountKind string

const (
	AccountClassic AccountKind = "classic"
	AccountSavings AccountKind = "savings"
)

type Plan string

const (
	PlanStandard Plan = "standard"
	PlanStudent  Plan = "student"
	PlanSilver   Plan = "silver"
	PlanGold     Plan = "gold"
)

// Account is always denominated in its fixed currency; any cross-currency
// amount must be converted before it touches Balance.
type Account struct {
	IBAN           string
	Currency       string
	Balance        float64
	MinimumBalance float64
	Plan           Plan
	Kind           AccountKind
	InterestRate   float64 // savings accounts only
	Alias          string
	Cards          []*Card
	Transactions   []*Transaction
}

func (a *Account) IsSavings() bool {
	return a.Kind == AccountSavings
}

func (a *Account) AddCard(card *Card) {
	a.Cards = append(a.Cards, card)
}

func (a *Account) Card(number string) *Card {
	for _, card := range a.Cards {
		if card.Number == number {
			return card
		}
	}
	return nil
}

func (a *Account) RemoveCard(number string) bool {
	for i, card := range a.Cards {
		if card.Number == number {
			a.Cards = append(a.Cards[:i], a.Cards[i+1:]...)
			return true
		}
	}
	return false
}

// Append adds a record to the transaction log. Records are never mutated or
// removed afterwards; insertion order breaks same-timestamp ties.
func (a *Account) Append(tx *Transaction) {
	a.Transactions = append(a.Transactions, tx)
}
