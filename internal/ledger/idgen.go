package ledger

import (
	"math/rand"
	"strings"
)

const (
	ibanSeed = 1
	cardSeed = 2

	digitCount    = 16
	countryPrefix = "RO"
	bankCode      = "POOB"
)

// Generator produces account IBANs and card numbers from two independently
// seeded streams, so a batch always assigns the same identifiers regardless
// of how many cards or accounts it interleaves. Reset restores the initial
// seeds between batches.
type Generator struct {
	iban *rand.Rand
	card *rand.Rand
}

func NewGenerator() *Generator {
	g := &Generator{}
	g.Reset()
	return g
}

func (g *Generator) Reset() {
	g.iban = rand.New(rand.NewSource(ibanSeed))
	g.card = rand.New(rand.NewSource(cardSeed))
}

func (g *Generator) IBAN() string {
	var sb strings.Builder
	sb.WriteString(countryPrefix)
	appendDigits(&sb, g.iban, len(countryPrefix))
	sb.WriteString(bankCode)
	appendDigits(&sb, g.iban, digitCount)
	return sb.String()
}

func (g *Generator) CardNumber() string {
	var sb strings.Builder
	appendDigits(&sb, g.card, digitCount)
	return sb.String()
}

func appendDigits(sb *strings.Builder, r *rand.Rand, n int) {
	for i := 0; i < n; i++ {
		sb.WriteByte(byte('0' + r.Intn(10)))
	}
}
