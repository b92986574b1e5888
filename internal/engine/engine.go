// Package engine replays an ordered batch of banking commands against the
// in-memory ledger and accumulates the structured report.
package engine

import (
	"time"

	"go.uber.org/zap"

	"bankreplay/internal/exchange"
	"bankreplay/internal/fileio"
	"bankreplay/internal/ledger"
)

// baseCurrency anchors the fee policy: surcharge thresholds and plan upgrade
// costs are expressed in RON.
const baseCurrency = "RON"

// Env is the execution environment a command mutates: the full ledger state,
// the conversion graph, the seeded identifier generator and the shared output
// sequence. Commands run strictly one at a time, so no locking is needed.
type Env struct {
	Users []*ledger.User
	Rates *exchange.Graph
	Gen   *ledger.Generator
	Out   *Output
	Log   *zap.Logger
	Now   time.Time
}

// NewEnv builds the ledger state for one batch document.
func NewEnv(doc fileio.Document, log *zap.Logger) *Env {
	users := make([]*ledger.User, 0, len(doc.Users))
	for _, in := range doc.Users {
		users = append(users, &ledger.User{
			Email:      in.Email,
			FirstName:  in.FirstName,
			LastName:   in.LastName,
			Occupation: in.Occupation,
			BirthDate:  in.BirthDate,
		})
	}
	rates := make([]exchange.Rate, 0, len(doc.ExchangeRates))
	for _, in := range doc.ExchangeRates {
		rates = append(rates, exchange.Rate{From: in.From, To: in.To, Rate: in.Rate})
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Env{
		Users: users,
		Rates: exchange.NewGraph(rates),
		Gen:   ledger.NewGenerator(),
		Out:   &Output{},
		Log:   log,
		Now:   time.Now(),
	}
}

// Output accumulates report entries in arrival order; it is append-only and
// never reordered.
type Output struct {
	entries []any
}

func (o *Output) Add(entry map[string]any) {
	o.entries = append(o.entries, entry)
}

func (o *Output) Entries() []any {
	return o.entries
}

// Run resolves and executes one batch, returning the ordered report entries.
// Unknown command kinds are rejected at resolution time and reported in the
// output stream; the rest of the batch still runs.
func Run(doc fileio.Document, log *zap.Logger) []any {
	env := NewEnv(doc, log)
	queue := NewQueue()
	for _, in := range doc.Commands {
		cmd, err := Resolve(in)
		if err != nil {
			env.Log.Warn("command rejected at dispatch",
				zap.String("command", in.Command),
				zap.Int("timestamp", in.Timestamp))
			env.Out.Add(map[string]any{
				"command": in.Command,
				"status":  "error",
				"message": "Unknown command: " + in.Command,
			})
			continue
		}
		queue.Add(cmd)
	}
	queue.Run(env)
	return env.Out.Entries()
}
