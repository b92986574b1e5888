package engine

import "bankreplay/internal/ledger"

const (
	standardFeeRate = 0.002
	silverFeeRate   = 0.001

	// Silver accounts pay the surcharge only under this RON threshold.
	silverFeeLimitRON = 500
)

// surcharged applies the account plan's fee policy to a nominal debit amount,
// in the amount's own currency. Gold and student plans carry no surcharge.
// The silver threshold is checked against the amount converted to RON; if RON
// is unreachable the threshold cannot be established and no surcharge applies.
func surcharged(env *Env, plan ledger.Plan, amount float64, currency string) float64 {
	switch plan {
	case ledger.PlanStandard:
		return amount + amount*standardFeeRate
	case ledger.PlanSilver:
		inRON, err := env.Rates.Convert(amount, currency, baseCurrency)
		if err == nil && inRON < silverFeeLimitRON {
			return amount + amount*silverFeeRate
		}
	}
	return amount
}
