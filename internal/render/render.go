// Package render turns transaction records into report payloads. Each view
// (user history, account report, spendings report) shows a different subset
// of fields per command kind; fields not applicable to a kind are omitted,
// never emitted as null or zero.
package render

import (
	"fmt"

	"bankreplay/internal/ledger"
	"bankreplay/internal/money"
)

// Func renders the kind-specific fields of one transaction record.
type Func func(tx *ledger.Transaction) map[string]any

var historyFuncs = map[string]Func{
	"addAccount": func(tx *ledger.Transaction) map[string]any {
		return map[string]any{"description": "New account created"}
	},
	"sendMoney": func(tx *ledger.Transaction) map[string]any {
		row := map[string]any{"description": tx.Description}
		if tx.SenderIBAN != "" {
			row["senderIBAN"] = tx.SenderIBAN
		}
		if tx.ReceiverIBAN != "" {
			row["receiverIBAN"] = tx.ReceiverIBAN
		}
		if tx.Amount != 0 {
			row["amount"] = money.WithCurrency(tx.Amount, tx.Currency)
		}
		if tx.TransferType != "" {
			row["transferType"] = tx.TransferType
		}
		return row
	},
	"payOnline": func(tx *ledger.Transaction) map[string]any {
		row := map[string]any{"description": tx.Description}
		if tx.Amount != 0 {
			row["amount"] = tx.Amount
		}
		if tx.Commerciant != "" {
			row["commerciant"] = tx.Commerciant
		}
		return row
	},
	"createCard": func(tx *ledger.Transaction) map[string]any {
		return map[string]any{
			"description": "New card created",
			"card":        tx.Card,
			"cardHolder":  tx.CardHolder,
			"account":     tx.Account,
		}
	},
	"deleteCard": func(tx *ledger.Transaction) map[string]any {
		return map[string]any{
			"description": tx.Description,
			"card":        tx.Card,
			"cardHolder":  tx.CardHolder,
			"account":     tx.Account,
		}
	},
	"deleteAccount": func(tx *ledger.Transaction) map[string]any {
		return map[string]any{"description": tx.Description}
	},
	"checkCardStatus": func(tx *ledger.Transaction) map[string]any {
		if tx.Description == "" {
			return nil
		}
		return map[string]any{"description": tx.Description}
	},
	"splitPayment":       splitRow,
	"addInterest":        descriptionRow,
	"changeInterestRate": descriptionRow,
	"withdrawSavings":    descriptionRow,
	"upgradePlan": func(tx *ledger.Transaction) map[string]any {
		return map[string]any{
			"accountIBAN": tx.Account,
			"description": tx.Description,
			"newPlanType": tx.NewPlan,
		}
	},
	"cashWithdrawal": func(tx *ledger.Transaction) map[string]any {
		return map[string]any{
			"description": tx.Description,
			"amount":      tx.Amount,
		}
	},
}

// History renders one row of a user's chronological transaction history.
func History(tx *ledger.Transaction) map[string]any {
	row := map[string]any{}
	if tx.Timestamp != 0 {
		row["timestamp"] = tx.Timestamp
	}
	if fn, ok := historyFuncs[tx.Kind]; ok {
		for key, value := range fn(tx) {
			row[key] = value
		}
	}
	return row
}

var reportFuncs = map[string]Func{
	"addAccount": func(tx *ledger.Transaction) map[string]any {
		return map[string]any{"description": "New account created"}
	},
	"payOnline": func(tx *ledger.Transaction) map[string]any {
		return map[string]any{
			"amount":      tx.Amount,
			"commerciant": tx.Commerciant,
			"description": tx.Description,
		}
	},
	"splitPayment": splitRow,
	"sendMoney": func(tx *ledger.Transaction) map[string]any {
		row := map[string]any{"description": tx.Description}
		if tx.Currency != "" {
			row["amount"] = money.WithCurrency(tx.Amount, tx.Currency)
		}
		if tx.SenderIBAN != "" {
			row["senderIBAN"] = tx.SenderIBAN
		}
		if tx.ReceiverIBAN != "" {
			row["receiverIBAN"] = tx.ReceiverIBAN
		}
		if tx.TransferType != "" {
			row["transferType"] = tx.TransferType
		}
		return row
	},
	"createCard": func(tx *ledger.Transaction) map[string]any {
		return map[string]any{
			"account":     tx.Account,
			"card":        tx.Card,
			"cardHolder":  tx.CardHolder,
			"description": "New card created",
		}
	},
	"deleteAccount": func(tx *ledger.Transaction) map[string]any {
		return map[string]any{"description": tx.Description}
	},
}

// Report renders one row of an account-scoped time-windowed report. Kinds
// without a dedicated view fall back to description plus timestamp.
func Report(tx *ledger.Transaction) map[string]any {
	row := map[string]any{"timestamp": tx.Timestamp}
	fn, ok := reportFuncs[tx.Kind]
	if !ok {
		row["description"] = tx.Description
		return row
	}
	for key, value := range fn(tx) {
		row[key] = value
	}
	return row
}

func splitRow(tx *ledger.Transaction) map[string]any {
	row := map[string]any{
		"description":      tx.Description,
		"amount":           tx.Amount,
		"currency":         tx.Currency,
		"involvedAccounts": tx.InvolvedAccounts,
	}
	if tx.Error != "" {
		row["error"] = fmt.Sprintf("Account %s has insufficient funds for a split payment.", tx.Error)
	}
	return row
}

func descriptionRow(tx *ledger.Transaction) map[string]any {
	return map[string]any{"description": tx.Description}
}
