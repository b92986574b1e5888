package engine

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"bankreplay/internal/fileio"
)

var ErrUnknownCommand = errors.New("unknown command")

// Command is one parameterized state transition against the ledger.
type Command interface {
	Kind() string
	Execute(env *Env)
}

// Resolve maps a command input to its handler. Unknown kinds never reach a
// handler.
func Resolve(in fileio.CommandInput) (Command, error) {
	switch in.Command {
	case "printUsers":
		return &PrintUsers{Timestamp: in.Timestamp}, nil
	case "addAccount":
		return &AddAccount{
			Email:        in.Email,
			Currency:     in.Currency,
			AccountType:  in.AccountType,
			InterestRate: in.InterestRate,
			Timestamp:    in.Timestamp,
		}, nil
	case "addFunds":
		return &AddFunds{Account: in.Account, Amount: in.Amount}, nil
	case "createCard":
		return &CreateCard{Email: in.Email, Account: in.Account, Timestamp: in.Timestamp}, nil
	case "createOneTimeCard":
		return &CreateCard{Email: in.Email, Account: in.Account, Timestamp: in.Timestamp, OneTime: true}, nil
	case "deleteCard":
		return &DeleteCard{CardNumber: in.CardNumber, Timestamp: in.Timestamp}, nil
	case "deleteAccount":
		return &DeleteAccount{Email: in.Email, Account: in.Account, Timestamp: in.Timestamp}, nil
	case "payOnline":
		return &PayOnline{
			Email:       in.Email,
			CardNumber:  in.CardNumber,
			Amount:      in.Amount,
			Currency:    in.Currency,
			Timestamp:   in.Timestamp,
			Description: in.Description,
			Commerciant: in.Commerciant,
		}, nil
	case "cashWithdrawal":
		return &CashWithdrawal{
			CardNumber: in.CardNumber,
			Amount:     in.Amount,
			Email:      in.Email,
			Location:   in.Location,
			Timestamp:  in.Timestamp,
		}, nil
	case "sendMoney":
		return &SendMoney{
			Account:     in.Account,
			Amount:      in.Amount,
			Receiver:    in.Receiver,
			Timestamp:   in.Timestamp,
			Description: in.Description,
		}, nil
	case "splitPayment":
		return &SplitPayment{
			Accounts:  in.Accounts,
			Amount:    in.Amount,
			Currency:  in.Currency,
			Timestamp: in.Timestamp,
		}, nil
	case "setAlias":
		return &SetAlias{Email: in.Email, Alias: in.Alias, Account: in.Account}, nil
	case "setMinimumBalance":
		return &SetMinimumBalance{Account: in.Account, Amount: in.Amount, Timestamp: in.Timestamp}, nil
	case "checkCardStatus":
		return &CheckCardStatus{CardNumber: in.CardNumber, Timestamp: in.Timestamp}, nil
	case "changeInterestRate":
		return &ChangeInterestRate{Account: in.Account, InterestRate: in.InterestRate, Timestamp: in.Timestamp}, nil
	case "addInterest":
		return &AddInterest{Account: in.Account, InterestRate: in.InterestRate, Timestamp: in.Timestamp}, nil
	case "withdrawSavings":
		return &WithdrawSavings{
			Account:   in.Account,
			Amount:    in.Amount,
			Currency:  in.Currency,
			Timestamp: in.Timestamp,
		}, nil
	case "upgradePlan":
		return &UpgradePlan{Account: in.Account, NewPlan: in.NewPlanType, Timestamp: in.Timestamp}, nil
	case "printTransactions":
		return &PrintTransactions{Email: in.Email, Timestamp: in.Timestamp}, nil
	case "report":
		return &Report{
			Account:        in.Account,
			StartTimestamp: in.StartTimestamp,
			EndTimestamp:   in.EndTimestamp,
			Timestamp:      in.Timestamp,
		}, nil
	case "spendingsReport":
		return &SpendingsReport{
			Account:        in.Account,
			StartTimestamp: in.StartTimestamp,
			EndTimestamp:   in.EndTimestamp,
			Timestamp:      in.Timestamp,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, in.Command)
	}
}

// Queue runs commands strictly in arrival order, then resets the identifier
// generator so the next batch assigns the same IBANs and card numbers.
type Queue struct {
	commands []Command
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Add(cmd Command) {
	q.commands = append(q.commands, cmd)
}

func (q *Queue) Len() int {
	return len(q.commands)
}

func (q *Queue) Run(env *Env) {
	for _, cmd := range q.commands {
		env.Log.Debug("executing command", zap.String("kind", cmd.Kind()))
		cmd.Execute(env)
	}
	env.Gen.Reset()
	q.commands = q.commands[:0]
}
