// Package ledger holds the in-memory state the command engine mutates: users,
// their accounts, cards and append-only transaction logs, plus the seeded
// generators for account and card identifiers.
package ledger

type User struct {
	Email      string
	FirstName  string
	LastName   string
	Occupation string
	BirthDate  string
	Accounts   []*Account
}

func (u *User) AddAccount(account *Account) {
	u.Accounts = append(u.Accounts, account)
}

// RemoveAccount detaches the account with the given IBAN, preserving the
// insertion order of the rest.
func (u *User) RemoveAccount(iban string) bool {
	for i, account := range u.Accounts {
		if account.IBAN == iban {
			u.Accounts = append(u.Accounts[:i], u.Accounts[i+1:]...)
			return true
		}
	}
	return false
}
