package ledger

// Lookups are linear scans in insertion order; the first match wins. A nil
// result means the command should abort without side effects.

func FindUserByEmail(users []*User, email string) *User {
	for _, user := range users {
		if user.Email == email {
			return user
		}
	}
	return nil
}

// FindAccount resolves an account reference: IBAN first, then alias.
func FindAccount(users []*User, ref string) *Account {
	if account := FindAccountByIBAN(users, ref); account != nil {
		return account
	}
	for _, user := range users {
		for _, account := range user.Accounts {
			if account.Alias != "" && account.Alias == ref {
				return account
			}
		}
	}
	return nil
}

func FindAccountByIBAN(users []*User, iban string) *Account {
	for _, user := range users {
		for _, account := range user.Accounts {
			if account.IBAN == iban {
				return account
			}
		}
	}
	return nil
}

// FindByCard returns the owning user, account and card for a card number.
func FindByCard(users []*User, number string) (*User, *Account, *Card) {
	for _, user := range users {
		for _, account := range user.Accounts {
			if card := account.Card(number); card != nil {
				return user, account, card
			}
		}
	}
	return nil, nil, nil
}

func OwnerOf(users []*User, account *Account) *User {
	for _, user := range users {
		for _, candidate := range user.Accounts {
			if candidate == account {
				return user
			}
		}
	}
	return nil
}

func IBANExists(users []*User, iban string) bool {
	return FindAccountByIBAN(users, iban) != nil
}

func CardNumberExists(users []*User, number string) bool {
	_, _, card := FindByCard(users, number)
	return card != nil
}
