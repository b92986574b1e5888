// Package fileio decodes the batch document (users, exchange rates, ordered
// commands) and writes the resulting report.
package fileio

import (
	"encoding/json"
	"fmt"
	"os"
)

type Document struct {
	Users         []UserInput    `json:"users"`
	ExchangeRates []RateInput    `json:"exchangeRates"`
	Commands      []CommandInput `json:"commands"`
}

type UserInput struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Occupation string `json:"occupation"`
	BirthDate  string `json:"birthDate"`
}

type RateInput struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Rate float64 `json:"rate"`
}

// CommandInput carries the union of all command parameters; each command kind
// reads only its own subset.
type CommandInput struct {
	Command        string   `json:"command"`
	Timestamp      int      `json:"timestamp"`
	Email          string   `json:"email,omitempty"`
	Account        string   `json:"account,omitempty"`
	Currency       string   `json:"currency,omitempty"`
	AccountType    string   `json:"accountType,omitempty"`
	InterestRate   float64  `json:"interestRate,omitempty"`
	Amount         float64  `json:"amount,omitempty"`
	CardNumber     string   `json:"cardNumber,omitempty"`
	Description    string   `json:"description,omitempty"`
	Commerciant    string   `json:"commerciant,omitempty"`
	Receiver       string   `json:"receiver,omitempty"`
	Alias          string   `json:"alias,omitempty"`
	NewPlanType    string   `json:"newPlanType,omitempty"`
	Location       string   `json:"location,omitempty"`
	Accounts       []string `json:"accounts,omitempty"`
	StartTimestamp int      `json:"startTimestamp,omitempty"`
	EndTimestamp   int      `json:"endTimestamp,omitempty"`
}

func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read batch document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decode batch document: %w", err)
	}
	return doc, nil
}

// WriteReport writes the ordered output entries as a JSON array.
func WriteReport(path string, entries []any) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
