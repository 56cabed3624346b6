// Package atm wraps account operations behind a machine's own cash-balance
// check. The account's eligibility rule is never bypassed.
package atm

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/corebanking/ledger-service/internal/ledger"
)

// ErrInsufficientCash means the machine cannot dispense the requested amount.
var ErrInsufficientCash = errors.New("atm has insufficient cash")

// ATM models a single machine with a cash float.
type ATM struct {
	mu       sync.Mutex
	id       string
	location string
	cash     decimal.Decimal
	log      *logrus.Logger
}

func New(id, location string, cash decimal.Decimal, log *logrus.Logger) *ATM {
	return &ATM{id: id, location: location, cash: cash, log: log}
}

func (m *ATM) ID() string       { return m.id }
func (m *ATM) Location() string { return m.location }

// CashBalance returns the machine's current cash float.
func (m *ATM) CashBalance() decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cash
}

// Withdraw dispenses cash if the machine holds enough and the account's own
// withdrawal rule allows it. The cash float only changes after the account
// withdrawal succeeds.
func (m *ATM) Withdraw(account ledger.Account, amount decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !amount.IsPositive() {
		return ledger.ErrInvalidAmount
	}
	if m.cash.LessThan(amount) {
		return ErrInsufficientCash
	}
	if err := account.Withdraw(amount); err != nil {
		return err
	}
	m.cash = m.cash.Sub(amount)
	m.log.Infof("ATM %s dispensed %s for account %s", m.id, amount.StringFixed(2), account.AccountNumber())
	return nil
}

// Deposit accepts cash into the machine and credits the account.
func (m *ATM) Deposit(account ledger.Account, amount decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := account.Deposit(amount); err != nil {
		return err
	}
	m.cash = m.cash.Add(amount)
	m.log.Infof("ATM %s accepted %s for account %s", m.id, amount.StringFixed(2), account.AccountNumber())
	return nil
}

// CheckBalance reads the account balance through the machine.
func (m *ATM) CheckBalance(account ledger.Account) decimal.Decimal {
	return account.Balance()
}
