// Package ledger implements the bank's core ledger: customers, accounts,
// transactions and inter-account transfers. All state is in-memory; every
// mutation runs inside the owning account's critical section so the ledger
// stays consistent when collaborators (ATM, online banking, the interest
// scheduler) call in from different goroutines.
package ledger

import (
	"crypto/rand"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const accountNumberPrefix = "ACCT"

// Default policies, overridable through NewBank.
var (
	DefaultOverdraftLimit      = decimal.NewFromInt(1000)
	DefaultSavingsInterestRate = decimal.NewFromFloat(0.01)
)

// Bank is the authoritative registry of customers and accounts and the only
// place a multi-account mutation (transfer) is composed.
type Bank struct {
	name           string
	overdraftLimit decimal.Decimal
	savingsRate    decimal.Decimal
	log            *logrus.Logger

	mu        sync.RWMutex
	customers map[string]*Customer
	accounts  map[string]Account

	audit auditTrail
}

// NewBank creates an empty bank with the given withdrawal policies.
func NewBank(name string, overdraftLimit, savingsRate decimal.Decimal, log *logrus.Logger) *Bank {
	return &Bank{
		name:           name,
		overdraftLimit: overdraftLimit,
		savingsRate:    savingsRate,
		log:            log,
		customers:      make(map[string]*Customer),
		accounts:       make(map[string]Account),
	}
}

func (b *Bank) Name() string { return b.name }

// AddCustomer registers a customer. Duplicate IDs are rejected.
func (b *Bank) AddCustomer(c *Customer) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.customers[c.ID]; ok {
		return ErrDuplicateCustomer
	}
	b.customers[c.ID] = c
	b.audit.record(EventCustomer, "new customer registered", c.ID)
	b.log.Infof("Customer registered: %s", c.ID)
	return nil
}

// GetCustomer returns the customer with the given ID.
func (b *Bank) GetCustomer(id string) (*Customer, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	c, ok := b.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

// Customers returns a snapshot of all registered customers.
func (b *Bank) Customers() []*Customer {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]*Customer, 0, len(b.customers))
	for _, c := range b.customers {
		out = append(out, c)
	}
	return out
}

// CreateAccount mints a fresh account number, constructs the requested
// variant and registers it with both the bank and the owning customer.
// A minted number already in use is an invariant violation and is surfaced
// as ErrNumberCollision, never retried.
func (b *Bank) CreateAccount(customerID string, typ AccountType, initial decimal.Decimal) (Account, error) {
	if initial.IsNegative() {
		return nil, ErrInvalidAmount
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	customer, ok := b.customers[customerID]
	if !ok {
		return nil, ErrUnknownCustomer
	}

	number, err := mintAccountNumber()
	if err != nil {
		return nil, err
	}
	if _, exists := b.accounts[number]; exists {
		return nil, ErrNumberCollision
	}

	var account Account
	switch typ {
	case Savings:
		account = newSavingsAccount(number, customerID, initial, b.savingsRate)
	case Current:
		account = newCurrentAccount(number, customerID, initial, b.overdraftLimit)
	default:
		return nil, ErrUnknownAccountType
	}

	if err := customer.AddAccount(account); err != nil {
		return nil, fmt.Errorf("failed to attach account %s: %w", number, err)
	}
	b.accounts[number] = account
	b.audit.record(EventAccount, fmt.Sprintf("new %s account %s created", typ, number), customerID)
	b.log.Infof("Account created for customer %s: %s (%s)", customerID, number, typ)
	return account, nil
}

// GetAccount is the sole read path into the ledger for collaborators.
func (b *Bank) GetAccount(number string) (Account, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	a, ok := b.accounts[number]
	if !ok {
		return nil, ErrNotFound
	}
	return a, nil
}

// Accounts returns a snapshot of all registered accounts.
func (b *Bank) Accounts() []Account {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Account, 0, len(b.accounts))
	for _, a := range b.accounts {
		out = append(out, a)
	}
	return out
}

// Transfer moves amount between two accounts, all-or-nothing from the
// caller's point of view:
//
//  1. Both numbers must resolve, or the transfer fails with no side effects.
//  2. The source withdrawal is checked against the source account's own rule.
//  3. If the destination deposit fails the source is compensated with a
//     restoring deposit before the failure is reported.
//
// Both account locks are taken in account-number order so two transfers
// moving funds in opposite directions cannot deadlock.
func (b *Bank) Transfer(fromNumber, toNumber string, amount decimal.Decimal) error {
	if fromNumber == toNumber {
		return ErrSameAccount
	}

	src, err := b.GetAccount(fromNumber)
	if err != nil {
		return err
	}
	dst, err := b.GetAccount(toNumber)
	if err != nil {
		return err
	}

	first, second := src, dst
	if second.AccountNumber() < first.AccountNumber() {
		first, second = second, first
	}
	first.lock()
	second.lock()
	defer second.unlock()
	defer first.unlock()

	if err := src.withdrawLocked(amount, KindTransferOut); err != nil {
		return err
	}
	if err := dst.depositLocked(amount, KindTransferIn); err != nil {
		// Compensate: restore the source before reporting failure.
		if cerr := src.depositLocked(amount, KindDeposit); cerr != nil {
			b.log.Errorf("Transfer compensation failed, account %s is short %s: %v",
				fromNumber, amount.StringFixed(2), cerr)
			return ErrCompensationFailed
		}
		return err
	}

	b.audit.record(EventTransfer,
		fmt.Sprintf("transfer of %s from %s to %s", amount.StringFixed(2), fromNumber, toNumber),
		"system")
	b.log.Infof("Transferred %s from %s to %s", amount.StringFixed(2), fromNumber, toNumber)
	return nil
}

// AuditLog returns a copy of the full audit trail.
func (b *Bank) AuditLog() []AuditEntry {
	return b.audit.log()
}

// mintAccountNumber draws a prefixed random digit string. The number space
// is large enough to make collisions negligible; CreateAccount still checks.
func mintAccountNumber() (string, error) {
	digits := make([]byte, 10)
	if _, err := rand.Read(digits); err != nil {
		return "", fmt.Errorf("failed to mint account number: %w", err)
	}
	var sb strings.Builder
	sb.WriteString(accountNumberPrefix)
	for _, d := range digits {
		sb.WriteByte(d%10 + '0')
	}
	return sb.String(), nil
}
