// Package cards processes credit-card purchases and payments against a
// revolving credit line.
package cards

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/corebanking/ledger-service/internal/ledger"
)

// ErrInsufficientCredit means the purchase would exceed the available credit.
var ErrInsufficientCredit = errors.New("insufficient available credit")

const numberPrefix = "400000"

// EntryKind classifies a card entry.
type EntryKind string

const (
	EntryPurchase EntryKind = "Purchase"
	EntryPayment  EntryKind = "Payment"
)

// Entry records one purchase or payment on a card. Card entries live on the
// card, not in the account ledger.
type Entry struct {
	ID         string
	Amount     decimal.Decimal
	Kind       EntryKind
	CardNumber string
	CreatedAt  time.Time
}

// CreditCard is a revolving credit line.
type CreditCard struct {
	Number     string
	CustomerID string
	Limit      decimal.Decimal
	ExpiryDate string

	mu        sync.Mutex
	available decimal.Decimal
	entries   []Entry
	tag       string
}

// Issue mints a new card for the customer. The CVV is returned once and only
// its HMAC tag is retained.
func Issue(customerID string, limit decimal.Decimal, hmacSecret string) (*CreditCard, string, error) {
	if !limit.IsPositive() {
		return nil, "", ledger.ErrInvalidAmount
	}
	number, err := GenerateCardNumber(numberPrefix, 16)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate card number: %w", err)
	}
	expiry := GenerateExpiryDate()
	cvv := GenerateCVV()

	card := &CreditCard{
		Number:     number,
		CustomerID: customerID,
		Limit:      limit,
		ExpiryDate: expiry,
		available:  limit,
		tag:        IntegrityTag(number, expiry, cvv, hmacSecret),
	}
	return card, cvv, nil
}

// MakePurchase draws down the available credit.
func (c *CreditCard) MakePurchase(amount decimal.Decimal) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !amount.IsPositive() {
		return ledger.ErrInvalidAmount
	}
	if c.available.LessThan(amount) {
		return ErrInsufficientCredit
	}
	c.available = c.available.Sub(amount)
	c.append(amount, EntryPurchase)
	return nil
}

// MakePayment restores available credit.
func (c *CreditCard) MakePayment(amount decimal.Decimal) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !amount.IsPositive() {
		return ledger.ErrInvalidAmount
	}
	c.available = c.available.Add(amount)
	c.append(amount, EntryPayment)
	return nil
}

// Available returns the remaining credit.
func (c *CreditCard) Available() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.available
}

// Entries returns a copy of the card's entry history.
func (c *CreditCard) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Verify checks the presented CVV against the card's integrity tag.
func (c *CreditCard) Verify(cvv, hmacSecret string) bool {
	return IntegrityTag(c.Number, c.ExpiryDate, cvv, hmacSecret) == c.tag
}

// append assumes the lock is held.
func (c *CreditCard) append(amount decimal.Decimal, kind EntryKind) {
	c.entries = append(c.entries, Entry{
		ID:         uuid.NewString(),
		Amount:     amount,
		Kind:       kind,
		CardNumber: c.Number,
		CreatedAt:  time.Now(),
	})
}
