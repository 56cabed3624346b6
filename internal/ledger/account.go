package ledger

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType selects the account variant created by Bank.CreateAccount.
type AccountType string

const (
	Savings AccountType = "savings"
	Current AccountType = "current"
)

// Account is the ledger's view of a single account. Balances change only
// through Deposit and Withdraw; a failed call performs no mutation. The
// withdrawal rule is the one place behavior differs between variants.
//
// The unexported methods keep account implementations inside this package:
// the bank needs lock-free access to compose a transfer under ordered locks.
type Account interface {
	AccountNumber() string
	CustomerID() string
	OpenedAt() time.Time
	Balance() decimal.Decimal
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
	// Transactions returns a point-in-time copy of the account's history,
	// in insertion (chronological) order.
	Transactions() []Transaction

	lock()
	unlock()
	depositLocked(amount decimal.Decimal, kind Kind) error
	withdrawLocked(amount decimal.Decimal, kind Kind) error
}

// baseAccount carries the state and behavior shared by all variants.
// The mutex guards the read-check-write sequence inside every mutation.
type baseAccount struct {
	mu           sync.Mutex
	number       string
	customerID   string
	balance      decimal.Decimal
	openedAt     time.Time
	transactions []Transaction
}

func newBaseAccount(number, customerID string, initial decimal.Decimal) baseAccount {
	return baseAccount{
		number:     number,
		customerID: customerID,
		balance:    initial,
		openedAt:   time.Now(),
	}
}

func (a *baseAccount) AccountNumber() string { return a.number }
func (a *baseAccount) CustomerID() string    { return a.customerID }
func (a *baseAccount) OpenedAt() time.Time   { return a.openedAt }

func (a *baseAccount) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

func (a *baseAccount) Transactions() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// Deposit credits the account. There is no upper bound on a balance, so a
// deposit fails only for a non-positive amount.
func (a *baseAccount) Deposit(amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.depositLocked(amount, KindDeposit)
}

func (a *baseAccount) lock()   { a.mu.Lock() }
func (a *baseAccount) unlock() { a.mu.Unlock() }

func (a *baseAccount) depositLocked(amount decimal.Decimal, kind Kind) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	a.transactions = append(a.transactions, newTransaction(amount, kind, a.number))
	return nil
}

func (a *baseAccount) debitLocked(amount decimal.Decimal, kind Kind) {
	a.balance = a.balance.Sub(amount)
	a.transactions = append(a.transactions, newTransaction(amount, kind, a.number))
}

// SavingsAccount never lets its balance go negative.
type SavingsAccount struct {
	baseAccount
	interestRate decimal.Decimal
}

func newSavingsAccount(number, customerID string, initial, interestRate decimal.Decimal) *SavingsAccount {
	return &SavingsAccount{
		baseAccount:  newBaseAccount(number, customerID, initial),
		interestRate: interestRate,
	}
}

func (s *SavingsAccount) Withdraw(amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.withdrawLocked(amount, KindWithdraw)
}

func (s *SavingsAccount) withdrawLocked(amount decimal.Decimal, kind Kind) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if s.balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	s.debitLocked(amount, kind)
	return nil
}

// ApplyInterest credits one period of interest on the current balance and
// returns the credited amount, rounded to cents.
func (s *SavingsAccount) ApplyInterest() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	interest := s.balance.Mul(s.interestRate).Round(2)
	if !interest.IsPositive() {
		return decimal.Zero
	}
	if err := s.depositLocked(interest, KindDeposit); err != nil {
		return decimal.Zero
	}
	return interest
}

// InterestRate returns the per-period rate applied by ApplyInterest.
func (s *SavingsAccount) InterestRate() decimal.Decimal { return s.interestRate }

// CurrentAccount may go negative down to its overdraft limit.
type CurrentAccount struct {
	baseAccount
	overdraftLimit decimal.Decimal
}

func newCurrentAccount(number, customerID string, initial, overdraftLimit decimal.Decimal) *CurrentAccount {
	return &CurrentAccount{
		baseAccount:    newBaseAccount(number, customerID, initial),
		overdraftLimit: overdraftLimit,
	}
}

func (c *CurrentAccount) Withdraw(amount decimal.Decimal) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.withdrawLocked(amount, KindWithdraw)
}

func (c *CurrentAccount) withdrawLocked(amount decimal.Decimal, kind Kind) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if c.balance.Add(c.overdraftLimit).LessThan(amount) {
		return ErrInsufficientFunds
	}
	c.debitLocked(amount, kind)
	return nil
}

// OverdraftLimit returns the maximum negative balance this account may reach.
func (c *CurrentAccount) OverdraftLimit() decimal.Decimal { return c.overdraftLimit }

var (
	_ Account = (*SavingsAccount)(nil)
	_ Account = (*CurrentAccount)(nil)
)
