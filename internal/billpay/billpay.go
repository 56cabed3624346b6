// Package billpay settles bills by drawing on a ledger account.
package billpay

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/corebanking/ledger-service/internal/ledger"
)

// Status of a bill payment.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

// Payment is one bill to be settled from an account.
type Payment struct {
	ID            string
	AccountNumber string
	Payee         string
	Amount        decimal.Decimal
	CreatedAt     time.Time

	mu     sync.Mutex
	status Status
}

func New(accountNumber, payee string, amount decimal.Decimal) *Payment {
	return &Payment{
		ID:            uuid.NewString(),
		AccountNumber: accountNumber,
		Payee:         payee,
		Amount:        amount,
		CreatedAt:     time.Now(),
		status:        StatusPending,
	}
}

// Process withdraws the bill amount through the account's own rules and
// marks the payment completed or failed.
func (p *Payment) Process(bank *ledger.Bank) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	account, err := bank.GetAccount(p.AccountNumber)
	if err != nil {
		p.status = StatusFailed
		return err
	}
	if err := account.Withdraw(p.Amount); err != nil {
		p.status = StatusFailed
		return err
	}
	p.status = StatusCompleted
	return nil
}

func (p *Payment) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}
