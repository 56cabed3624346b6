// Package loan tracks customer loans and their repayment arithmetic.
package loan

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidPayment means the payment is non-positive or exceeds the
// remaining balance.
var ErrInvalidPayment = errors.New("invalid loan payment")

// Loan is a fixed-term loan with an annuity repayment schedule.
type Loan struct {
	ID         string
	CustomerID string
	Principal  decimal.Decimal
	AnnualRate decimal.Decimal
	TermMonths int
	StartedAt  time.Time

	mu        sync.Mutex
	remaining decimal.Decimal
	payments  []decimal.Decimal
}

func New(id, customerID string, principal, annualRate decimal.Decimal, termMonths int) *Loan {
	return &Loan{
		ID:         id,
		CustomerID: customerID,
		Principal:  principal,
		AnnualRate: annualRate,
		TermMonths: termMonths,
		StartedAt:  time.Now(),
		remaining:  principal,
	}
}

// MakePayment reduces the remaining balance. Overpayment is rejected.
func (l *Loan) MakePayment(amount decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !amount.IsPositive() || amount.GreaterThan(l.remaining) {
		return ErrInvalidPayment
	}
	l.remaining = l.remaining.Sub(amount)
	l.payments = append(l.payments, amount)
	return nil
}

// Remaining returns the outstanding balance.
func (l *Loan) Remaining() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.remaining
}

// Payments returns a copy of the payment history.
func (l *Loan) Payments() []decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]decimal.Decimal, len(l.payments))
	copy(out, l.payments)
	return out
}

// MonthlyPayment returns the annuity payment for the loan's principal, rate
// and term, rounded to cents.
func (l *Loan) MonthlyPayment() decimal.Decimal {
	p := l.Principal.InexactFloat64()
	n := float64(l.TermMonths)
	r := l.AnnualRate.InexactFloat64() / 12
	if r == 0 {
		return l.Principal.Div(decimal.NewFromInt(int64(l.TermMonths))).Round(2)
	}
	growth := math.Pow(1+r, n)
	payment := p * r * growth / (growth - 1)
	return decimal.NewFromFloat(payment).Round(2)
}

// SimpleInterest returns principal × rate × years.
func SimpleInterest(principal decimal.Decimal, rate, years float64) decimal.Decimal {
	return principal.
		Mul(decimal.NewFromFloat(rate)).
		Mul(decimal.NewFromFloat(years)).
		Round(2)
}

// CompoundInterest returns the interest earned on principal compounded
// compoundsPerYear times per year over the given number of years.
func CompoundInterest(principal decimal.Decimal, rate, years float64, compoundsPerYear int) decimal.Decimal {
	p := principal.InexactFloat64()
	n := float64(compoundsPerYear)
	amount := p * math.Pow(1+rate/n, n*years)
	return decimal.NewFromFloat(amount - p).Round(2)
}
