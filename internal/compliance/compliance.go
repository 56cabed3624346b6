// Package compliance holds the read-only fraud, risk and regulatory
// heuristics. Nothing in this package mutates the ledger.
package compliance

import (
	"github.com/shopspring/decimal"

	"github.com/corebanking/ledger-service/internal/ledger"
)

// RiskLevel grades a credit application.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Transactions above this amount are flagged for anti-money-laundering review.
var amlThreshold = decimal.NewFromInt(10000)

var halfBalanceRatio = decimal.NewFromFloat(0.5)

// UnusualActivity flags a prospective transaction larger than half the
// account's current balance.
func UnusualActivity(account ledger.Account, amount decimal.Decimal) bool {
	return amount.GreaterThan(account.Balance().Mul(halfBalanceRatio))
}

// CreditRisk grades a loan amount against the customer's combined balances.
func CreditRisk(customer *ledger.Customer, loanAmount decimal.Decimal) RiskLevel {
	total := decimal.Zero
	for _, account := range customer.Accounts() {
		total = total.Add(account.Balance())
	}
	switch {
	case loanAmount.LessThan(total.Mul(halfBalanceRatio)):
		return RiskLow
	case loanAmount.LessThan(total):
		return RiskMedium
	default:
		return RiskHigh
	}
}

// CheckKYC verifies the customer's identity fields are all present.
func CheckKYC(customer *ledger.Customer) bool {
	return customer.Name != "" && customer.Email != "" && customer.Phone != ""
}

// CheckAML reports whether a transaction clears the AML threshold.
func CheckAML(txn ledger.Transaction) bool {
	return txn.Amount.LessThanOrEqual(amlThreshold)
}
