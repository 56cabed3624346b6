// Package report renders read-only views over ledger state.
package report

import (
	"fmt"
	"strings"

	"github.com/corebanking/ledger-service/internal/ledger"
)

// AccountStatement renders the account's balance and full transaction
// history as a human-readable statement.
func AccountStatement(account ledger.Account) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Account Statement for %s\n", account.AccountNumber())
	fmt.Fprintf(&sb, "Current Balance: %s\n", account.Balance().StringFixed(2))
	sb.WriteString("Transaction History:\n")
	for _, txn := range account.Transactions() {
		fmt.Fprintf(&sb, "- %s\n", txn)
	}
	return sb.String()
}

// AuditReport renders the bank's audit trail.
func AuditReport(bank *ledger.Bank) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Audit Trail for %s\n", bank.Name())
	for _, e := range bank.AuditLog() {
		fmt.Fprintf(&sb, "- %s [%s] %s (actor: %s)\n",
			e.Timestamp.Format("2006-01-02 15:04:05"), e.EventType, e.Description, e.ActorID)
	}
	return sb.String()
}
