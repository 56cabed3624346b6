package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind classifies a ledger entry.
type Kind string

const (
	KindDeposit     Kind = "Deposit"
	KindWithdraw    Kind = "Withdraw"
	KindTransferIn  Kind = "Transfer-In"
	KindTransferOut Kind = "Transfer-Out"
)

// Transaction is a single immutable ledger entry. Transactions are created
// only as a side effect of a successful balance mutation on an account and
// are owned by the account that recorded them.
type Transaction struct {
	ID            string
	Amount        decimal.Decimal
	Kind          Kind
	AccountNumber string
	CreatedAt     time.Time
}

func newTransaction(amount decimal.Decimal, kind Kind, accountNumber string) Transaction {
	return Transaction{
		ID:            uuid.NewString(),
		Amount:        amount,
		Kind:          kind,
		AccountNumber: accountNumber,
		CreatedAt:     time.Now(),
	}
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s - %s: %s of %s on account %s",
		t.CreatedAt.Format(time.RFC3339), t.ID, t.Kind, t.Amount.StringFixed(2), t.AccountNumber)
}
