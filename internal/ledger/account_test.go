package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func newSavings(t *testing.T, balance float64) *SavingsAccount {
	t.Helper()
	return newSavingsAccount("ACCT0000000001", "CUST1001", dec(balance), DefaultSavingsInterestRate)
}

func newCurrent(t *testing.T, balance float64) *CurrentAccount {
	t.Helper()
	return newCurrentAccount("ACCT0000000002", "CUST1001", dec(balance), DefaultOverdraftLimit)
}

func TestDepositIncreasesBalance(t *testing.T) {
	a := newSavings(t, 1000)
	if err := a.Deposit(dec(200)); err != nil {
		t.Fatal(err)
	}
	if got := a.Balance(); !got.Equal(dec(1200)) {
		t.Fatalf("balance=%s want=1200", got)
	}
	txns := a.Transactions()
	if len(txns) != 1 {
		t.Fatalf("transactions=%d want=1", len(txns))
	}
	if txns[0].Kind != KindDeposit || !txns[0].Amount.Equal(dec(200)) {
		t.Fatalf("got %s %s, want Deposit 200", txns[0].Kind, txns[0].Amount)
	}
	if txns[0].AccountNumber != a.AccountNumber() {
		t.Fatalf("transaction owner=%s want=%s", txns[0].AccountNumber, a.AccountNumber())
	}
}

func TestDepositRejectsNonPositive(t *testing.T) {
	for _, amt := range []float64{0, -1, -500.25} {
		a := newSavings(t, 1000)
		if err := a.Deposit(dec(amt)); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("Deposit(%v) err=%v want ErrInvalidAmount", amt, err)
		}
		if !a.Balance().Equal(dec(1000)) {
			t.Fatalf("Deposit(%v) mutated balance to %s", amt, a.Balance())
		}
		if len(a.Transactions()) != 0 {
			t.Fatalf("Deposit(%v) appended a transaction", amt)
		}
	}
}

func TestSavingsWithdrawRules(t *testing.T) {
	tests := []struct {
		name    string
		balance float64
		amount  float64
		wantErr error
		wantBal float64
	}{
		{"within balance", 1000, 400, nil, 600},
		{"exact balance", 1000, 1000, nil, 0},
		{"over balance", 1000, 1500, ErrInsufficientFunds, 1000},
		{"zero amount", 1000, 0, ErrInvalidAmount, 1000},
		{"negative amount", 1000, -50, ErrInvalidAmount, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newSavings(t, tt.balance)
			err := a.Withdraw(dec(tt.amount))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err=%v want=%v", err, tt.wantErr)
			}
			if !a.Balance().Equal(dec(tt.wantBal)) {
				t.Fatalf("balance=%s want=%v", a.Balance(), tt.wantBal)
			}
			if tt.wantErr != nil && len(a.Transactions()) != 0 {
				t.Fatal("failed withdraw appended a transaction")
			}
		})
	}
}

// A savings balance must stay non-negative under any operation sequence.
func TestSavingsNeverNegative(t *testing.T) {
	a := newSavings(t, 100)
	ops := []func() error{
		func() error { return a.Withdraw(dec(60)) },
		func() error { return a.Withdraw(dec(60)) }, // must fail, 40 left
		func() error { return a.Deposit(dec(10)) },
		func() error { return a.Withdraw(dec(50)) },
		func() error { return a.Withdraw(dec(0.01)) }, // must fail, 0 left
	}
	for i, op := range ops {
		_ = op()
		if a.Balance().IsNegative() {
			t.Fatalf("balance went negative after op %d: %s", i, a.Balance())
		}
	}
	if !a.Balance().Equal(decimal.Zero) {
		t.Fatalf("balance=%s want=0", a.Balance())
	}
}

func TestCurrentOverdraft(t *testing.T) {
	a := newCurrent(t, 500)
	// Within the overdraft window: 1200 <= 500 + 1000.
	if err := a.Withdraw(dec(1200)); err != nil {
		t.Fatal(err)
	}
	if !a.Balance().Equal(dec(-700)) {
		t.Fatalf("balance=%s want=-700", a.Balance())
	}
	// Past the limit: would land below -1000.
	if err := a.Withdraw(dec(301)); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err=%v want ErrInsufficientFunds", err)
	}
	if !a.Balance().Equal(dec(-700)) {
		t.Fatalf("failed withdraw mutated balance to %s", a.Balance())
	}
	// Exactly at the limit is allowed.
	if err := a.Withdraw(dec(300)); err != nil {
		t.Fatal(err)
	}
	if !a.Balance().Equal(dec(-1000)) {
		t.Fatalf("balance=%s want=-1000", a.Balance())
	}
}

func TestCurrentBoundHoldsAcrossSequences(t *testing.T) {
	a := newCurrent(t, 0)
	limit := DefaultOverdraftLimit.Neg()
	for _, amt := range []float64{400, 400, 400, 400} {
		_ = a.Withdraw(dec(amt))
		if a.Balance().LessThan(limit) {
			t.Fatalf("balance %s breached overdraft limit", a.Balance())
		}
	}
	if !a.Balance().Equal(dec(-800)) {
		t.Fatalf("balance=%s want=-800 (third and fourth withdrawals rejected)", a.Balance())
	}
}

func TestTransactionHistoryOrderedSnapshot(t *testing.T) {
	a := newSavings(t, 0)
	amounts := []float64{10, 20, 30}
	for _, amt := range amounts {
		if err := a.Deposit(dec(amt)); err != nil {
			t.Fatal(err)
		}
	}
	txns := a.Transactions()
	if len(txns) != len(amounts) {
		t.Fatalf("transactions=%d want=%d", len(txns), len(amounts))
	}
	for i, amt := range amounts {
		if !txns[i].Amount.Equal(dec(amt)) {
			t.Fatalf("txns[%d].Amount=%s want=%v (insertion order broken)", i, txns[i].Amount, amt)
		}
	}
	seen := map[string]bool{}
	for _, txn := range txns {
		if seen[txn.ID] {
			t.Fatalf("duplicate transaction ID %s", txn.ID)
		}
		seen[txn.ID] = true
	}
	// The snapshot must be independent of the live history.
	txns[0].Amount = dec(999)
	if !a.Transactions()[0].Amount.Equal(dec(10)) {
		t.Fatal("Transactions returned a live slice")
	}
}

func TestApplyInterest(t *testing.T) {
	a := newSavingsAccount("ACCT0000000003", "CUST1001", dec(1000), dec(0.01))
	interest := a.ApplyInterest()
	if !interest.Equal(dec(10)) {
		t.Fatalf("interest=%s want=10", interest)
	}
	if !a.Balance().Equal(dec(1010)) {
		t.Fatalf("balance=%s want=1010", a.Balance())
	}
	txns := a.Transactions()
	if len(txns) != 1 || txns[0].Kind != KindDeposit {
		t.Fatalf("interest should record one Deposit, got %+v", txns)
	}

	empty := newSavingsAccount("ACCT0000000004", "CUST1001", decimal.Zero, dec(0.01))
	if got := empty.ApplyInterest(); !got.Equal(decimal.Zero) {
		t.Fatalf("interest on zero balance=%s want=0", got)
	}
	if len(empty.Transactions()) != 0 {
		t.Fatal("zero interest should not record a transaction")
	}
}
