package report

import (
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/corebanking/ledger-service/internal/ledger"
)

func TestAccountStatement(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	bank := ledger.NewBank("Test Bank", ledger.DefaultOverdraftLimit, ledger.DefaultSavingsInterestRate, log)
	if err := bank.AddCustomer(ledger.NewCustomer("CUST1001", "John", "j@example.com", "555-1234")); err != nil {
		t.Fatal(err)
	}
	account, err := bank.CreateAccount("CUST1001", ledger.Savings, decimal.NewFromInt(1000))
	if err != nil {
		t.Fatal(err)
	}
	if err := account.Deposit(decimal.NewFromInt(200)); err != nil {
		t.Fatal(err)
	}
	if err := account.Withdraw(decimal.NewFromInt(50)); err != nil {
		t.Fatal(err)
	}

	got := AccountStatement(account)
	for _, want := range []string{
		account.AccountNumber(),
		"Current Balance: 1150.00",
		"Deposit of 200.00",
		"Withdraw of 50.00",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("statement missing %q:\n%s", want, got)
		}
	}
	if n := strings.Count(got, "\n- "); n != 2 {
		t.Fatalf("statement lists %d transactions, want 2", n)
	}
}

func TestAuditReport(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	bank := ledger.NewBank("Test Bank", ledger.DefaultOverdraftLimit, ledger.DefaultSavingsInterestRate, log)
	if err := bank.AddCustomer(ledger.NewCustomer("CUST1001", "John", "j@example.com", "555-1234")); err != nil {
		t.Fatal(err)
	}
	got := AuditReport(bank)
	if !strings.Contains(got, "Test Bank") || !strings.Contains(got, "[Customer]") {
		t.Fatalf("audit report incomplete:\n%s", got)
	}
}
