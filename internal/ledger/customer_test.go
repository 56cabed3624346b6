package ledger

import (
	"errors"
	"testing"
)

func TestCustomerAddAccount(t *testing.T) {
	c := NewCustomer("CUST1001", "John Doe", "john@example.com", "555-1234")
	a := newSavingsAccount("ACCT0000000010", c.ID, dec(100), DefaultSavingsInterestRate)

	if err := c.AddAccount(a); err != nil {
		t.Fatal(err)
	}
	// Re-adding the same number is rejected, never overwritten.
	if err := c.AddAccount(a); !errors.Is(err, ErrDuplicateAccount) {
		t.Fatalf("err=%v want ErrDuplicateAccount", err)
	}
	if len(c.Accounts()) != 1 {
		t.Fatalf("accounts=%d want=1", len(c.Accounts()))
	}
}

func TestCustomerGetAccount(t *testing.T) {
	c := NewCustomer("CUST1001", "John Doe", "john@example.com", "555-1234")
	a := newSavingsAccount("ACCT0000000011", c.ID, dec(100), DefaultSavingsInterestRate)
	if err := c.AddAccount(a); err != nil {
		t.Fatal(err)
	}

	got, err := c.GetAccount(a.AccountNumber())
	if err != nil {
		t.Fatal(err)
	}
	if got.AccountNumber() != a.AccountNumber() {
		t.Fatalf("got %s want %s", got.AccountNumber(), a.AccountNumber())
	}
	if _, err := c.GetAccount("ACCT9999999999"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v want ErrNotFound", err)
	}
}
