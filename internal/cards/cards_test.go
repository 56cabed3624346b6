package cards

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/corebanking/ledger-service/internal/ledger"
)

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

const secret = "test-hmac-secret"

func TestIssue(t *testing.T) {
	card, cvv, err := Issue("CUST1001", dec(5000), secret)
	if err != nil {
		t.Fatal(err)
	}
	if len(card.Number) != 16 || !strings.HasPrefix(card.Number, numberPrefix) {
		t.Fatalf("card number %q", card.Number)
	}
	if len(cvv) != 3 {
		t.Fatalf("cvv %q", cvv)
	}
	if !card.Available().Equal(dec(5000)) {
		t.Fatalf("available=%s want=5000", card.Available())
	}
	if !card.Verify(cvv, secret) {
		t.Fatal("issued CVV failed verification")
	}
	if card.Verify("000", secret) && cvv != "000" {
		t.Fatal("wrong CVV verified")
	}
	if card.Verify(cvv, "other-secret") {
		t.Fatal("wrong secret verified")
	}
}

func TestIssueRejectsNonPositiveLimit(t *testing.T) {
	if _, _, err := Issue("CUST1001", decimal.Zero, secret); !errors.Is(err, ledger.ErrInvalidAmount) {
		t.Fatalf("err=%v want ErrInvalidAmount", err)
	}
}

func TestMakePurchase(t *testing.T) {
	card, _, err := Issue("CUST1001", dec(1000), secret)
	if err != nil {
		t.Fatal(err)
	}
	if err := card.MakePurchase(dec(400)); err != nil {
		t.Fatal(err)
	}
	if !card.Available().Equal(dec(600)) {
		t.Fatalf("available=%s want=600", card.Available())
	}
	if err := card.MakePurchase(dec(601)); !errors.Is(err, ErrInsufficientCredit) {
		t.Fatalf("err=%v want ErrInsufficientCredit", err)
	}
	if err := card.MakePurchase(dec(-5)); !errors.Is(err, ledger.ErrInvalidAmount) {
		t.Fatalf("err=%v want ErrInvalidAmount", err)
	}
	entries := card.Entries()
	if len(entries) != 1 || entries[0].Kind != EntryPurchase || !entries[0].Amount.Equal(dec(400)) {
		t.Fatalf("entries=%+v", entries)
	}
}

func TestMakePayment(t *testing.T) {
	card, _, err := Issue("CUST1001", dec(1000), secret)
	if err != nil {
		t.Fatal(err)
	}
	if err := card.MakePurchase(dec(700)); err != nil {
		t.Fatal(err)
	}
	if err := card.MakePayment(dec(500)); err != nil {
		t.Fatal(err)
	}
	if !card.Available().Equal(dec(800)) {
		t.Fatalf("available=%s want=800", card.Available())
	}
	if err := card.MakePayment(decimal.Zero); !errors.Is(err, ledger.ErrInvalidAmount) {
		t.Fatalf("err=%v want ErrInvalidAmount", err)
	}
	if len(card.Entries()) != 2 {
		t.Fatalf("entries=%d want=2", len(card.Entries()))
	}
}

func TestGenerateCardNumber(t *testing.T) {
	if _, err := GenerateCardNumber("400000", 20); err == nil {
		t.Fatal("expected error for length > 19")
	}
	if _, err := GenerateCardNumber("400000", 4); err == nil {
		t.Fatal("expected error for length < prefix")
	}
	n, err := GenerateCardNumber("400000", 16)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range n {
		if r < '0' || r > '9' {
			t.Fatalf("card number %q contains non-digit", n)
		}
	}
}

func TestGenerateExpiryDate(t *testing.T) {
	e := GenerateExpiryDate()
	if len(e) != 5 || e[2] != '/' {
		t.Fatalf("expiry %q not MM/YY", e)
	}
}
