package cards

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// GenerateCardNumber generates a card number with the specified prefix and length
func GenerateCardNumber(prefix string, length int) (string, error) {
	if length < len(prefix) || length > 19 {
		return "", fmt.Errorf("invalid card number length: %d", length)
	}

	digits := make([]byte, length-len(prefix))
	_, err := rand.Read(digits)
	if err != nil {
		return "", fmt.Errorf("failed to generate random digits: %w", err)
	}

	var builder strings.Builder
	builder.WriteString(prefix)
	for _, b := range digits {
		digit := b%10 + '0' // Convert to ASCII digit
		builder.WriteByte(digit)
	}

	return builder.String(), nil
}

// GenerateExpiryDate generates a card expiry date (MM/YY)
func GenerateExpiryDate() string {
	now := time.Now()
	year := now.Year() + 3 // Cards valid for 3 years
	month := now.Month()
	return fmt.Sprintf("%02d/%02d", month, year%100)
}

// GenerateCVV generates a 3-digit CVV code
func GenerateCVV() string {
	b := make([]byte, 3)
	rand.Read(b)
	return fmt.Sprintf("%03d", (int(b[0])%10)*100+(int(b[1])%10)*10+int(b[2])%10)
}

// IntegrityTag generates an HMAC over the card details
func IntegrityTag(cardNumber, expiryDate, cvv, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	data := cardNumber + expiryDate + cvv
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
