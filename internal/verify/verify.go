// Package verify stubs the third-party identity and credit-bureau calls.
package verify

import "math/rand"

// Identity simulates an identity-verification service call.
func Identity(name, idNumber string) bool {
	return len(name) > 2 && len(idNumber) > 5
}

// CreditScore simulates a credit-bureau lookup, returning a score in [300, 850].
func CreditScore(customerID string) int {
	return 300 + rand.Intn(551)
}
