// Package forex provides currency conversion over a cross-rate table.
// The table ships with a static seed and can be refreshed from an XML feed.
package forex

import (
	"errors"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// ErrUnknownRate means no rate is published for the currency pair.
var ErrUnknownRate = errors.New("unknown currency pair")

// Service holds the cross-rate table.
type Service struct {
	mu    sync.RWMutex
	rates map[string]map[string]decimal.Decimal
}

// NewService returns a service seeded with the default cross-rate table.
func NewService() *Service {
	s := &Service{rates: make(map[string]map[string]decimal.Decimal)}
	seed := map[string]map[string]float64{
		"USD": {"EUR": 0.85, "GBP": 0.73, "JPY": 110.0},
		"EUR": {"USD": 1.18, "GBP": 0.86, "JPY": 129.5},
		"GBP": {"USD": 1.37, "EUR": 1.16, "JPY": 150.8},
		"JPY": {"USD": 0.0091, "EUR": 0.0077, "GBP": 0.0066},
	}
	for from, row := range seed {
		for to, rate := range row {
			s.SetRate(from, to, decimal.NewFromFloat(rate))
		}
	}
	return s
}

// Convert applies the published rate for the pair. Converting a currency to
// itself is the identity.
func (s *Service) Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	if from == to {
		return amount, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	row, ok := s.rates[from]
	if !ok {
		return decimal.Zero, ErrUnknownRate
	}
	rate, ok := row[to]
	if !ok {
		return decimal.Zero, ErrUnknownRate
	}
	return amount.Mul(rate), nil
}

// Rate returns the published rate for the pair.
func (s *Service) Rate(from, to string) (decimal.Decimal, error) {
	one := decimal.NewFromInt(1)
	return s.Convert(one, from, to)
}

// SetRate publishes or replaces the rate for a pair.
func (s *Service) SetRate(from, to string, rate decimal.Decimal) {
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rates[from]
	if !ok {
		row = make(map[string]decimal.Decimal)
		s.rates[from] = row
	}
	row[to] = rate
}
