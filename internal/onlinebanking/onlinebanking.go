// Package onlinebanking gates ledger operations behind a session token.
// Sessions are opaque, unexpiring strings minted at login.
package onlinebanking

import (
	"errors"
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/corebanking/ledger-service/internal/ledger"
)

var (
	// ErrInvalidCredentials means the customer is not enrolled or the password is wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidSession means the session token failed verification.
	ErrInvalidSession = errors.New("invalid session token")
)

// Service is the online-banking front over the ledger.
type Service struct {
	bank   *ledger.Bank
	secret []byte
	log    *logrus.Logger

	mu          sync.Mutex
	credentials map[string]string // customer ID -> bcrypt hash
}

func NewService(bank *ledger.Bank, jwtSecret string, log *logrus.Logger) *Service {
	return &Service{
		bank:        bank,
		secret:      []byte(jwtSecret),
		log:         log,
		credentials: make(map[string]string),
	}
}

// Register enrolls a bank customer for online access with a hashed password.
func (s *Service) Register(customerID, password string) error {
	if _, err := s.bank.GetCustomer(customerID); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	s.mu.Lock()
	s.credentials[customerID] = string(hash)
	s.mu.Unlock()
	s.log.Infof("Online banking enabled for customer %s", customerID)
	return nil
}

// Login verifies the password and mints a session token.
func (s *Service) Login(customerID, password string) (string, error) {
	s.mu.Lock()
	hash, ok := s.credentials[customerID]
	s.mu.Unlock()
	if !ok {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: customerID,
	})
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	s.log.Infof("Customer logged in: %s", customerID)
	return tokenString, nil
}

// Transfer moves funds between accounts on behalf of a logged-in customer.
// An invalid session performs no ledger mutation.
func (s *Service) Transfer(token, fromNumber, toNumber string, amount decimal.Decimal) error {
	if _, err := s.verify(token); err != nil {
		return err
	}
	return s.bank.Transfer(fromNumber, toNumber, amount)
}

// Balance reads an account balance for a logged-in customer.
func (s *Service) Balance(token, accountNumber string) (decimal.Decimal, error) {
	if _, err := s.verify(token); err != nil {
		return decimal.Zero, err
	}
	account, err := s.bank.GetAccount(accountNumber)
	if err != nil {
		return decimal.Zero, err
	}
	return account.Balance(), nil
}

func (s *Service) verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidSession
	}
	return claims.Subject, nil
}
