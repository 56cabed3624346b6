// Package notify delivers customer notifications. Email goes out over SMTP;
// with no SMTP host configured delivery degrades to a log line, which keeps
// tests and the demo off the network. SMS has no gateway and is always
// log-only.
package notify

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/jordan-wright/email"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/corebanking/ledger-service/internal/ledger"
)

// SMTPConfig carries the outbound mail settings.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// Sender handles sending notifications
type Sender struct {
	cfg    SMTPConfig
	logger *logrus.Logger
}

// NewSender creates a new notification sender
func NewSender(cfg SMTPConfig, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendEmail sends a plain-text email.
func (s *Sender) SendEmail(to, subject, body string) error {
	if s.cfg.Host == "" {
		s.logger.Infof("Email to %s: %s", to, subject)
		return nil
	}

	e := email.NewEmail()
	e.From = s.cfg.From
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, subject)
	return nil
}

// SendSMS logs an SMS notification.
func (s *Sender) SendSMS(phone, message string) error {
	s.logger.Infof("SMS to %s: %s", phone, message)
	return nil
}

// SendTransactionNotification emails a deposit or withdrawal notice.
func (s *Sender) SendTransactionNotification(to, username, accountNumber string, kind ledger.Kind, amount, balance decimal.Decimal) error {
	subject := fmt.Sprintf("%s Notification", kind)

	body := fmt.Sprintf("Dear %s,\n\n", username)
	switch kind {
	case ledger.KindDeposit, ledger.KindTransferIn:
		body += fmt.Sprintf(
			"Your account %s has been credited with %s.\n"+
				"Transaction time: %s\n"+
				"Current balance: %s\n",
			accountNumber, amount.StringFixed(2), time.Now().Format("2006-01-02 15:04:05"), balance.StringFixed(2),
		)
	default:
		body += fmt.Sprintf(
			"An amount of %s has been debited from your account %s.\n"+
				"Transaction time: %s\n"+
				"Current balance: %s\n",
			amount.StringFixed(2), accountNumber, time.Now().Format("2006-01-02 15:04:05"), balance.StringFixed(2),
		)
	}
	body += "\nBest regards,\nThe Bank"

	return s.SendEmail(to, subject, body)
}

// SendInterestNotice emails a savings interest credit notice.
func (s *Sender) SendInterestNotice(to, username, accountNumber string, interest, balance decimal.Decimal) error {
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Interest of %s has been credited to your account %s.\n"+
			"Current balance: %s\n"+
			"\nBest regards,\nThe Bank",
		username, interest.StringFixed(2), accountNumber, balance.StringFixed(2),
	)
	return s.SendEmail(to, "Interest Credited", body)
}
