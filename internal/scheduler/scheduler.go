// Package scheduler runs the bank's periodic jobs.
package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/corebanking/ledger-service/internal/ledger"
	"github.com/corebanking/ledger-service/internal/notify"
)

// Scheduler drives interest application and notification jobs off a cron.
type Scheduler struct {
	cron   *cron.Cron
	bank   *ledger.Bank
	sender *notify.Sender
	log    *logrus.Logger
}

func New(bank *ledger.Bank, sender *notify.Sender, log *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		bank:   bank,
		sender: sender,
		log:    log,
	}
}

// Start registers the interest job on the given cron spec and starts the
// scheduler in its own goroutine.
func (s *Scheduler) Start(interestSpec string) error {
	if _, err := s.cron.AddFunc(interestSpec, s.applyInterest); err != nil {
		return fmt.Errorf("invalid interest schedule %q: %w", interestSpec, err)
	}
	s.cron.Start()
	s.log.Infof("Scheduler started, interest schedule %q", interestSpec)
	return nil
}

// AddJob registers an extra periodic job.
func (s *Scheduler) AddJob(spec string, job func()) error {
	if _, err := s.cron.AddFunc(spec, job); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return nil
}

// Stop halts the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("Scheduler stopped")
}

// applyInterest credits one interest period on every savings account and
// notifies the owning customer.
func (s *Scheduler) applyInterest() {
	for _, account := range s.bank.Accounts() {
		savings, ok := account.(*ledger.SavingsAccount)
		if !ok {
			continue
		}
		interest := savings.ApplyInterest()
		if !interest.IsPositive() {
			continue
		}
		s.log.Infof("Applied interest of %s to account %s", interest.StringFixed(2), savings.AccountNumber())

		customer, err := s.bank.GetCustomer(savings.CustomerID())
		if err != nil {
			s.log.Warnf("No customer %s for account %s", savings.CustomerID(), savings.AccountNumber())
			continue
		}
		if err := s.sender.SendInterestNotice(customer.Email, customer.Name,
			savings.AccountNumber(), interest, savings.Balance()); err != nil {
			s.log.Warnf("Failed to notify %s: %v", customer.Email, err)
		}
	}
}
