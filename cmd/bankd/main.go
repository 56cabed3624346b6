package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/corebanking/ledger-service/internal/atm"
	"github.com/corebanking/ledger-service/internal/billpay"
	"github.com/corebanking/ledger-service/internal/branch"
	"github.com/corebanking/ledger-service/internal/compliance"
	"github.com/corebanking/ledger-service/internal/config"
	"github.com/corebanking/ledger-service/internal/forex"
	"github.com/corebanking/ledger-service/internal/ledger"
	"github.com/corebanking/ledger-service/internal/loan"
	"github.com/corebanking/ledger-service/internal/notify"
	"github.com/corebanking/ledger-service/internal/onlinebanking"
	"github.com/corebanking/ledger-service/internal/report"
	"github.com/corebanking/ledger-service/internal/scheduler"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the ledger and its collaborators
	bank := ledger.NewBank(cfg.BankName, cfg.OverdraftLimit, cfg.SavingsRate, logger)
	sender := notify.NewSender(notify.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SenderEmail,
	}, logger)
	online := onlinebanking.NewService(bank, cfg.JWTSecret, logger)
	rates := forex.NewService()

	// Register customers
	john := ledger.NewCustomer("CUST1001", "John Doe", "john@example.com", "555-1234")
	jane := ledger.NewCustomer("CUST1002", "Jane Smith", "jane@example.com", "555-5678")
	for _, c := range []*ledger.Customer{john, jane} {
		if err := bank.AddCustomer(c); err != nil {
			logger.Fatalf("Failed to add customer %s: %v", c.ID, err)
		}
	}

	// Open accounts
	johnSavings, err := bank.CreateAccount(john.ID, ledger.Savings, decimal.NewFromInt(1000))
	if err != nil {
		logger.Fatalf("Failed to create account: %v", err)
	}
	johnCurrent, err := bank.CreateAccount(john.ID, ledger.Current, decimal.NewFromInt(500))
	if err != nil {
		logger.Fatalf("Failed to create account: %v", err)
	}
	janeSavings, err := bank.CreateAccount(jane.ID, ledger.Savings, decimal.NewFromInt(1500))
	if err != nil {
		logger.Fatalf("Failed to create account: %v", err)
	}

	// Move some money around
	if err := johnSavings.Deposit(decimal.NewFromInt(200)); err != nil {
		logger.Errorf("Deposit failed: %v", err)
	}
	if err := johnCurrent.Withdraw(decimal.NewFromInt(100)); err != nil {
		logger.Errorf("Withdrawal failed: %v", err)
	}
	if err := bank.Transfer(johnSavings.AccountNumber(), janeSavings.AccountNumber(), decimal.NewFromInt(300)); err != nil {
		logger.Errorf("Transfer failed: %v", err)
	}
	if err := sender.SendTransactionNotification(jane.Email, jane.Name,
		janeSavings.AccountNumber(), ledger.KindTransferIn,
		decimal.NewFromInt(300), janeSavings.Balance()); err != nil {
		logger.Warnf("Notification failed: %v", err)
	}

	// A branch with a machine
	mainBranch := branch.New("BR001", "Main Street", "Alice Smith")
	machine := atm.New("ATM001", "Main Street", decimal.NewFromInt(10000), logger)
	if err := mainBranch.AddATM(machine); err != nil {
		logger.Fatalf("Failed to assign ATM: %v", err)
	}
	if err := machine.Withdraw(johnSavings, decimal.NewFromInt(100)); err != nil {
		logger.Errorf("ATM withdrawal failed: %v", err)
	}

	// Online banking round trip
	if err := online.Register(john.ID, "correct horse battery staple"); err != nil {
		logger.Fatalf("Online banking enrollment failed: %v", err)
	}
	token, err := online.Login(john.ID, "correct horse battery staple")
	if err != nil {
		logger.Fatalf("Login failed: %v", err)
	}
	if err := online.Transfer(token, johnCurrent.AccountNumber(), johnSavings.AccountNumber(), decimal.NewFromInt(50)); err != nil {
		logger.Errorf("Online transfer failed: %v", err)
	}

	// A bill and a loan
	bill := billpay.New(johnCurrent.AccountNumber(), "Electric Co", decimal.NewFromInt(75))
	if err := bill.Process(bank); err != nil {
		logger.Errorf("Bill payment failed: %v", err)
	}
	johnLoan := loan.New("LOAN2001", john.ID, decimal.NewFromInt(5000), decimal.NewFromFloat(0.05), 12)
	logger.Infof("Monthly payment on loan %s: %s", johnLoan.ID, johnLoan.MonthlyPayment().StringFixed(2))
	logger.Infof("Credit risk for %s borrowing 5000: %s", john.Name,
		compliance.CreditRisk(john, decimal.NewFromInt(5000)))

	// Currency conversion
	inEur, err := rates.Convert(janeSavings.Balance(), "USD", "EUR")
	if err != nil {
		logger.Errorf("Conversion failed: %v", err)
	} else {
		logger.Infof("Jane's savings in EUR: %s", inEur.StringFixed(2))
	}

	// Compliance checks
	logger.Infof("KYC check for %s: %v", john.Name, compliance.CheckKYC(john))
	for _, txn := range janeSavings.Transactions() {
		if !compliance.CheckAML(txn) {
			logger.Warnf("AML flag on transaction %s", txn.ID)
		}
	}

	// Periodic interest
	jobs := scheduler.New(bank, sender, logger)
	if err := jobs.Start(cfg.InterestSchedule); err != nil {
		logger.Fatalf("Failed to start scheduler: %v", err)
	}
	defer jobs.Stop()

	fmt.Println(report.AccountStatement(johnSavings))
	fmt.Println(report.AuditReport(bank))
	logger.Infof("%s is up: %d customers, %d accounts",
		bank.Name(), len(bank.Customers()), len(bank.Accounts()))
}
