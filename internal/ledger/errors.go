package ledger

import "errors"

// Domain errors. Business-rule violations surface as one of these values,
// never as a panic; callers branch with errors.Is.
var (
	// ErrNotFound means the account or customer does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidAmount means the amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds means the withdrawal would breach the account's
	// balance rule (non-negative for savings, overdraft limit for current).
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrSameAccount means a transfer named the same account on both sides.
	ErrSameAccount = errors.New("source and destination are the same account")

	// ErrDuplicateAccount means the account number is already attached to the customer.
	ErrDuplicateAccount = errors.New("account already registered")

	// ErrDuplicateCustomer means the customer ID is already registered with the bank.
	ErrDuplicateCustomer = errors.New("customer already registered")

	// ErrUnknownCustomer means CreateAccount named a customer the bank does not know.
	ErrUnknownCustomer = errors.New("unknown customer")

	// ErrUnknownAccountType means CreateAccount named an unrecognized account type.
	ErrUnknownAccountType = errors.New("unknown account type")

	// ErrNumberCollision means a freshly minted account number is already in use.
	// This is an invariant violation, not a retry condition.
	ErrNumberCollision = errors.New("account number collision")

	// ErrCompensationFailed means a transfer's rollback deposit itself failed,
	// leaving the source account short.
	ErrCompensationFailed = errors.New("transfer compensation failed")
)
