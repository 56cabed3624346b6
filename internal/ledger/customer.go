package ledger

import "sync"

// Customer holds identity fields and a non-owning index of the accounts
// opened in its name. The bank's registry is the authoritative owner; the
// customer map exists for lookup only.
type Customer struct {
	ID    string
	Name  string
	Email string
	Phone string

	mu       sync.Mutex
	accounts map[string]Account
}

func NewCustomer(id, name, email, phone string) *Customer {
	return &Customer{
		ID:       id,
		Name:     name,
		Email:    email,
		Phone:    phone,
		accounts: make(map[string]Account),
	}
}

// AddAccount attaches an account to the customer. A number already present
// is rejected, never overwritten.
func (c *Customer) AddAccount(a Account) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.accounts[a.AccountNumber()]; ok {
		return ErrDuplicateAccount
	}
	c.accounts[a.AccountNumber()] = a
	return nil
}

// GetAccount returns the account if this customer owns it.
func (c *Customer) GetAccount(number string) (Account, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a, ok := c.accounts[number]
	if !ok {
		return nil, ErrNotFound
	}
	return a, nil
}

// Accounts returns a snapshot of the customer's accounts.
func (c *Customer) Accounts() []Account {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Account, 0, len(c.accounts))
	for _, a := range c.accounts {
		out = append(out, a)
	}
	return out
}
