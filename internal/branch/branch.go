// Package branch keeps the bookkeeping for physical branches, their
// employees and their ATMs.
package branch

import (
	"errors"
	"sync"
	"time"

	"github.com/corebanking/ledger-service/internal/atm"
)

var (
	ErrDuplicateEmployee = errors.New("employee already assigned to branch")
	ErrDuplicateATM      = errors.New("atm already assigned to branch")
)

// Employee is a staff record.
type Employee struct {
	ID       string
	Name     string
	Position string
	HireDate time.Time
}

func NewEmployee(id, name, position string) *Employee {
	return &Employee{ID: id, Name: name, Position: position, HireDate: time.Now()}
}

// Branch is one physical location.
type Branch struct {
	ID       string
	Location string
	Manager  string

	mu        sync.Mutex
	employees map[string]*Employee
	atms      map[string]*atm.ATM
}

func New(id, location, manager string) *Branch {
	return &Branch{
		ID:        id,
		Location:  location,
		Manager:   manager,
		employees: make(map[string]*Employee),
		atms:      make(map[string]*atm.ATM),
	}
}

// AddEmployee assigns an employee to the branch; duplicates are rejected.
func (b *Branch) AddEmployee(e *Employee) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.employees[e.ID]; ok {
		return ErrDuplicateEmployee
	}
	b.employees[e.ID] = e
	return nil
}

// AddATM assigns a machine to the branch; duplicates are rejected.
func (b *Branch) AddATM(m *atm.ATM) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.atms[m.ID()]; ok {
		return ErrDuplicateATM
	}
	b.atms[m.ID()] = m
	return nil
}

// Employees returns a snapshot of the branch staff.
func (b *Branch) Employees() []*Employee {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*Employee, 0, len(b.employees))
	for _, e := range b.employees {
		out = append(out, e)
	}
	return out
}

// ATMs returns a snapshot of the branch machines.
func (b *Branch) ATMs() []*atm.ATM {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*atm.ATM, 0, len(b.atms))
	for _, m := range b.atms {
		out = append(out, m)
	}
	return out
}
