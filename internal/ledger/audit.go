package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Audit event types recorded by the bank.
const (
	EventCustomer = "Customer"
	EventAccount  = "Account"
	EventTransfer = "Transfer"
)

// AuditEntry is an immutable, timestamped record of a significant ledger event.
type AuditEntry struct {
	ID          string
	Timestamp   time.Time
	EventType   string
	Description string
	ActorID     string
}

// auditTrail is the bank's append-only event log. Entries are never updated
// or removed; the only read path is a full-log copy.
type auditTrail struct {
	mu      sync.Mutex
	entries []AuditEntry
}

func (t *auditTrail) record(eventType, description, actorID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, AuditEntry{
		ID:          uuid.NewString(),
		Timestamp:   time.Now(),
		EventType:   eventType,
		Description: description,
		ActorID:     actorID,
	})
}

func (t *auditTrail) log() []AuditEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]AuditEntry, len(t.entries))
	copy(out, t.entries)
	return out
}
