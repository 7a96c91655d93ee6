package contract

import (
	"time"

	"github.com/google/uuid"

	"github.com/nftixorg/libnftix-go/account"
	"github.com/nftixorg/libnftix-go/ledger"
)

// EventKind names a ledger mutation in the journal.
type EventKind string

const (
	EventMint      EventKind = "mint"
	EventTransfer  EventKind = "transfer"
	EventApprove   EventKind = "approve"
	EventRevoke    EventKind = "revoke"
	EventRevokeAll EventKind = "revoke_all"
	EventRedeem    EventKind = "redeem"
)

// Event is one entry in the contract's append-only journal. From/To
// carry the accounts involved: owner and receiver for transfers,
// caller and delegate for approvals.
type Event struct {
	ID      string
	Kind    EventKind
	TokenID ledger.TokenID
	From    account.ID
	To      account.ID
	Memo    string
	At      time.Time
}

// record appends a journal entry. Caller holds the contract mutex.
func (c *Contract) record(kind EventKind, id ledger.TokenID, from, to account.ID, memo string) {
	c.journal = append(c.journal, Event{
		ID:      uuid.NewString(),
		Kind:    kind,
		TokenID: id,
		From:    from,
		To:      to,
		Memo:    memo,
		At:      time.Now().UTC(),
	})
}

// Events returns a copy of the journal in append order.
func (c *Contract) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	events := make([]Event, len(c.journal))
	copy(events, c.journal)
	return events
}
