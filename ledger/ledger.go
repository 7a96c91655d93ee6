package ledger

import (
	"fmt"

	"github.com/nftixorg/libnftix-go/account"
)

// Ledger is the authoritative owner of token and approval records.
// Every operation validates all preconditions before mutating and
// applies its changes through a single store write, so a failure
// partway through never leaves partial state.
//
// The ledger itself performs no locking: the hosting layer serializes
// operations (one call runs to completion before the next begins).
type Ledger struct {
	store Store
}

// NewLedger creates a ledger over the given store.
func NewLedger(store Store) *Ledger {
	return &Ledger{store: store}
}

// Get returns the token with the given id, or ErrTokenNotFound.
func (l *Ledger) Get(id TokenID) (*Token, error) {
	return l.store.GetToken(id)
}

// Insert adds a freshly minted token to the ledger.
func (l *Ledger) Insert(t *Token) error {
	if t == nil {
		return ErrNilToken
	}
	if t.ID == "" {
		return ErrEmptyTokenID
	}
	if t.Owner == "" {
		return fmt.Errorf("%w: owner", ErrEmptyAccount)
	}
	if t.Approvals == nil {
		t.Approvals = make(map[account.ID]uint64)
	}
	return l.store.PutToken(t)
}

// TokenCount returns the number of tokens in the ledger.
func (l *Ledger) TokenCount() (uint64, error) {
	return l.store.TokenCount()
}

// TokensForOwner returns all tokens currently owned by owner.
func (l *Ledger) TokensForOwner(owner account.ID) ([]*Token, error) {
	return l.store.TokensForOwner(owner)
}

// Transfer moves a token from its current owner to receiver. The
// sender must be the current owner, or hold an approval on the token;
// when approvalID is non-nil it must match the sender's current
// approval exactly (stale ids never pass). On success every approval
// on the token is cleared and permanently invalidated.
//
// Returns the previous owner and the full prior approval set so the
// caller can report released storage to the metering collaborator.
func (l *Ledger) Transfer(id TokenID, sender, receiver account.ID, approvalID *uint64, memo string) (account.ID, map[account.ID]uint64, error) {
	_ = memo // recorded by the caller; the ledger does not interpret it

	if receiver == "" {
		return "", nil, fmt.Errorf("%w: receiver", ErrEmptyAccount)
	}
	t, err := l.store.GetToken(id)
	if err != nil {
		return "", nil, err
	}
	if t.Owner == receiver {
		return "", nil, ErrSameOwner
	}
	if sender != t.Owner {
		granted, ok := t.Approvals[sender]
		if !ok {
			return "", nil, ErrNotOwnerOrApproved
		}
		if approvalID != nil && *approvalID != granted {
			return "", nil, fmt.Errorf("%w: approval id %d does not match %d",
				ErrNotOwnerOrApproved, *approvalID, granted)
		}
	}

	prevOwner := t.Owner
	prevApprovals := t.Approvals
	t.Owner = receiver
	t.Approvals = make(map[account.ID]uint64)
	if err := l.store.UpdateToken(t); err != nil {
		return "", nil, err
	}
	return prevOwner, prevApprovals, nil
}

// Approve grants delegate a transfer approval on the token and returns
// the new approval id. Ids start at 1 and only increase per token;
// re-approving the same delegate issues a larger id, implicitly
// invalidating the old one.
func (l *Ledger) Approve(id TokenID, delegate, caller account.ID) (uint64, error) {
	if delegate == "" {
		return 0, fmt.Errorf("%w: delegate", ErrEmptyAccount)
	}
	t, err := l.store.GetToken(id)
	if err != nil {
		return 0, err
	}
	if caller != t.Owner {
		return 0, ErrNotOwner
	}

	t.NextApprovalID++
	approvalID := t.NextApprovalID
	t.Approvals[delegate] = approvalID
	if err := l.store.UpdateToken(t); err != nil {
		return 0, err
	}
	return approvalID, nil
}

// Revoke removes delegate's approval on the token. Returns
// ErrNotApproved if the delegate holds none.
func (l *Ledger) Revoke(id TokenID, delegate, caller account.ID) error {
	t, err := l.store.GetToken(id)
	if err != nil {
		return err
	}
	if caller != t.Owner {
		return ErrNotOwner
	}
	if _, ok := t.Approvals[delegate]; !ok {
		return ErrNotApproved
	}

	delete(t.Approvals, delegate)
	return l.store.UpdateToken(t)
}

// RevokeAll removes every approval on the token and returns the
// released set for storage metering.
func (l *Ledger) RevokeAll(id TokenID, caller account.ID) (map[account.ID]uint64, error) {
	t, err := l.store.GetToken(id)
	if err != nil {
		return nil, err
	}
	if caller != t.Owner {
		return nil, ErrNotOwner
	}

	released := t.Approvals
	t.Approvals = make(map[account.ID]uint64)
	if err := l.store.UpdateToken(t); err != nil {
		return nil, err
	}
	return released, nil
}

// IsApproved reports whether delegate holds a current approval on the
// token. When approvalID is non-nil it must match exactly; ids
// invalidated by a transfer or re-approval always report false.
func (l *Ledger) IsApproved(id TokenID, delegate account.ID, approvalID *uint64) (bool, error) {
	t, err := l.store.GetToken(id)
	if err != nil {
		return false, err
	}
	granted, ok := t.Approvals[delegate]
	if !ok {
		return false, nil
	}
	if approvalID != nil && *approvalID != granted {
		return false, nil
	}
	return true, nil
}
