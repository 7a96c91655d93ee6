package ledger

import (
	"time"

	"github.com/nftixorg/libnftix-go/account"
)

// TokenID identifies a token: the decimal mint sequence number,
// assigned once and never reused.
type TokenID string

// Metadata carries the display fields fixed at mint time. The ledger
// treats these as opaque payload; schema validation belongs to the
// hosting environment.
type Metadata struct {
	Title       string
	Description string
	Media       string
	MediaHash   []byte
	Copies      uint64
	IssuedAt    *time.Time
	ExpiresAt   *time.Time
	StartsAt    *time.Time
	UpdatedAt   *time.Time
}

// Clone returns a deep copy of the metadata.
func (m Metadata) Clone() Metadata {
	c := m
	if m.MediaHash != nil {
		c.MediaHash = append([]byte(nil), m.MediaHash...)
	}
	c.IssuedAt = cloneTime(m.IssuedAt)
	c.ExpiresAt = cloneTime(m.ExpiresAt)
	c.StartsAt = cloneTime(m.StartsAt)
	c.UpdatedAt = cloneTime(m.UpdatedAt)
	return c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// Token is a single ledger record. Redeemed is the one metadata-ish
// field the ledger itself interprets: it starts false at mint and
// flips to true exactly once.
type Token struct {
	ID       TokenID
	Owner    account.ID
	Metadata Metadata
	Redeemed bool

	// Approvals maps delegates to their current approval id. Ids come
	// from NextApprovalID, start at 1, and only increase for the
	// lifetime of the token; a transfer clears the map but keeps the
	// counter, so invalidated ids can never come back.
	Approvals      map[account.ID]uint64
	NextApprovalID uint64
}

// Clone returns a deep copy of the token.
func (t *Token) Clone() *Token {
	c := *t
	c.Metadata = t.Metadata.Clone()
	c.Approvals = make(map[account.ID]uint64, len(t.Approvals))
	for delegate, id := range t.Approvals {
		c.Approvals[delegate] = id
	}
	return &c
}
