package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nftixorg/libnftix-go/account"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	return NewLedger(NewMemStore())
}

func mintToken(t *testing.T, l *Ledger, id TokenID, owner account.ID) {
	t.Helper()
	require.NoError(t, l.Insert(&Token{
		ID:       id,
		Owner:    owner,
		Metadata: Metadata{Title: "Ticket to paradise", Copies: 100},
	}))
}

func approvalID(v uint64) *uint64 { return &v }

// --- Insert / Get ---

func TestInsertGet(t *testing.T) {
	l := newTestLedger(t)
	mintToken(t, l, "1", "alice")

	tok, err := l.Get("1")
	require.NoError(t, err)
	assert.Equal(t, TokenID("1"), tok.ID)
	assert.Equal(t, account.ID("alice"), tok.Owner)
	assert.False(t, tok.Redeemed)
	assert.Empty(t, tok.Approvals)
}

func TestInsert_Duplicate(t *testing.T) {
	l := newTestLedger(t)
	mintToken(t, l, "1", "alice")

	err := l.Insert(&Token{ID: "1", Owner: "bob"})
	assert.ErrorIs(t, err, ErrDuplicateToken)

	// The original record is untouched.
	tok, err := l.Get("1")
	require.NoError(t, err)
	assert.Equal(t, account.ID("alice"), tok.Owner)
}

func TestInsert_Invalid(t *testing.T) {
	l := newTestLedger(t)
	assert.ErrorIs(t, l.Insert(nil), ErrNilToken)
	assert.ErrorIs(t, l.Insert(&Token{Owner: "alice"}), ErrEmptyTokenID)
	assert.ErrorIs(t, l.Insert(&Token{ID: "1"}), ErrEmptyAccount)
}

func TestGet_NotFound(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.Get("404")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

// --- Transfer ---

func TestTransfer_ByOwner(t *testing.T) {
	l := newTestLedger(t)
	mintToken(t, l, "1", "alice")

	prevOwner, prevApprovals, err := l.Transfer("1", "alice", "bob", nil, "gift")
	require.NoError(t, err)
	assert.Equal(t, account.ID("alice"), prevOwner)
	assert.Empty(t, prevApprovals)

	tok, err := l.Get("1")
	require.NoError(t, err)
	assert.Equal(t, account.ID("bob"), tok.Owner)
}

func TestTransfer_NotFound(t *testing.T) {
	l := newTestLedger(t)
	_, _, err := l.Transfer("404", "alice", "bob", nil, "")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestTransfer_SameOwner(t *testing.T) {
	l := newTestLedger(t)
	mintToken(t, l, "1", "alice")

	_, _, err := l.Transfer("1", "alice", "alice", nil, "")
	assert.ErrorIs(t, err, ErrSameOwner)
}

func TestTransfer_NotOwnerOrApproved(t *testing.T) {
	l := newTestLedger(t)
	mintToken(t, l, "1", "alice")

	_, _, err := l.Transfer("1", "mallory", "bob", nil, "")
	assert.ErrorIs(t, err, ErrNotOwnerOrApproved)

	// Failed transfer leaves the owner unchanged.
	tok, err := l.Get("1")
	require.NoError(t, err)
	assert.Equal(t, account.ID("alice"), tok.Owner)
}

func TestTransfer_ByDelegate(t *testing.T) {
	l := newTestLedger(t)
	mintToken(t, l, "1", "alice")

	id, err := l.Approve("1", "market", "alice")
	require.NoError(t, err)
	require.Equal(t, uint64(1), id)

	prevOwner, prevApprovals, err := l.Transfer("1", "market", "bob", approvalID(1), "sale")
	require.NoError(t, err)
	assert.Equal(t, account.ID("alice"), prevOwner)
	assert.Equal(t, map[account.ID]uint64{"market": 1}, prevApprovals)

	tok, err := l.Get("1")
	require.NoError(t, err)
	assert.Equal(t, account.ID("bob"), tok.Owner)
}

func TestTransfer_StaleApprovalID(t *testing.T) {
	l := newTestLedger(t)
	mintToken(t, l, "1", "alice")

	_, err := l.Approve("1", "market", "alice")
	require.NoError(t, err)
	// Re-approval bumps the id to 2; id 1 is dead.
	_, err = l.Approve("1", "market", "alice")
	require.NoError(t, err)

	_, _, err = l.Transfer("1", "market", "bob", approvalID(1), "")
	assert.ErrorIs(t, err, ErrNotOwnerOrApproved)

	_, _, err = l.Transfer("1", "market", "bob", approvalID(2), "")
	assert.NoError(t, err)
}

func TestTransfer_ClearsApprovals(t *testing.T) {
	l := newTestLedger(t)
	mintToken(t, l, "1", "alice")

	first, err := l.Approve("1", "d1", "alice")
	require.NoError(t, err)
	_, err = l.Approve("1", "d2", "alice")
	require.NoError(t, err)

	_, prevApprovals, err := l.Transfer("1", "alice", "bob", nil, "")
	require.NoError(t, err)
	assert.Len(t, prevApprovals, 2)

	for _, delegate := range []account.ID{"d1", "d2"} {
		ok, err := l.IsApproved("1", delegate, nil)
		require.NoError(t, err)
		assert.False(t, ok, "delegate %s should be invalidated", delegate)
	}

	// Old ids never come back: bob re-approving d1 issues a fresh,
	// larger id than anything granted before the transfer.
	fresh, err := l.Approve("1", "d1", "bob")
	require.NoError(t, err)
	assert.Greater(t, fresh, first)

	ok, err := l.IsApproved("1", "d1", approvalID(first))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTransfer_EmptyReceiver(t *testing.T) {
	l := newTestLedger(t)
	mintToken(t, l, "1", "alice")

	_, _, err := l.Transfer("1", "alice", "", nil, "")
	assert.ErrorIs(t, err, ErrEmptyAccount)
}

// --- Approve / Revoke / IsApproved ---

func TestApprove_MonotonicIDs(t *testing.T) {
	l := newTestLedger(t)
	mintToken(t, l, "1", "alice")

	var last uint64
	for i := 0; i < 5; i++ {
		id, err := l.Approve("1", "market", "alice")
		require.NoError(t, err)
		assert.Greater(t, id, last)
		last = id
	}
	assert.Equal(t, uint64(5), last)
}

func TestApprove_PerTokenCounters(t *testing.T) {
	l := newTestLedger(t)
	mintToken(t, l, "1", "alice")
	mintToken(t, l, "2", "alice")

	id1, err := l.Approve("1", "market", "alice")
	require.NoError(t, err)
	id2, err := l.Approve("2", "market", "alice")
	require.NoError(t, err)

	// Counters are independent per token.
	assert.Equal(t, uint64(1), id1)
	assert.Equal(t, uint64(1), id2)
}

func TestApprove_NotOwner(t *testing.T) {
	l := newTestLedger(t)
	mintToken(t, l, "1", "alice")

	_, err := l.Approve("1", "market", "mallory")
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestRevoke(t *testing.T) {
	l := newTestLedger(t)
	mintToken(t, l, "1", "alice")

	_, err := l.Approve("1", "market", "alice")
	require.NoError(t, err)

	assert.ErrorIs(t, l.Revoke("1", "market", "mallory"), ErrNotOwner)
	assert.ErrorIs(t, l.Revoke("1", "nobody", "alice"), ErrNotApproved)
	require.NoError(t, l.Revoke("1", "market", "alice"))

	ok, err := l.IsApproved("1", "market", nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRevokeAll(t *testing.T) {
	l := newTestLedger(t)
	mintToken(t, l, "1", "alice")

	_, err := l.Approve("1", "d1", "alice")
	require.NoError(t, err)
	_, err = l.Approve("1", "d2", "alice")
	require.NoError(t, err)

	_, err = l.RevokeAll("1", "mallory")
	assert.ErrorIs(t, err, ErrNotOwner)

	released, err := l.RevokeAll("1", "alice")
	require.NoError(t, err)
	assert.Len(t, released, 2)

	tok, err := l.Get("1")
	require.NoError(t, err)
	assert.Empty(t, tok.Approvals)
}

func TestIsApproved(t *testing.T) {
	l := newTestLedger(t)
	mintToken(t, l, "1", "alice")

	id, err := l.Approve("1", "market", "alice")
	require.NoError(t, err)

	tests := []struct {
		name     string
		delegate account.ID
		id       *uint64
		want     bool
	}{
		{"current approval, no id", "market", nil, true},
		{"current approval, matching id", "market", approvalID(id), true},
		{"current approval, wrong id", "market", approvalID(id + 1), false},
		{"zero id never matches", "market", approvalID(0), false},
		{"unknown delegate", "nobody", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := l.IsApproved("1", tt.delegate, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err = l.IsApproved("404", "market", nil)
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

// --- Redeem ---

func TestRedeem(t *testing.T) {
	l := newTestLedger(t)
	mintToken(t, l, "1", "alice")

	tok, err := l.Redeem("1", "alice")
	require.NoError(t, err)
	assert.True(t, tok.Redeemed)

	// Second redemption is rejected, state unchanged.
	_, err = l.Redeem("1", "alice")
	assert.ErrorIs(t, err, ErrAlreadyRedeemed)

	stored, err := l.Get("1")
	require.NoError(t, err)
	assert.True(t, stored.Redeemed)
}

func TestRedeem_NotOwner(t *testing.T) {
	l := newTestLedger(t)
	mintToken(t, l, "1", "alice")

	_, err := l.Redeem("1", "mallory")
	assert.ErrorIs(t, err, ErrNotOwner)

	tok, err := l.Get("1")
	require.NoError(t, err)
	assert.False(t, tok.Redeemed)
}

func TestRedeem_NotFound(t *testing.T) {
	l := newTestLedger(t)
	_, err := l.Redeem("404", "alice")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestRedeem_SurvivesTransfer(t *testing.T) {
	l := newTestLedger(t)
	mintToken(t, l, "1", "alice")

	_, err := l.Redeem("1", "alice")
	require.NoError(t, err)

	_, _, err = l.Transfer("1", "alice", "bob", nil, "")
	require.NoError(t, err)

	// Still redeemed under the new owner; the new owner cannot redeem again.
	tok, err := l.Get("1")
	require.NoError(t, err)
	assert.True(t, tok.Redeemed)

	_, err = l.Redeem("1", "bob")
	assert.ErrorIs(t, err, ErrAlreadyRedeemed)
}

// --- Store isolation ---

func TestGet_ReturnsCopy(t *testing.T) {
	l := newTestLedger(t)
	mintToken(t, l, "1", "alice")

	tok, err := l.Get("1")
	require.NoError(t, err)
	tok.Owner = "mallory"
	tok.Approvals["mallory"] = 42

	fresh, err := l.Get("1")
	require.NoError(t, err)
	assert.Equal(t, account.ID("alice"), fresh.Owner)
	assert.Empty(t, fresh.Approvals)
}

func TestTokensForOwner(t *testing.T) {
	l := newTestLedger(t)
	mintToken(t, l, "1", "alice")
	mintToken(t, l, "2", "bob")
	mintToken(t, l, "3", "alice")

	tokens, err := l.TokensForOwner("alice")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, TokenID("1"), tokens[0].ID)
	assert.Equal(t, TokenID("3"), tokens[1].ID)

	_, _, err = l.Transfer("1", "alice", "bob", nil, "")
	require.NoError(t, err)

	tokens, err = l.TokensForOwner("bob")
	require.NoError(t, err)
	assert.Len(t, tokens, 2)
}
