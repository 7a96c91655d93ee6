package ledger

import (
	"sort"
	"sync"

	"github.com/nftixorg/libnftix-go/account"
)

// Store persists token records for a ledger.
type Store interface {
	// PutToken stores a new token. Returns ErrDuplicateToken if the id exists.
	PutToken(t *Token) error

	// GetToken retrieves a token by id.
	GetToken(id TokenID) (*Token, error)

	// UpdateToken overwrites an existing token record.
	UpdateToken(t *Token) error

	// TokenCount returns the number of stored tokens. Ids are dense and
	// never reused, so this doubles as the minted count.
	TokenCount() (uint64, error)

	// TokensForOwner returns all tokens currently owned by owner.
	TokensForOwner(owner account.ID) ([]*Token, error)

	// ListTokens returns all stored tokens (for backup/export).
	ListTokens() ([]*Token, error)
}

// MemStore is an in-memory implementation of Store for testing.
type MemStore struct {
	mu      sync.RWMutex
	byID    map[TokenID]*Token
	byOwner map[account.ID]map[TokenID]struct{}
}

// Compile-time interface check.
var _ Store = (*MemStore)(nil)

// NewMemStore creates a new in-memory token store.
func NewMemStore() *MemStore {
	return &MemStore{
		byID:    make(map[TokenID]*Token),
		byOwner: make(map[account.ID]map[TokenID]struct{}),
	}
}

// PutToken stores a new token.
func (s *MemStore) PutToken(t *Token) error {
	if t == nil {
		return ErrNilToken
	}
	if t.ID == "" {
		return ErrEmptyTokenID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[t.ID]; exists {
		return ErrDuplicateToken
	}
	s.byID[t.ID] = t.Clone()
	s.indexOwner(t.Owner, t.ID)
	return nil
}

// GetToken retrieves a token by id. The returned token is a copy;
// mutations only take effect through UpdateToken.
func (s *MemStore) GetToken(id TokenID) (*Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.byID[id]
	if !ok {
		return nil, ErrTokenNotFound
	}
	return t.Clone(), nil
}

// UpdateToken overwrites an existing token record.
func (s *MemStore) UpdateToken(t *Token) error {
	if t == nil {
		return ErrNilToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.byID[t.ID]
	if !ok {
		return ErrTokenNotFound
	}
	if old.Owner != t.Owner {
		delete(s.byOwner[old.Owner], t.ID)
		s.indexOwner(t.Owner, t.ID)
	}
	s.byID[t.ID] = t.Clone()
	return nil
}

// TokenCount returns the number of stored tokens.
func (s *MemStore) TokenCount() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.byID)), nil
}

// TokensForOwner returns all tokens currently owned by owner.
func (s *MemStore) TokensForOwner(owner account.ID) ([]*Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]TokenID, 0, len(s.byOwner[owner]))
	for id := range s.byOwner[owner] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	tokens := make([]*Token, 0, len(ids))
	for _, id := range ids {
		tokens = append(tokens, s.byID[id].Clone())
	}
	return tokens, nil
}

// ListTokens returns all stored tokens.
func (s *MemStore) ListTokens() ([]*Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tokens := make([]*Token, 0, len(s.byID))
	for _, t := range s.byID {
		tokens = append(tokens, t.Clone())
	}
	return tokens, nil
}

// indexOwner records id under owner. Caller holds the write lock.
func (s *MemStore) indexOwner(owner account.ID, id TokenID) {
	if s.byOwner[owner] == nil {
		s.byOwner[owner] = make(map[TokenID]struct{})
	}
	s.byOwner[owner][id] = struct{}{}
}
