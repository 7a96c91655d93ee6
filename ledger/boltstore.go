package ledger

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"

	"github.com/nftixorg/libnftix-go/account"
)

var (
	bucketTokens     = []byte("tokens")
	bucketOwnerIndex = []byte("owner_index")
)

// BoltStore is a bbolt-backed implementation of Store. Tokens are gob
// encoded under their id; a second bucket indexes tokens by the
// blake2b hash of the owner id so owner scans stay fixed-width no
// matter how long account ids get.
type BoltStore struct {
	db *bbolt.DB
}

// Compile-time interface check.
var _ Store = (*BoltStore)(nil)

// OpenBoltStore opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func OpenBoltStore(dbPath string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("ledger: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("ledger: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketTokens, bucketOwnerIndex} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("boltstore: create bucket %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ledger: create buckets: %w", err)
	}

	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// ownerKey builds the composite owner-index key: hashed owner + token id.
func ownerKey(owner account.ID, id TokenID) []byte {
	hash := owner.StorageKey()
	k := make([]byte, len(hash)+len(id))
	copy(k, hash)
	copy(k[len(hash):], id)
	return k
}

// encodeGob serializes a value using gob encoding.
func encodeGob(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeGob deserializes gob-encoded data into a value.
func decodeGob(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// PutToken stores a new token.
func (s *BoltStore) PutToken(t *Token) error {
	if t == nil {
		return ErrNilToken
	}
	if t.ID == "" {
		return ErrEmptyTokenID
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		tb := tx.Bucket(bucketTokens)
		if tb.Get([]byte(t.ID)) != nil {
			return ErrDuplicateToken
		}

		data, err := encodeGob(t)
		if err != nil {
			return fmt.Errorf("encode token: %w", err)
		}
		if err := tb.Put([]byte(t.ID), data); err != nil {
			return fmt.Errorf("boltstore: put token: %w", err)
		}
		if err := tx.Bucket(bucketOwnerIndex).Put(ownerKey(t.Owner, t.ID), []byte{}); err != nil {
			return fmt.Errorf("boltstore: put owner index: %w", err)
		}
		return nil
	})
}

// GetToken retrieves a token by id.
func (s *BoltStore) GetToken(id TokenID) (*Token, error) {
	var t Token
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketTokens).Get([]byte(id))
		if data == nil {
			return ErrTokenNotFound
		}
		if err := decodeGob(data, &t); err != nil {
			return fmt.Errorf("boltstore: decode token: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if t.Approvals == nil {
		t.Approvals = make(map[account.ID]uint64)
	}
	return &t, nil
}

// UpdateToken overwrites an existing token record, moving the owner
// index entry if the owner changed. Record and index are written in a
// single bolt transaction.
func (s *BoltStore) UpdateToken(t *Token) error {
	if t == nil {
		return ErrNilToken
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		tb := tx.Bucket(bucketTokens)
		oldData := tb.Get([]byte(t.ID))
		if oldData == nil {
			return ErrTokenNotFound
		}

		var old Token
		if err := decodeGob(oldData, &old); err != nil {
			return fmt.Errorf("boltstore: decode existing token: %w", err)
		}

		data, err := encodeGob(t)
		if err != nil {
			return fmt.Errorf("encode token: %w", err)
		}
		if err := tb.Put([]byte(t.ID), data); err != nil {
			return fmt.Errorf("boltstore: update token: %w", err)
		}

		if old.Owner != t.Owner {
			idx := tx.Bucket(bucketOwnerIndex)
			if err := idx.Delete(ownerKey(old.Owner, t.ID)); err != nil {
				return fmt.Errorf("boltstore: delete owner index: %w", err)
			}
			if err := idx.Put(ownerKey(t.Owner, t.ID), []byte{}); err != nil {
				return fmt.Errorf("boltstore: put owner index: %w", err)
			}
		}
		return nil
	})
}

// TokenCount returns the total number of stored tokens.
func (s *BoltStore) TokenCount() (uint64, error) {
	var count uint64
	err := s.db.View(func(tx *bbolt.Tx) error {
		count = uint64(tx.Bucket(bucketTokens).Stats().KeyN)
		return nil
	})
	return count, err
}

// TokensForOwner returns all tokens currently owned by owner.
func (s *BoltStore) TokensForOwner(owner account.ID) ([]*Token, error) {
	prefix := owner.StorageKey()

	var tokens []*Token
	err := s.db.View(func(tx *bbolt.Tx) error {
		tb := tx.Bucket(bucketTokens)
		c := tx.Bucket(bucketOwnerIndex).Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			id := k[len(prefix):]
			data := tb.Get(id)
			if data == nil {
				continue // stale index entry
			}
			var t Token
			if err := decodeGob(data, &t); err != nil {
				return fmt.Errorf("boltstore: decode token by owner: %w", err)
			}
			if t.Approvals == nil {
				t.Approvals = make(map[account.ID]uint64)
			}
			tokens = append(tokens, &t)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("boltstore: tokens for owner: %w", err)
	}
	return tokens, nil
}

// ListTokens returns all stored tokens.
func (s *BoltStore) ListTokens() ([]*Token, error) {
	var tokens []*Token
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketTokens).ForEach(func(k, v []byte) error {
			var t Token
			if err := decodeGob(v, &t); err != nil {
				return fmt.Errorf("boltstore: decode token in list: %w", err)
			}
			if t.Approvals == nil {
				t.Approvals = make(map[account.ID]uint64)
			}
			tokens = append(tokens, &t)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("boltstore: list tokens: %w", err)
	}
	return tokens, nil
}
