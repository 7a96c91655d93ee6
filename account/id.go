package account

import "golang.org/x/crypto/blake2b"

// ID is an opaque principal identifier resolved by the hosting
// environment. The ledger never parses or validates its structure;
// ids are only compared for equality.
type ID string

// StorageKeySize is the length in bytes of a hashed storage key.
const StorageKeySize = 32

// StorageKey returns the blake2b-256 hash of the id, used as the
// persisted key for owner and approval indexes. Hashing keeps index
// keys fixed-width regardless of how long account ids get.
func (id ID) StorageKey() []byte {
	sum := blake2b.Sum256([]byte(id))
	return sum[:]
}
