package contract

import "errors"

var (
	// ErrNilStore indicates a nil token store.
	ErrNilStore = errors.New("contract: nil store")
)
