package ledger

import "errors"

var (
	// ErrTokenNotFound indicates the token id is not in the ledger.
	ErrTokenNotFound = errors.New("ledger: token not found")

	// ErrDuplicateToken indicates a token with the same id already exists.
	ErrDuplicateToken = errors.New("ledger: duplicate token id")

	// ErrNotOwner indicates the caller is not the token owner.
	ErrNotOwner = errors.New("ledger: caller is not the token owner")

	// ErrNotOwnerOrApproved indicates the sender is neither the owner
	// nor a delegate with a matching approval.
	ErrNotOwnerOrApproved = errors.New("ledger: sender is neither owner nor approved")

	// ErrSameOwner indicates a transfer to the current owner.
	ErrSameOwner = errors.New("ledger: receiver already owns the token")

	// ErrAlreadyRedeemed indicates the token's redemption flag is already set.
	ErrAlreadyRedeemed = errors.New("ledger: token already redeemed")

	// ErrNotApproved indicates the delegate holds no approval to revoke.
	ErrNotApproved = errors.New("ledger: delegate holds no approval")

	// ErrEmptyAccount indicates an empty account id where one is required.
	ErrEmptyAccount = errors.New("ledger: empty account id")

	// ErrEmptyTokenID indicates an empty token id.
	ErrEmptyTokenID = errors.New("ledger: empty token id")

	// ErrNilToken indicates a nil token record.
	ErrNilToken = errors.New("ledger: nil token")
)
