package mint

import "errors"

var (
	// ErrSoldOut indicates the supply cap has been reached.
	ErrSoldOut = errors.New("mint: sold out")

	// ErrInsufficientPayment indicates the attached payment is below the mint price.
	ErrInsufficientPayment = errors.New("mint: insufficient payment")

	// ErrZeroSupplyCap indicates a supply cap of zero.
	ErrZeroSupplyCap = errors.New("mint: zero supply cap")

	// ErrNilPrice indicates a nil mint price.
	ErrNilPrice = errors.New("mint: nil mint price")

	// ErrNilLedger indicates a nil ledger.
	ErrNilLedger = errors.New("mint: nil ledger")

	// ErrCapExceeded indicates the recovered minted count exceeds the cap.
	ErrCapExceeded = errors.New("mint: minted count exceeds supply cap")
)
