package royalty

import "errors"

var (
	// ErrTooManyBeneficiaries indicates the table exceeds the caller's payout ceiling.
	ErrTooManyBeneficiaries = errors.New("royalty: too many payout beneficiaries")

	// ErrShareOverflow indicates royalty shares sum above 10000 basis points.
	ErrShareOverflow = errors.New("royalty: shares exceed 10000 basis points")

	// ErrZeroShare indicates a beneficiary with a zero share.
	ErrZeroShare = errors.New("royalty: zero basis-point share")

	// ErrEmptyBeneficiary indicates an empty beneficiary account id.
	ErrEmptyBeneficiary = errors.New("royalty: empty beneficiary account")

	// ErrNilAmount indicates a nil sale amount.
	ErrNilAmount = errors.New("royalty: nil sale amount")

	// ErrInvalidTableData indicates serialized table data is malformed.
	ErrInvalidTableData = errors.New("royalty: invalid table data")

	// ErrSplitMismatch indicates a payout does not match the recomputed split.
	ErrSplitMismatch = errors.New("royalty: payout does not match computed split")
)
