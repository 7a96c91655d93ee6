package royalty

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/nftixorg/libnftix-go/account"
)

// Split computes the payout for selling a token at amount. Each
// beneficiary except the current owner receives
// floor(share * amount / 10000); the owner receives the floor of the
// unassigned remainder. Floor division means the payouts may sum to
// strictly less than amount (at most one unit lost per entry); the
// residual is never rounded up.
func Split(table Table, owner account.ID, amount *uint256.Int, maxLenPayout uint32) (Payout, error) {
	if amount == nil {
		return nil, ErrNilAmount
	}
	if err := table.BoundedBy(maxLenPayout); err != nil {
		return nil, fmt.Errorf("%w: %d beneficiaries, ceiling %d", err, len(table), maxLenPayout)
	}

	payout := make(Payout, len(table)+1)
	var assigned uint64
	for beneficiary, share := range table {
		if beneficiary == owner {
			continue
		}
		payout[beneficiary] = shareToPayout(share, amount)
		assigned += uint64(share)
	}
	if assigned > TotalBasisPoints {
		return nil, fmt.Errorf("%w: %d bp assigned", ErrShareOverflow, assigned)
	}

	payout[owner] = shareToPayout(uint32(TotalBasisPoints-assigned), amount)
	return payout, nil
}

// ValidateSplit recomputes the split and compares it entry by entry,
// for settlement systems verifying a payout before moving funds.
func ValidateSplit(payout Payout, table Table, owner account.ID, amount *uint256.Int, maxLenPayout uint32) error {
	expected, err := Split(table, owner, amount, maxLenPayout)
	if err != nil {
		return err
	}
	if len(payout) != len(expected) {
		return fmt.Errorf("%w: %d entries, expected %d", ErrSplitMismatch, len(payout), len(expected))
	}
	for beneficiary, want := range expected {
		got, ok := payout[beneficiary]
		if !ok {
			return fmt.Errorf("%w: missing beneficiary %q", ErrSplitMismatch, beneficiary)
		}
		if got == nil || !got.Eq(want) {
			return fmt.Errorf("%w: beneficiary %q amount %v, expected %v", ErrSplitMismatch, beneficiary, got, want)
		}
	}
	return nil
}

// shareToPayout computes floor(share * amount / 10000).
func shareToPayout(share uint32, amount *uint256.Int) *uint256.Int {
	v := new(uint256.Int).Mul(amount, uint256.NewInt(uint64(share)))
	return v.Div(v, uint256.NewInt(TotalBasisPoints))
}
