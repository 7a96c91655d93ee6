package royalty

import (
	"github.com/holiman/uint256"

	"github.com/nftixorg/libnftix-go/account"
)

// TotalBasisPoints is the share denominator: 10000 bp = 100%.
const TotalBasisPoints = 10000

// Table maps beneficiary accounts to their perpetual royalty share in
// basis points. Tables are set once at contract initialization and
// immutable thereafter; the unassigned remainder accrues to the
// token's current owner at payout time.
type Table map[account.ID]uint32

// Payout maps beneficiaries to the amounts owed from a sale. Produced
// fresh on each computation, never persisted.
type Payout map[account.ID]*uint256.Int

// NewTable validates shares and returns an independent Table copy.
func NewTable(shares map[account.ID]uint32) (Table, error) {
	var total uint64
	t := make(Table, len(shares))
	for beneficiary, share := range shares {
		if beneficiary == "" {
			return nil, ErrEmptyBeneficiary
		}
		if share == 0 {
			return nil, ErrZeroShare
		}
		total += uint64(share)
		t[beneficiary] = share
	}
	if total > TotalBasisPoints {
		return nil, ErrShareOverflow
	}
	return t, nil
}

// AssignedBasisPoints returns the sum of all shares in the table.
func (t Table) AssignedBasisPoints() uint64 {
	var total uint64
	for _, share := range t {
		total += uint64(share)
	}
	return total
}

// BoundedBy checks the table against a caller-supplied beneficiary
// ceiling. Settlement systems pass the ceiling to bound the cost of
// executing the payout.
func (t Table) BoundedBy(maxLenPayout uint32) error {
	if uint64(len(t)) > uint64(maxLenPayout) {
		return ErrTooManyBeneficiaries
	}
	return nil
}

// Sum returns the total of all payout amounts.
func Sum(p Payout) *uint256.Int {
	total := new(uint256.Int)
	for _, amount := range p {
		total.Add(total, amount)
	}
	return total
}
