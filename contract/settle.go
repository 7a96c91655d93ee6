package contract

import (
	"github.com/holiman/uint256"

	"github.com/nftixorg/libnftix-go/account"
	"github.com/nftixorg/libnftix-go/ledger"
	"github.com/nftixorg/libnftix-go/metering"
	"github.com/nftixorg/libnftix-go/royalty"
)

// TransferWithPayout moves a token and returns the royalty split the
// caller should execute for saleAmount. The split is computed against
// the pre-transfer owner: royalty percentages apply to the seller, and
// the seller receives the unassigned residual share.
//
// The split is computed in full before the ledger is touched, so a
// rejected settlement (nil amount, bound too small for the table)
// leaves ownership unchanged. Fund movement is the caller's
// responsibility; this reports amounts only.
func (c *Contract) TransferWithPayout(id ledger.TokenID, sender, receiver account.ID, approvalID *uint64, memo string, saleAmount *uint256.Int, maxLenPayout uint32) (royalty.Payout, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, err := c.ledger.Get(id)
	if err != nil {
		return nil, err
	}
	payout, err := royalty.Split(c.royalties, t.Owner, saleAmount, maxLenPayout)
	if err != nil {
		return nil, err
	}

	prevOwner, prevApprovals, err := c.ledger.Transfer(id, sender, receiver, approvalID, memo)
	if err != nil {
		return nil, err
	}

	if len(prevApprovals) > 0 {
		c.meter.RefundReleased(metering.ReleaseFor(prevOwner, prevApprovals))
	}

	c.record(EventTransfer, id, prevOwner, receiver, memo)
	return payout, nil
}

// PayoutPreview computes the royalty split for a hypothetical sale of
// the token at saleAmount without mutating ownership. Marketplaces use
// it to preview amounts before committing a transfer.
func (c *Contract) PayoutPreview(id ledger.TokenID, saleAmount *uint256.Int, maxLenPayout uint32) (royalty.Payout, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, err := c.ledger.Get(id)
	if err != nil {
		return nil, err
	}
	return royalty.Split(c.royalties, t.Owner, saleAmount, maxLenPayout)
}
