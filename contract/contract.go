package contract

import (
	"sync"

	"github.com/holiman/uint256"

	"github.com/nftixorg/libnftix-go/account"
	"github.com/nftixorg/libnftix-go/config"
	"github.com/nftixorg/libnftix-go/ledger"
	"github.com/nftixorg/libnftix-go/metering"
	"github.com/nftixorg/libnftix-go/mint"
	"github.com/nftixorg/libnftix-go/royalty"
)

// Contract is the top-level context object composing the token ledger,
// mint controller, royalty table and storage-metering collaborator.
// Every public operation holds the contract mutex from validation
// through mutation, so callers get the one-operation-at-a-time
// semantics of a serialized contract runtime even on a multi-threaded
// host. Operations validate all preconditions before mutating; a
// failed operation leaves all state unchanged.
type Contract struct {
	mu        sync.Mutex
	ledger    *ledger.Ledger
	minter    *mint.Controller
	royalties royalty.Table
	meter     metering.Meter
	journal   []Event
}

// Receipt reports the result of a purchase-and-mint. PriceCharged is
// the exact amount owed; the payment collaborator refunds any excess
// of the attached payment over it.
type Receipt struct {
	Token        *ledger.Token
	PriceCharged *uint256.Int
}

// New builds a contract from a validated config over the given store.
// A nil meter falls back to metering.NopMeter.
func New(store ledger.Store, cfg config.Config, meter metering.Meter) (*Contract, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	price, err := cfg.Price()
	if err != nil {
		return nil, err
	}

	shares := make(map[account.ID]uint32, len(cfg.Royalties))
	for beneficiary, share := range cfg.Royalties {
		shares[account.ID(beneficiary)] = share
	}
	table, err := royalty.NewTable(shares)
	if err != nil {
		return nil, err
	}

	mediaHash, err := cfg.Template.MediaHashBytes()
	if err != nil {
		return nil, err
	}

	led := ledger.NewLedger(store)
	minter, err := mint.NewController(led, cfg.SupplyCap, price, ledger.Metadata{
		Title:       cfg.Template.Title,
		Description: cfg.Template.Description,
		Media:       cfg.Template.Media,
		MediaHash:   mediaHash,
		Copies:      cfg.SupplyCap,
	})
	if err != nil {
		return nil, err
	}

	if meter == nil {
		meter = metering.NopMeter{}
	}
	return &Contract{
		ledger:    led,
		minter:    minter,
		royalties: table,
		meter:     meter,
	}, nil
}

// Buy mints the next token against an attached payment. The token is
// owned by receiver when given, otherwise by the caller. Sold-out is
// checked before payment, so a sold-out contract reports ErrSoldOut
// regardless of the amount attached.
func (c *Contract) Buy(caller account.ID, receiver *account.ID, payment *uint256.Int) (*Receipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.minter.Available(); err != nil {
		return nil, err
	}
	if err := c.minter.CheckPayment(payment); err != nil {
		return nil, err
	}

	owner := caller
	if receiver != nil {
		owner = *receiver
	}
	t, err := c.minter.Mint(owner)
	if err != nil {
		return nil, err
	}

	c.record(EventMint, t.ID, caller, owner, "")
	return &Receipt{Token: t, PriceCharged: c.minter.Price()}, nil
}

// Get returns the token with the given id.
func (c *Contract) Get(id ledger.TokenID) (*ledger.Token, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ledger.Get(id)
}

// TokensLeft returns the remaining mintable supply.
func (c *Contract) TokensLeft() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.minter.TokensLeft()
}

// TokensForOwner returns all tokens currently owned by owner.
func (c *Contract) TokensForOwner(owner account.ID) ([]*ledger.Token, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ledger.TokensForOwner(owner)
}

// Transfer moves a token without computing a payout. Released
// approvals are reported to the metering collaborator.
func (c *Contract) Transfer(id ledger.TokenID, sender, receiver account.ID, approvalID *uint64, memo string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	prevOwner, prevApprovals, err := c.ledger.Transfer(id, sender, receiver, approvalID, memo)
	if err != nil {
		return err
	}
	if len(prevApprovals) > 0 {
		c.meter.RefundReleased(metering.ReleaseFor(prevOwner, prevApprovals))
	}
	c.record(EventTransfer, id, prevOwner, receiver, memo)
	return nil
}

// Approve grants delegate a transfer approval and returns its id.
func (c *Contract) Approve(id ledger.TokenID, delegate, caller account.ID) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	approvalID, err := c.ledger.Approve(id, delegate, caller)
	if err != nil {
		return 0, err
	}
	c.record(EventApprove, id, caller, delegate, "")
	return approvalID, nil
}

// Revoke removes delegate's approval and reports the released entry.
func (c *Contract) Revoke(id ledger.TokenID, delegate, caller account.ID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ledger.Revoke(id, delegate, caller); err != nil {
		return err
	}
	c.meter.RefundReleased(metering.Release{
		Owner:     caller,
		Delegates: []account.ID{delegate},
		Bytes:     metering.BytesForApproval(delegate),
	})
	c.record(EventRevoke, id, caller, delegate, "")
	return nil
}

// RevokeAll removes every approval on the token and reports the
// released entries.
func (c *Contract) RevokeAll(id ledger.TokenID, caller account.ID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	released, err := c.ledger.RevokeAll(id, caller)
	if err != nil {
		return err
	}
	if len(released) > 0 {
		c.meter.RefundReleased(metering.ReleaseFor(caller, released))
	}
	c.record(EventRevokeAll, id, caller, "", "")
	return nil
}

// IsApproved reports whether delegate holds a current approval.
func (c *Contract) IsApproved(id ledger.TokenID, delegate account.ID, approvalID *uint64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ledger.IsApproved(id, delegate, approvalID)
}

// Redeem marks a token consumed. Owner-gated, one-way.
func (c *Contract) Redeem(id ledger.TokenID, caller account.ID) (*ledger.Token, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, err := c.ledger.Redeem(id, caller)
	if err != nil {
		return nil, err
	}
	c.record(EventRedeem, id, caller, "", "")
	return t, nil
}

// Royalties returns a copy of the contract's royalty table.
func (c *Contract) Royalties() royalty.Table {
	c.mu.Lock()
	defer c.mu.Unlock()

	table := make(royalty.Table, len(c.royalties))
	for beneficiary, share := range c.royalties {
		table[beneficiary] = share
	}
	return table
}
