package mint

import (
	"fmt"
	"strconv"

	"github.com/holiman/uint256"

	"github.com/nftixorg/libnftix-go/account"
	"github.com/nftixorg/libnftix-go/ledger"
)

// Controller issues tokens sequentially up to a fixed supply cap.
// Token ids are the 1-based mint sequence numbers, stringified: dense,
// never skipped, never reused. The counter never decreases, so ids
// stay unique even if burning is ever added.
type Controller struct {
	ledger   *ledger.Ledger
	cap      uint64
	price    *uint256.Int
	template ledger.Metadata
	minted   uint64
}

// NewController creates a mint controller over the given ledger. The
// minted count is recovered from the ledger's token count: ids are
// dense and tokens are never destroyed, so the two can not drift.
func NewController(led *ledger.Ledger, supplyCap uint64, price *uint256.Int, template ledger.Metadata) (*Controller, error) {
	if led == nil {
		return nil, ErrNilLedger
	}
	if supplyCap == 0 {
		return nil, ErrZeroSupplyCap
	}
	if price == nil {
		return nil, ErrNilPrice
	}
	minted, err := led.TokenCount()
	if err != nil {
		return nil, fmt.Errorf("mint: recover minted count: %w", err)
	}
	if minted > supplyCap {
		return nil, fmt.Errorf("%w: %d minted, cap %d", ErrCapExceeded, minted, supplyCap)
	}
	return &Controller{
		ledger:   led,
		cap:      supplyCap,
		price:    new(uint256.Int).Set(price),
		template: template.Clone(),
		minted:   minted,
	}, nil
}

// Available returns ErrSoldOut once the supply cap is reached.
func (c *Controller) Available() error {
	if c.minted >= c.cap {
		return ErrSoldOut
	}
	return nil
}

// CheckPayment verifies the attached payment covers the mint price.
// Any excess is the payment collaborator's to refund; see Price.
func (c *Controller) CheckPayment(attached *uint256.Int) error {
	if attached == nil || attached.Lt(c.price) {
		return fmt.Errorf("%w: price %v", ErrInsufficientPayment, c.price)
	}
	return nil
}

// Mint issues the next token to owner and inserts it into the ledger.
// The counter advances only after the insert succeeds, so a failed
// insert never burns a sequence number.
func (c *Controller) Mint(owner account.ID) (*ledger.Token, error) {
	if err := c.Available(); err != nil {
		return nil, err
	}

	t := &ledger.Token{
		ID:        ledger.TokenID(strconv.FormatUint(c.minted+1, 10)),
		Owner:     owner,
		Metadata:  c.template.Clone(),
		Redeemed:  false,
		Approvals: make(map[account.ID]uint64),
	}
	if err := c.ledger.Insert(t); err != nil {
		return nil, err
	}
	c.minted++
	return t, nil
}

// Price returns a copy of the configured mint price.
func (c *Controller) Price() *uint256.Int {
	return new(uint256.Int).Set(c.price)
}

// Minted returns the number of tokens issued so far.
func (c *Controller) Minted() uint64 { return c.minted }

// TokensLeft returns the remaining supply.
func (c *Controller) TokensLeft() uint64 { return c.cap - c.minted }
