package ledger

import "github.com/nftixorg/libnftix-go/account"

// Redeem flips the token's redemption flag. Only the current owner may
// redeem, only while the flag is unset; replays fail with
// ErrAlreadyRedeemed. There is no way back: redemption is terminal.
func (l *Ledger) Redeem(id TokenID, caller account.ID) (*Token, error) {
	t, err := l.store.GetToken(id)
	if err != nil {
		return nil, err
	}
	if caller != t.Owner {
		return nil, ErrNotOwner
	}
	if t.Redeemed {
		return nil, ErrAlreadyRedeemed
	}

	t.Redeemed = true
	if err := l.store.UpdateToken(t); err != nil {
		return nil, err
	}
	return t, nil
}
