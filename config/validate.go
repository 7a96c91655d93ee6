// Copyright (c) 2026 The NFTix developers
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package config

// ValidateConfig checks that all configuration values are within
// acceptable ranges and returns the first error encountered, or nil
// if valid.
func ValidateConfig(cfg Config) error {
	if cfg.DataDir == "" {
		return ErrEmptyDataDir
	}

	if cfg.SupplyCap == 0 {
		return ErrZeroSupplyCap
	}

	if _, err := cfg.Price(); err != nil {
		return err
	}

	var totalShares uint64
	for beneficiary, share := range cfg.Royalties {
		if beneficiary == "" {
			return ErrEmptyBeneficiary
		}
		if share == 0 {
			return ErrZeroRoyaltyShare
		}
		totalShares += uint64(share)
	}
	if totalShares > 10000 {
		return ErrRoyaltyOverflow
	}

	if cfg.Template.Copies != 0 && cfg.Template.Copies != cfg.SupplyCap {
		return ErrCopiesMismatch
	}

	if _, err := cfg.Template.MediaHashBytes(); err != nil {
		return err
	}

	return nil
}
