// Copyright (c) 2026 The NFTix developers
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package config

import "errors"

var (
	// ErrEmptyDataDir indicates the data directory path is empty.
	ErrEmptyDataDir = errors.New("config: data directory must not be empty")

	// ErrZeroSupplyCap indicates a supply cap of zero.
	ErrZeroSupplyCap = errors.New("config: supply cap must be at least 1")

	// ErrInvalidPrice indicates the mint price is not a base-10 integer.
	ErrInvalidPrice = errors.New("config: invalid mint price")

	// ErrRoyaltyOverflow indicates royalty shares sum above 10000 basis points.
	ErrRoyaltyOverflow = errors.New("config: royalty shares exceed 10000 basis points")

	// ErrZeroRoyaltyShare indicates a beneficiary with a zero share.
	ErrZeroRoyaltyShare = errors.New("config: zero royalty share")

	// ErrEmptyBeneficiary indicates an empty royalty beneficiary account.
	ErrEmptyBeneficiary = errors.New("config: empty royalty beneficiary")

	// ErrCopiesMismatch indicates the template copy count disagrees with the supply cap.
	ErrCopiesMismatch = errors.New("config: template copies must match supply cap")

	// ErrInvalidMediaHash indicates the template media hash is not valid base64.
	ErrInvalidMediaHash = errors.New("config: invalid media hash")

	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("config: configuration file not found")
)
