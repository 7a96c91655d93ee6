// Copyright (c) 2026 The NFTix developers
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package config

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/holiman/uint256"
)

// Config holds the contract deployment parameters: they are fixed at
// initialization and immutable for the contract's lifetime.
type Config struct {
	// DataDir is where the token database lives.
	DataDir string `json:"data_dir"`

	// SupplyCap is the total number of tokens that can ever be minted.
	SupplyCap uint64 `json:"supply_cap"`

	// MintPrice is the price of one mint as a base-10 string, matching
	// the JSON convention for balances that exceed 64 bits.
	MintPrice string `json:"mint_price"`

	// Royalties maps beneficiary accounts to basis-point shares
	// (0-10000). The unassigned remainder goes to the seller at
	// settlement time.
	Royalties map[string]uint32 `json:"royalties,omitempty"`

	// Template is the display metadata stamped onto every minted token.
	Template MetadataTemplate `json:"template"`
}

// MetadataTemplate is the contract-wide display metadata copied to each
// token at mint time. The ledger treats these fields as opaque.
type MetadataTemplate struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Media       string `json:"media,omitempty"`

	// MediaHash is the base64-encoded digest of the media content.
	MediaHash string `json:"media_hash,omitempty"`

	Copies uint64 `json:"copies,omitempty"`
}

// MediaHashBytes decodes MediaHash into raw digest bytes. An empty
// hash decodes to nil.
func (t MetadataTemplate) MediaHashBytes() ([]byte, error) {
	if t.MediaHash == "" {
		return nil, nil
	}
	hash, err := base64.StdEncoding.DecodeString(t.MediaHash)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMediaHash, t.MediaHash)
	}
	return hash, nil
}

// DefaultConfig returns a config with example values mirroring the
// reference deployment.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DataDir:   filepath.Join(home, ".nftix"),
		SupplyCap: 100,
		MintPrice: "1000000000000000000000000", // 10^24
		Template: MetadataTemplate{
			Title:  "Ticket to paradise",
			Media:  "https://ipfs.io/ipfs/bafybeighxr7dvxnugqiesff3caszpp6nxznjkhieqyglbelg4tcy2b5a3a",
			Copies: 100,
		},
	}
}

// ConfigPath returns the config file path under dataDir.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, "config.json")
}

// LoadConfig reads and parses the config file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("config: read file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse file: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the config to path, creating the parent directory
// if needed.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// Price parses MintPrice into an exact integer amount.
func (c Config) Price() (*uint256.Int, error) {
	price, err := uint256.FromDecimal(c.MintPrice)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPrice, c.MintPrice)
	}
	return price, nil
}
