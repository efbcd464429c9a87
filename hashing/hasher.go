package hashing

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Hasher is the interface application code should depend on for password
// hashing.  It fixes the work factor at construction time so call sites only
// deal with passwords and stored hashes.
//
// All implementations must be safe for concurrent use by multiple goroutines.
type Hasher interface {
	// Make hashes a plaintext password and returns the encoded hash string.
	// A fresh salt is generated for every call, so two calls with the same
	// password produce different outputs.
	Make(password string) (string, error)

	// Check reports whether password matches hash.  A structurally invalid
	// hash is indistinguishable from a wrong password.
	Check(password, hash string) bool

	// NeedsRehash returns true when hash was produced with a cost other than
	// the hasher's current one.  Callers should re-hash the password on the
	// next successful login when this returns true.
	NeedsRehash(hash string) (bool, error)

	// Info extracts the parameters of an encoded hash without verifying it.
	Info(hash string) (HashInfo, error)
}

// BcryptOptions configures a [BcryptHasher].
type BcryptOptions struct {
	// Cost is the bcrypt work factor (logarithmic).
	// Valid range: [MinCost (4), MaxCost (31)].
	// Default: [DefaultBcryptCost] (10).
	Cost int

	// LongPasswords selects the policy for passwords over 72 bytes.
	// Default: [RejectLongPasswords].
	LongPasswords LongPasswordPolicy

	// Logger receives debug events for rejected Check input.
	// Default: zerolog.Nop().
	Logger *zerolog.Logger
}

// DefaultBcryptOptions returns BcryptOptions with [DefaultBcryptCost].
func DefaultBcryptOptions() BcryptOptions {
	return BcryptOptions{Cost: DefaultBcryptCost, LongPasswords: RejectLongPasswords}
}

// BcryptHasher is a [Hasher] backed by a [BcryptEngine] with a fixed cost.
//
// # Thread safety
//
// BcryptHasher is immutable after construction and safe for concurrent use.
type BcryptHasher struct {
	cost   int
	engine *BcryptEngine
}

// NewBcryptHasher constructs a BcryptHasher with the provided options.
// Returns [ErrInvalidCost] if Cost is outside [MinCost, MaxCost].
func NewBcryptHasher(opts BcryptOptions) (*BcryptHasher, error) {
	if err := ValidateCost(opts.Cost); err != nil {
		return nil, err
	}
	engine, err := NewBcryptEngine(EngineOptions{
		Logger:        opts.Logger,
		LongPasswords: opts.LongPasswords,
		DecoyCost:     opts.Cost,
	})
	if err != nil {
		return nil, err
	}
	return &BcryptHasher{cost: opts.Cost, engine: engine}, nil
}

// Cost returns the configured bcrypt work factor.
func (h *BcryptHasher) Cost() int { return h.cost }

// Make hashes password and returns the encoded string (e.g., "$2b$10$...").
func (h *BcryptHasher) Make(password string) (string, error) {
	hash, err := h.engine.Hash([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing: bcrypt: failed to hash password: %w", err)
	}
	return hash, nil
}

// Check reports whether password matches the bcrypt-encoded hash.
func (h *BcryptHasher) Check(password, hash string) bool {
	return h.engine.Verify([]byte(password), hash)
}

// NeedsRehash returns true if the work factor encoded in hash differs from
// the hasher's configured cost.  A lower stored cost means the hash is weaker
// than the current configuration; a higher one means the configuration was
// dialled back.
func (h *BcryptHasher) NeedsRehash(hash string) (bool, error) {
	cost, err := Cost(hash)
	if err != nil {
		return false, err
	}
	return cost != h.cost, nil
}

// Info extracts the identifier, cost and salt from a bcrypt hash string.
func (h *BcryptHasher) Info(hash string) (HashInfo, error) {
	return Parse(hash)
}

var _ Hasher = (*BcryptHasher)(nil)
