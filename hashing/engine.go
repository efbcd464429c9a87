package hashing

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// MinCost is the smallest accepted bcrypt work factor.
	MinCost = 4

	// MaxCost is the largest accepted bcrypt work factor.  A cost-31 hash
	// performs 2^31 key expansions; choosing a cost that fits a latency
	// budget is the caller's job.
	MaxCost = 31

	// DefaultBcryptCost is the work factor used by [DefaultBcryptOptions]
	// and by the decoy computation of the package-level [Verify].
	DefaultBcryptCost = 10
)

// LongPasswordPolicy decides what happens to passwords longer than
// [MaxPasswordLength] bytes.
type LongPasswordPolicy int

const (
	// RejectLongPasswords fails Hash with [ErrPasswordTooLong] and makes
	// Verify report a mismatch.  This is the default.
	RejectLongPasswords LongPasswordPolicy = iota

	// TruncateLongPasswords keeps classic bcrypt semantics: only the first 72
	// bytes are hashed, so two passwords sharing a 72-byte prefix produce
	// interchangeable hashes.
	TruncateLongPasswords
)

// String returns the configuration spelling of p.
func (p LongPasswordPolicy) String() string {
	switch p {
	case RejectLongPasswords:
		return "reject"
	case TruncateLongPasswords:
		return "truncate"
	default:
		return fmt.Sprintf("LongPasswordPolicy(%d)", int(p))
	}
}

// ParseLongPasswordPolicy parses "reject" or "truncate" (case-insensitive).
func ParseLongPasswordPolicy(s string) (LongPasswordPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reject":
		return RejectLongPasswords, nil
	case "truncate":
		return TruncateLongPasswords, nil
	default:
		return 0, fmt.Errorf("%w: unknown long password policy %q", ErrInvalidOption, s)
	}
}

// EngineOptions configures a [BcryptEngine].  The zero value is usable.
type EngineOptions struct {
	// Rand supplies salts.  It must be safe for concurrent use.
	// Default: crypto/rand.Reader.
	Rand io.Reader

	// Logger receives a debug event whenever Verify rejects its input.
	// Events carry the rejection reason only, never the password or hash.
	// Default: zerolog.Nop().
	Logger *zerolog.Logger

	// LongPasswords selects the policy for passwords over 72 bytes.
	// Default: [RejectLongPasswords].
	LongPasswords LongPasswordPolicy

	// DecoyCost is the work factor of the throwaway computation Verify runs
	// when it rejects an input, so a rejected hash costs about as much time
	// as a real comparison.  Default: [DefaultBcryptCost].
	DecoyCost int
}

// DefaultEngineOptions returns EngineOptions with every default filled in.
func DefaultEngineOptions() EngineOptions {
	nop := zerolog.Nop()
	return EngineOptions{
		Rand:          rand.Reader,
		Logger:        &nop,
		LongPasswords: RejectLongPasswords,
		DecoyCost:     DefaultBcryptCost,
	}
}

// BcryptEngine derives and verifies bcrypt hashes.
//
// The engine holds no per-call state: cost and salt are explicit parameters
// of every call and are recovered from the encoded string on verification.
//
// # Thread safety
//
// BcryptEngine is immutable after construction and safe for concurrent use,
// provided its random source is.
type BcryptEngine struct {
	rand          io.Reader
	log           zerolog.Logger
	longPasswords LongPasswordPolicy
	decoyCost     int
}

// NewBcryptEngine constructs a BcryptEngine.  Unset options take the values
// of [DefaultEngineOptions].
func NewBcryptEngine(opts EngineOptions) (*BcryptEngine, error) {
	def := DefaultEngineOptions()
	if opts.Rand == nil {
		opts.Rand = def.Rand
	}
	if opts.Logger == nil {
		opts.Logger = def.Logger
	}
	if opts.DecoyCost == 0 {
		opts.DecoyCost = def.DecoyCost
	}
	if opts.LongPasswords != RejectLongPasswords && opts.LongPasswords != TruncateLongPasswords {
		return nil, fmt.Errorf("%w: unknown long password policy %v", ErrInvalidOption, opts.LongPasswords)
	}
	if err := ValidateCost(opts.DecoyCost); err != nil {
		return nil, fmt.Errorf("%w: decoy cost: %v", ErrInvalidOption, err)
	}
	return &BcryptEngine{
		rand:          opts.Rand,
		log:           *opts.Logger,
		longPasswords: opts.LongPasswords,
		decoyCost:     opts.DecoyCost,
	}, nil
}

// ValidateCost returns [ErrInvalidCost] unless cost is in [MinCost, MaxCost].
func ValidateCost(cost int) error {
	if cost < MinCost || cost > MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d must be in [%d, %d]",
			ErrInvalidCost, cost, MinCost, MaxCost)
	}
	return nil
}

// Hash derives a bcrypt hash of password with a fresh random salt and returns
// the encoded form ($2b$<cost>$...).  Two calls with the same input produce
// different strings.
func (e *BcryptEngine) Hash(password []byte, cost int) (string, error) {
	if err := ValidateCost(cost); err != nil {
		return "", err
	}
	pw, err := e.applyPolicy(password)
	if err != nil {
		return "", err
	}
	salt, err := e.newSalt()
	if err != nil {
		return "", err
	}
	return e.hash(pw, cost, salt)
}

// HashWithSalt is the deterministic variant of [BcryptEngine.Hash]: identical
// inputs always produce the identical string.  It exists for test vectors and
// reproducible fixtures.  Reusing a salt across production passwords is a
// security defect; production code must call Hash.
func (e *BcryptEngine) HashWithSalt(password []byte, cost int, salt []byte) (string, error) {
	if err := ValidateCost(cost); err != nil {
		return "", err
	}
	if len(salt) != SaltLength {
		return "", fmt.Errorf("%w: got %d bytes", ErrInvalidSalt, len(salt))
	}
	pw, err := e.applyPolicy(password)
	if err != nil {
		return "", err
	}
	return e.hash(pw, cost, salt)
}

// Verify reports whether password matches encoded.
//
// A malformed hash or a password the policy rejects yields false, exactly like
// a wrong password; the reason is logged at debug level.  After a rejection a
// decoy computation at the engine's decoy cost runs before returning.
func (e *BcryptEngine) Verify(password []byte, encoded string) bool {
	ok, err := e.verify(password, encoded)
	if err != nil {
		e.log.Debug().Err(err).Msg("bcrypt verification rejected its input")
		e.decoy(password)
		return false
	}
	return ok
}

func (e *BcryptEngine) verify(password []byte, encoded string) (bool, error) {
	p, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}
	pw, err := e.applyPolicy(password)
	if err != nil {
		return false, err
	}
	sum, err := bcryptSum(pw, p.cost, p.salt)
	if err != nil {
		return false, fmt.Errorf("hashing: bcrypt: %w", err)
	}
	return sumsEqual(sum[:sumLen], p.sum), nil
}

func (e *BcryptEngine) hash(password []byte, cost int, salt []byte) (string, error) {
	sum, err := bcryptSum(password, cost, salt)
	if err != nil {
		return "", fmt.Errorf("hashing: bcrypt: failed to hash password: %w", err)
	}
	return encodeHash(cost, salt, sum), nil
}

// applyPolicy enforces the long password policy.
func (e *BcryptEngine) applyPolicy(password []byte) ([]byte, error) {
	if len(password) <= MaxPasswordLength {
		return password, nil
	}
	if e.longPasswords == TruncateLongPasswords {
		return password[:MaxPasswordLength], nil
	}
	return nil, fmt.Errorf("%w: got %d bytes", ErrPasswordTooLong, len(password))
}

// newSalt reads SaltLength bytes from the engine's random source.
func (e *BcryptEngine) newSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := io.ReadFull(e.rand, salt); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInsufficientEntropy, err)
	}
	return salt, nil
}

var decoySalt = make([]byte, SaltLength)

func (e *BcryptEngine) decoy(password []byte) {
	if len(password) > MaxPasswordLength {
		password = password[:MaxPasswordLength]
	}
	_, _ = bcryptSum(password, e.decoyCost, decoySalt)
}

// sumsEqual compares two hash sums in time that depends only on their length.
func sumsEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// ──────────────────────────────────────────────────────────────────────────────
// Package-level helpers
// ──────────────────────────────────────────────────────────────────────────────

var defaultEngine = mustEngine(DefaultEngineOptions())

func mustEngine(opts EngineOptions) *BcryptEngine {
	e, err := NewBcryptEngine(opts)
	if err != nil {
		panic(err)
	}
	return e
}

// Hash hashes password at the given cost with a fresh salt from crypto/rand,
// rejecting passwords longer than 72 bytes.
func Hash(password []byte, cost int) (string, error) {
	return defaultEngine.Hash(password, cost)
}

// HashWithSalt hashes password with a caller-supplied 16-byte salt.  For
// tests and fixtures only; see [BcryptEngine.HashWithSalt].
func HashWithSalt(password []byte, cost int, salt []byte) (string, error) {
	return defaultEngine.HashWithSalt(password, cost, salt)
}

// Verify reports whether password matches encoded.  It never returns an
// error: malformed input is a mismatch.
func Verify(password []byte, encoded string) bool {
	return defaultEngine.Verify(password, encoded)
}
