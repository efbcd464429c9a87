package hashing

import "errors"

// Sentinel errors returned by hashing operations.
//
// Use [errors.Is] for comparisons:
//
//	hash, err := hashing.Hash(password, cost)
//	if errors.Is(err, hashing.ErrInsufficientEntropy) {
//	    // transient: the random source failed, the caller may retry
//	}
//
// [Verify] and [BcryptHasher.Check] never return these; a rejected input is
// reported as a mismatch.
var (
	// ErrInvalidCost is returned when a bcrypt cost falls outside
	// [MinCost, MaxCost].  Costs are never clamped.
	ErrInvalidCost = errors.New("hashing: invalid bcrypt cost")

	// ErrInsufficientEntropy is returned when the random source cannot supply
	// a full 16-byte salt.  The failure is confined to that call; retrying is
	// safe.
	ErrInsufficientEntropy = errors.New("hashing: random source could not supply a salt")

	// ErrMalformedHash is returned when an encoded hash does not match the
	// $2b$<cost>$<salt><hash> layout: wrong length, unsupported identifier,
	// bad cost field or characters outside the bcrypt alphabet.
	ErrMalformedHash = errors.New("hashing: malformed bcrypt hash")

	// ErrPasswordTooLong is returned under [RejectLongPasswords] when a
	// password exceeds [MaxPasswordLength] bytes.
	ErrPasswordTooLong = errors.New("hashing: password exceeds bcrypt's 72 byte limit")

	// ErrInvalidSalt is returned by [HashWithSalt] when the supplied salt is
	// not exactly [SaltLength] bytes.
	ErrInvalidSalt = errors.New("hashing: bcrypt salt must be 16 bytes")

	// ErrInvalidOption is returned when an option or configuration value is
	// not recognised (e.g., an unknown long password policy).
	ErrInvalidOption = errors.New("hashing: invalid option value")
)
