// Package hashing implements bcrypt password hashing and verification.
//
// # Architecture
//
// [BcryptEngine] owns the algorithm: the EksBlowfish key schedule built on
// golang.org/x/crypto/blowfish, the 64-fold encryption of
// "OrpheanBeholderScryDoubt", the bcrypt radix-64 codec and the $2b$ string
// format.  It is stateless; cost and salt are explicit per call and are
// recovered from the encoded string on verification.
//
// [BcryptHasher] wraps an engine with a fixed cost behind the [Hasher]
// interface, so application code can depend on the interface rather than a
// concrete type.  [LoadBcryptOptions] builds its options from viper.
//
// # Quick start
//
//	hash, err := hashing.Hash([]byte("my-secret-password"), hashing.DefaultBcryptCost)
//	if err != nil { log.Fatal(err) }
//
//	ok := hashing.Verify([]byte("my-secret-password"), hash) // true
//
// # Hash format
//
//	$2b$10$..CA.uOD/eaGAOmJB.yMBuHtICrZkZBO5AdQ7Nw5WEmWQZKVA0IkK
//	 |  |  |                     |
//	 |  |  22 chars salt         31 chars hash
//	 |  cost, two digits
//	 identifier
//
// Only the $2b$ identifier is produced or accepted.
//
// # Long passwords
//
// bcrypt consumes at most 72 password bytes.  By default longer passwords are
// rejected with [ErrPasswordTooLong]; [TruncateLongPasswords] restores the
// classic behaviour of silently hashing the first 72 bytes.
//
// # Errors and verification
//
// Hash reports [ErrInvalidCost], [ErrPasswordTooLong], [ErrInvalidSalt] and
// [ErrInsufficientEntropy].  Verify only ever returns a bool: a malformed
// hash is logged through the engine's zerolog logger and reported as a
// mismatch, after a decoy computation that keeps its timing close to a real
// comparison.
package hashing
