package hashing

import (
	"golang.org/x/crypto/blowfish"
)

const (
	// SaltLength is bcrypt's native salt size in bytes.
	SaltLength = 16

	// MaxPasswordLength is the number of password bytes bcrypt's key schedule
	// consumes.  See [LongPasswordPolicy] for what happens beyond it.
	MaxPasswordLength = 72

	// sumLen is how much of the 24-byte ciphertext the encoded form keeps.
	sumLen = 23

	encryptRounds = 64
)

// magicCipherData is the plaintext encrypted by every bcrypt computation.
var magicCipherData = []byte("OrpheanBeholderScryDoubt")

// bcryptSum runs bcrypt over a policy-checked password and returns the
// 24-byte ciphertext.  cost and salt must already be validated.
func bcryptSum(password []byte, cost int, salt []byte) ([]byte, error) {
	// The key is the password plus its NUL terminator.  Blowfish's expansion
	// reads 72 bytes per pass and wraps around short keys, so a 72-byte
	// password never reaches its terminator.
	key := make([]byte, len(password)+1)
	copy(key, password)

	c, err := eksBlowfishSetup(key, cost, salt)
	if err != nil {
		return nil, err
	}

	sum := make([]byte, len(magicCipherData))
	copy(sum, magicCipherData)
	for i := 0; i < len(sum); i += blowfish.BlockSize {
		block := sum[i : i+blowfish.BlockSize]
		for j := 0; j < encryptRounds; j++ {
			c.Encrypt(block, block)
		}
	}
	return sum, nil
}

// eksBlowfishSetup is the expensive key schedule: one salted expansion, then
// 2^cost rounds that alternate an unsalted expansion with the key and one
// with the salt.
func eksBlowfishSetup(key []byte, cost int, salt []byte) (*blowfish.Cipher, error) {
	c, err := blowfish.NewSaltedCipher(key, salt)
	if err != nil {
		return nil, err
	}
	rounds := uint64(1) << uint(cost)
	for i := uint64(0); i < rounds; i++ {
		blowfish.ExpandKey(key, c)
		blowfish.ExpandKey(salt, c)
	}
	return c, nil
}
