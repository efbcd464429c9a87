package hashing

import (
	"fmt"
)

const (
	// HashIdentifier is the only bcrypt variant this package produces or
	// accepts.  $2a$, $2x$ and $2y$ hashes are rejected as malformed.
	HashIdentifier = "2b"

	// EncodedHashLength is the length of every encoded hash:
	// "$2b$" + 2 cost digits + "$" + 22 salt chars + 31 hash chars.
	EncodedHashLength = 60

	encodedSaltLen = 22
	encodedSumLen  = 31
)

// HashInfo carries the parameters recovered from an encoded hash.  Cost and
// salt are never stored anywhere else; the encoded string is the only
// persisted artifact.
type HashInfo struct {
	// Identifier is the bcrypt variant, always [HashIdentifier].
	Identifier string

	// Cost is the log2 work factor, in [MinCost, MaxCost].
	Cost int

	// Salt is the raw 16-byte salt.
	Salt []byte
}

// parsedHash is an encoded hash split into its binary parts.
type parsedHash struct {
	cost int
	salt []byte
	sum  []byte // first sumLen bytes of the EksBlowfish output
}

// encodeHash serialises a bcrypt result:
//
//	$2b$10$<22 chars salt><31 chars hash>
//
// The 24-byte ciphertext is truncated to 23 bytes; 31 radix-64 characters
// cannot carry the last byte and every bcrypt implementation drops it.
func encodeHash(cost int, salt, sum []byte) string {
	return fmt.Sprintf("$%s$%02d$%s%s",
		HashIdentifier,
		cost,
		radix64Encode(salt),
		radix64Encode(sum[:sumLen]),
	)
}

// decodeHash parses an encoded hash.  Every failure wraps [ErrMalformedHash].
func decodeHash(encoded string) (*parsedHash, error) {
	if len(encoded) != EncodedHashLength {
		return nil, fmt.Errorf("%w: expected %d characters, got %d",
			ErrMalformedHash, EncodedHashLength, len(encoded))
	}
	if encoded[0] != '$' || encoded[3] != '$' || encoded[6] != '$' {
		return nil, fmt.Errorf("%w: missing '$' separators", ErrMalformedHash)
	}
	if id := encoded[1:3]; id != HashIdentifier {
		return nil, fmt.Errorf("%w: unsupported identifier %q", ErrMalformedHash, id)
	}

	cost, err := parseCostField(encoded[4:6])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}

	body := encoded[7:]
	salt, err := radix64Decode(body[:encodedSaltLen], SaltLength)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid salt: %v", ErrMalformedHash, err)
	}
	sum, err := radix64Decode(body[encodedSaltLen:], sumLen)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hash: %v", ErrMalformedHash, err)
	}

	return &parsedHash{cost: cost, salt: salt, sum: sum}, nil
}

// parseCostField accepts exactly two decimal digits.  strconv.Atoi would also
// take "+5" and "-1".
func parseCostField(s string) (int, error) {
	if len(s) != 2 || !isDigit(s[0]) || !isDigit(s[1]) {
		return 0, fmt.Errorf("cost field %q is not two digits", s)
	}
	cost := int(s[0]-'0')*10 + int(s[1]-'0')
	if err := ValidateCost(cost); err != nil {
		return 0, err
	}
	return cost, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Parse extracts the identifier, cost and salt from an encoded hash without
// verifying anything.  Useful for auditing and migration tooling.
func Parse(encoded string) (HashInfo, error) {
	p, err := decodeHash(encoded)
	if err != nil {
		return HashInfo{}, err
	}
	return HashInfo{Identifier: HashIdentifier, Cost: p.cost, Salt: p.salt}, nil
}

// Cost returns the work factor stored in an encoded hash.
func Cost(encoded string) (int, error) {
	p, err := decodeHash(encoded)
	if err != nil {
		return 0, err
	}
	return p.cost, nil
}
