package hashing

import (
	"encoding/base64"
	"fmt"
)

// radix64Alphabet is bcrypt's base-64 alphabet.  It orders the symbols
// differently from RFC 4648, so standard Base64 output is not interchangeable.
const radix64Alphabet = "./ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var radix64 = base64.NewEncoding(radix64Alphabet).WithPadding(base64.NoPadding)

func radix64Encode(src []byte) string {
	return radix64.EncodeToString(src)
}

// radix64Decode decodes s and requires exactly n bytes of output.  The base64
// decoder skips '\r' and '\n', so the length check also rejects fields that
// smuggle line breaks.
func radix64Decode(s string, n int) ([]byte, error) {
	out, err := radix64.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(out) != n {
		return nil, fmt.Errorf("decoded %d bytes, want %d", len(out), n)
	}
	return out, nil
}
