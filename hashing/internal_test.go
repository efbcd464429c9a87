package hashing

import (
	"bytes"
	"testing"
	"time"
)

// TestSumsEqual_TimingIndependentOfMismatchPosition compares the fastest of
// many batches for a mismatch in the first byte against one in the last byte.
// A short-circuiting comparison would make the first case measurably faster.
func TestSumsEqual_TimingIndependentOfMismatchPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical timing test")
	}

	const (
		batches   = 40
		batchSize = 20000
		tolerance = 1.5
	)

	want := bytes.Repeat([]byte{0xa5}, sumLen)
	early := bytes.Clone(want)
	early[0] ^= 0xff
	late := bytes.Clone(want)
	late[sumLen-1] ^= 0xff

	fastest := func(candidate []byte) time.Duration {
		best := time.Duration(1<<63 - 1)
		for b := 0; b < batches; b++ {
			start := time.Now()
			for i := 0; i < batchSize; i++ {
				if sumsEqual(want, candidate) {
					t.Fatal("mismatching sums compared equal")
				}
			}
			if d := time.Since(start); d < best {
				best = d
			}
		}
		return best
	}

	// Warm up before measuring.
	fastest(late)

	e, l := fastest(early), fastest(late)
	ratio := float64(e) / float64(l)
	if ratio < 1/tolerance || ratio > tolerance {
		t.Errorf("first-byte mismatch %v vs last-byte mismatch %v (ratio %.2f)", e, l, ratio)
	}
}

func TestRadix64_Lengths(t *testing.T) {
	if got := len(radix64Encode(make([]byte, SaltLength))); got != encodedSaltLen {
		t.Errorf("salt encodes to %d chars, want %d", got, encodedSaltLen)
	}
	if got := len(radix64Encode(make([]byte, sumLen))); got != encodedSumLen {
		t.Errorf("hash encodes to %d chars, want %d", got, encodedSumLen)
	}
	if got := radix64Encode([]byte{0, 0, 0}); got != "...." {
		t.Errorf("zero bytes encode to %q, want ....", got)
	}
	if _, err := radix64Decode("....", 2); err == nil {
		t.Error("expected a length error")
	}
}

func TestBcryptSum_Length(t *testing.T) {
	sum, err := bcryptSum([]byte("x"), MinCost, make([]byte, SaltLength))
	if err != nil {
		t.Fatalf("bcryptSum: %v", err)
	}
	if len(sum) != len(magicCipherData) {
		t.Errorf("len = %d, want %d", len(sum), len(magicCipherData))
	}
}
