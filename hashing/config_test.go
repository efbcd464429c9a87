package hashing_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/hasbyte1/go-bcrypt/hashing"
)

func TestLoadBcryptOptions_Defaults(t *testing.T) {
	opts, err := hashing.LoadBcryptOptions(viper.New())
	if err != nil {
		t.Fatalf("LoadBcryptOptions: %v", err)
	}
	if opts != hashing.DefaultBcryptOptions() {
		t.Errorf("got %+v, want %+v", opts, hashing.DefaultBcryptOptions())
	}
}

func TestLoadBcryptOptions_YAML(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	yaml := "bcrypt:\n  cost: 12\n  long_passwords: truncate\n"
	if err := v.ReadConfig(strings.NewReader(yaml)); err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}

	opts, err := hashing.LoadBcryptOptions(v)
	if err != nil {
		t.Fatalf("LoadBcryptOptions: %v", err)
	}
	if opts.Cost != 12 {
		t.Errorf("Cost = %d, want 12", opts.Cost)
	}
	if opts.LongPasswords != hashing.TruncateLongPasswords {
		t.Errorf("LongPasswords = %v, want truncate", opts.LongPasswords)
	}
}

func TestLoadBcryptOptions_InvalidValues(t *testing.T) {
	cases := []struct {
		key   string
		value any
		want  error
	}{
		{"bcrypt.cost", 3, hashing.ErrInvalidCost},
		{"bcrypt.cost", 32, hashing.ErrInvalidCost},
		{"bcrypt.cost", "eleven", hashing.ErrInvalidOption},
		{"bcrypt.long_passwords", "clamp", hashing.ErrInvalidOption},
	}
	for _, tc := range cases {
		v := viper.New()
		v.Set(tc.key, tc.value)
		if _, err := hashing.LoadBcryptOptions(v); !errors.Is(err, tc.want) {
			t.Errorf("%s=%v: expected %v, got %v", tc.key, tc.value, tc.want, err)
		}
	}
}

func TestBcryptOptionsFromEnv(t *testing.T) {
	t.Setenv("HASHTEST_BCRYPT_COST", "11")
	t.Setenv("HASHTEST_BCRYPT_LONG_PASSWORDS", "truncate")

	opts, err := hashing.BcryptOptionsFromEnv("HASHTEST")
	if err != nil {
		t.Fatalf("BcryptOptionsFromEnv: %v", err)
	}
	if opts.Cost != 11 || opts.LongPasswords != hashing.TruncateLongPasswords {
		t.Errorf("got %+v, want cost 11 / truncate", opts)
	}

	h, err := hashing.NewBcryptHasher(opts)
	if err != nil {
		t.Fatalf("NewBcryptHasher: %v", err)
	}
	if h.Cost() != 11 {
		t.Errorf("hasher cost = %d, want 11", h.Cost())
	}
}

func TestBcryptOptionsFromEnv_Unset(t *testing.T) {
	opts, err := hashing.BcryptOptionsFromEnv("HASHTEST_UNSET")
	if err != nil {
		t.Fatalf("BcryptOptionsFromEnv: %v", err)
	}
	if opts.Cost != hashing.DefaultBcryptCost {
		t.Errorf("Cost = %d, want %d", opts.Cost, hashing.DefaultBcryptCost)
	}
}
