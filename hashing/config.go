package hashing

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	configKeyCost          = "bcrypt.cost"
	configKeyLongPasswords = "bcrypt.long_passwords"
)

type bcryptConfig struct {
	Bcrypt struct {
		Cost          int    `mapstructure:"cost"`
		LongPasswords string `mapstructure:"long_passwords"`
	} `mapstructure:"bcrypt"`
}

// LoadBcryptOptions reads BcryptOptions from v:
//
//	bcrypt:
//	  cost: 12
//	  long_passwords: reject   # or truncate
//
// Missing keys fall back to [DefaultBcryptOptions]; the defaults are
// registered on v.  Out-of-range costs fail with [ErrInvalidCost] and unknown
// policies with [ErrInvalidOption].
func LoadBcryptOptions(v *viper.Viper) (BcryptOptions, error) {
	def := DefaultBcryptOptions()
	v.SetDefault(configKeyCost, def.Cost)
	v.SetDefault(configKeyLongPasswords, def.LongPasswords.String())

	var cfg bcryptConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return BcryptOptions{}, fmt.Errorf("%w: unmarshal bcrypt config: %v", ErrInvalidOption, err)
	}

	if err := ValidateCost(cfg.Bcrypt.Cost); err != nil {
		return BcryptOptions{}, err
	}
	policy, err := ParseLongPasswordPolicy(cfg.Bcrypt.LongPasswords)
	if err != nil {
		return BcryptOptions{}, err
	}

	return BcryptOptions{Cost: cfg.Bcrypt.Cost, LongPasswords: policy}, nil
}

// BcryptOptionsFromEnv loads BcryptOptions from environment variables named
// <PREFIX>_BCRYPT_COST and <PREFIX>_BCRYPT_LONG_PASSWORDS.
func BcryptOptionsFromEnv(prefix string) (BcryptOptions, error) {
	v := viper.New()
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return LoadBcryptOptions(v)
}
