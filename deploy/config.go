package deploy

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/unionprotocol/unn-contract/contracts/lock/lockconst"
	"github.com/unionprotocol/unn-contract/contracts/sale/saleconst"
	"github.com/unionprotocol/unn-contract/economics"
	"gopkg.in/yaml.v3"
)

// ErrMissingAddress is returned when a required wallet address is absent in
// the deployment config.
var ErrMissingAddress = errors.New("missing address")

// Pools lists names of the sale wallets in the order the sale contract
// expects them in its deploy data.
var Pools = []string{
	saleconst.PoolPrecheckContribution,
	saleconst.PoolSaleContribution,
	saleconst.PoolSeed,
	saleconst.PoolPrivateRound1,
	saleconst.PoolPrivateRound2,
	saleconst.PoolPublicSale,
	saleconst.PoolPublicSaleBonus,
	saleconst.PoolPartners,
	saleconst.PoolMining,
	saleconst.PoolLiquidity,
	saleconst.PoolReserve,
}

// StablecoinConfig describes a payment token registered in the sale.
type StablecoinConfig struct {
	Symbol   string `yaml:"symbol"`
	Address  string `yaml:"address"`
	Decimals int    `yaml:"decimals"`
}

// Config is a YAML deployment document. Token amounts are decimal strings of
// whole UNN (fractions allowed up to 18 digits), addresses are Neo addresses.
type Config struct {
	Owner        string            `yaml:"owner"`
	TotalSupply  string            `yaml:"total_supply"`
	Pools        map[string]string `yaml:"pools"`
	RewardWallet string            `yaml:"reward_wallet"`

	// BonusFunding is moved from the supply reserve to the public sale bonus
	// pool, RewardFunding from the reserve to the reward wallet.
	BonusFunding  string `yaml:"bonus_funding"`
	RewardFunding string `yaml:"reward_funding"`

	Stablecoins []StablecoinConfig `yaml:"stablecoins"`
	// YieldTiers replace default tiers of the lock contract when set.
	YieldTiers []economics.Tier `yaml:"yield_tiers"`

	AllowList string `yaml:"allow_list"`
	// DefaultAllowance is a purchase limit in whole tokens for allow-list
	// entries without their own.
	DefaultAllowance int64 `yaml:"default_allowance"`

	StartSale bool `yaml:"start_sale"`
}

// Stablecoin is a resolved StablecoinConfig.
type Stablecoin struct {
	Symbol   string
	Hash     util.Uint160
	Decimals int
}

// Settings is a validated Config with decoded addresses and amounts.
type Settings struct {
	Owner        util.Uint160
	TotalSupply  *big.Int
	Pools        map[string]util.Uint160
	RewardWallet util.Uint160

	BonusFunding  *big.Int
	RewardFunding *big.Int

	Stablecoins []Stablecoin
	YieldTiers  []economics.Tier

	DefaultAllowance int64
	StartSale        bool
}

// LoadConfig reads YAML deployment config from the file. Unknown fields are
// rejected.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	return DecodeConfig(f)
}

// DecodeConfig reads YAML deployment config from r.
func DecodeConfig(r io.Reader) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	err := dec.Decode(&cfg)
	if err != nil {
		return nil, fmt.Errorf("decode YAML config: %w", err)
	}

	return &cfg, nil
}

// Settings validates the config and converts it into deployment settings.
func (c *Config) Settings() (*Settings, error) {
	var (
		res Settings
		err error
	)

	res.Owner, err = decodeAddress("owner", c.Owner)
	if err != nil {
		return nil, err
	}

	res.TotalSupply, err = decodeAmount("total supply", c.TotalSupply)
	if err != nil {
		return nil, err
	}
	if res.TotalSupply.Sign() <= 0 {
		return nil, errors.New("total supply must be positive")
	}

	res.Pools = make(map[string]util.Uint160, len(Pools))
	for _, name := range Pools {
		res.Pools[name], err = decodeAddress("pool "+name, c.Pools[name])
		if err != nil {
			return nil, err
		}
	}
	for name := range c.Pools {
		if _, ok := res.Pools[name]; !ok {
			return nil, fmt.Errorf("unknown pool %q", name)
		}
	}

	res.RewardWallet, err = decodeAddress("reward wallet", c.RewardWallet)
	if err != nil {
		return nil, err
	}

	res.BonusFunding, err = decodeOptionalAmount("bonus funding", c.BonusFunding)
	if err != nil {
		return nil, err
	}

	res.RewardFunding, err = decodeOptionalAmount("reward funding", c.RewardFunding)
	if err != nil {
		return nil, err
	}

	symbols := make(map[string]struct{}, len(c.Stablecoins))
	for _, s := range c.Stablecoins {
		if s.Symbol == "" {
			return nil, errors.New("stablecoin without symbol")
		}
		if _, ok := symbols[s.Symbol]; ok {
			return nil, fmt.Errorf("duplicated stablecoin %s", s.Symbol)
		}
		symbols[s.Symbol] = struct{}{}

		if s.Decimals < 0 || s.Decimals > saleconst.MaxStablecoinDecimals {
			return nil, fmt.Errorf("stablecoin %s: %w", s.Symbol, economics.ErrIllegalDecimals)
		}

		h, err := decodeAddress("stablecoin "+s.Symbol, s.Address)
		if err != nil {
			return nil, err
		}

		res.Stablecoins = append(res.Stablecoins, Stablecoin{Symbol: s.Symbol, Hash: h, Decimals: s.Decimals})
	}

	for _, t := range c.YieldTiers {
		if t.MinDays < lockconst.MinLockDays || t.MinDays > lockconst.MaxLockDays ||
			t.YieldBps < 1 || t.YieldBps > lockconst.MaxYieldBps {
			return nil, fmt.Errorf("invalid yield tier %+v", t)
		}
	}
	res.YieldTiers = c.YieldTiers

	if c.DefaultAllowance < 0 {
		return nil, errors.New("negative default allowance")
	}
	res.DefaultAllowance = c.DefaultAllowance
	res.StartSale = c.StartSale

	return &res, nil
}

func decodeAddress(name, s string) (util.Uint160, error) {
	if s == "" {
		return util.Uint160{}, fmt.Errorf("%s: %w", name, ErrMissingAddress)
	}

	h, err := address.StringToUint160(s)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("%s: decode address %q: %w", name, s, err)
	}

	return h, nil
}

func decodeAmount(name, s string) (*big.Int, error) {
	v, err := economics.Parse(s, economics.TokenDecimals)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return v, nil
}

func decodeOptionalAmount(name, s string) (*big.Int, error) {
	if s == "" {
		return new(big.Int), nil
	}

	v, err := decodeAmount(name, s)
	if err != nil {
		return nil, err
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("%s: negative amount", name)
	}

	return v, nil
}
