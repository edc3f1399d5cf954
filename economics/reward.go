package economics

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/unionprotocol/unn-contract/contracts/lock/lockconst"
)

var (
	// ErrIllegalLockPeriod is returned for lock periods out of the allowed range.
	ErrIllegalLockPeriod = errors.New(lockconst.ErrIllegalLockPeriod)
	// ErrIllegalAmount is returned for principals above MaxPrincipal.
	ErrIllegalAmount = errors.New(lockconst.ErrIllegalAmount)
)

// MaxPrincipal is the largest principal rewards are calculated for.
var MaxPrincipal = pow10(lockconst.MaxPrincipalDecimals)

// Scale is a fixed-point unit of growth factors.
var Scale = pow10(lockconst.ScaleDecimals)

// Tier is an annual yield applied to locks of at least MinDays days.
type Tier struct {
	MinDays  int64 `yaml:"minDays" json:"minDays"`
	YieldBps int64 `yaml:"yieldBps" json:"yieldBps"`
}

// DefaultTiers returns yield tiers the lock contract is deployed with.
func DefaultTiers() []Tier {
	return []Tier{
		{MinDays: lockconst.ShortTermDays, YieldBps: lockconst.ShortTermYield},
		{MinDays: lockconst.MidTermDays, YieldBps: lockconst.MidTermYield},
		{MinDays: lockconst.LongTermDays, YieldBps: lockconst.LongTermYield},
	}
}

// TierFor returns the tier with the longest minimal period not exceeding
// days.
func TierFor(tiers []Tier, days int64) (Tier, bool) {
	var (
		best  Tier
		found bool
	)

	for _, t := range tiers {
		if t.MinDays <= days && (!found || t.MinDays > best.MinDays) {
			best, found = t, true
		}
	}

	return best, found
}

// DailyFactor returns fixed-point (1 + yieldBps/10000)^(1/365) rounded up
// to the last Newton step.
func DailyFactor(yieldBps int64) *big.Int {
	var (
		n  = big.NewInt(lockconst.CompoundingPeriods)
		n1 = big.NewInt(lockconst.CompoundingPeriods - 1)
		a  = new(big.Int).Mul(Scale, big.NewInt(yieldBps))
	)

	a.Quo(a, big.NewInt(lockconst.BasisPoints))
	a.Add(a, Scale)

	x := new(big.Int).Sub(a, Scale)
	x.Quo(x, n)
	x.Add(x, Scale)
	x.Add(x, big.NewInt(1))

	as := new(big.Int).Mul(a, Scale)
	for {
		p := fpow(x, lockconst.CompoundingPeriods-1)

		y := new(big.Int).Mul(n1, x)
		y.Add(y, new(big.Int).Quo(as, p))
		y.Quo(y, n)

		if y.Cmp(x) >= 0 {
			return x
		}
		x = y
	}
}

func fpow(x *big.Int, n int64) *big.Int {
	var (
		r = new(big.Int).Set(Scale)
		b = new(big.Int).Set(x)
	)

	for n > 0 {
		if n%2 == 1 {
			r.Mul(r, b)
			r.Quo(r, Scale)
		}
		n /= 2
		if n > 0 {
			b.Mul(b, b)
			b.Quo(b, Scale)
		}
	}

	return r
}

// LockAmount returns principal compounded daily over days with the yield of
// the matching tier. Principal is returned unchanged if no tier matches.
func LockAmount(tiers []Tier, principal *big.Int, days int64) (*big.Int, error) {
	if days < lockconst.MinLockDays || days > lockconst.MaxLockDays {
		return nil, fmt.Errorf("%w: %d", ErrIllegalLockPeriod, days)
	}
	if principal.Cmp(MaxPrincipal) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrIllegalAmount, principal)
	}

	res := new(big.Int).Set(principal)
	if principal.Sign() <= 0 {
		return res, nil
	}

	t, ok := TierFor(tiers, days)
	if !ok {
		return res, nil
	}

	res.Mul(res, fpow(DailyFactor(t.YieldBps), days))
	return res.Quo(res, Scale), nil
}

// Reward returns LockAmount minus principal.
func Reward(tiers []Tier, principal *big.Int, days int64) (*big.Int, error) {
	total, err := LockAmount(tiers, principal, days)
	if err != nil {
		return nil, err
	}

	return total.Sub(total, principal), nil
}
