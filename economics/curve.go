package economics

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/unionprotocol/unn-contract/contracts/sale/saleconst"
)

var (
	// ErrOutOfSaleBounds is returned for serial numbers outside of the curve.
	ErrOutOfSaleBounds = errors.New(saleconst.ErrOutOfSaleBounds)
	// ErrBelowMinimumPurchase is returned for quantities less than one.
	ErrBelowMinimumPurchase = errors.New(saleconst.ErrBelowMinimumPurchase)
	// ErrAboveMaximumPurchase is returned when quantity exceeds the tokens
	// left on the curve.
	ErrAboveMaximumPurchase = errors.New(saleconst.ErrAboveMaximumPurchase)
	// ErrIllegalDecimals is returned for unsupported stablecoin precision.
	ErrIllegalDecimals = errors.New(saleconst.ErrIllegalDecimals)
)

// Curve is a linear bonding curve: price of the token with serial number n
// is Slope*n - Intercept for n in [First, Last].
type Curve struct {
	First     int64
	Last      int64
	Slope     *big.Int
	Intercept *big.Int
}

// DefaultCurve returns the curve the sale contract is calibrated with.
func DefaultCurve() Curve {
	return Curve{
		First:     saleconst.FirstTokenNumber,
		Last:      saleconst.LastTokenNumber,
		Slope:     big.NewInt(saleconst.Slope),
		Intercept: big.NewInt(saleconst.Intercept),
	}
}

// NewCurve calibrates curve passing through start price at first and end
// price at last serial numbers. Slope is rounded down, so the end price is
// exact and the start price may be slightly higher than requested.
func NewCurve(first, last int64, start, end *big.Int) (Curve, error) {
	if first >= last {
		return Curve{}, fmt.Errorf("invalid serial range [%d, %d]", first, last)
	}
	if start.Sign() <= 0 || end.Cmp(start) <= 0 {
		return Curve{}, fmt.Errorf("invalid price range [%s, %s]", start, end)
	}

	slope := new(big.Int).Sub(end, start)
	slope.Quo(slope, big.NewInt(last-first))

	intercept := new(big.Int).Mul(slope, big.NewInt(last))
	intercept.Sub(intercept, end)

	return Curve{
		First:     first,
		Last:      last,
		Slope:     slope,
		Intercept: intercept,
	}, nil
}

// Left returns the number of tokens that can be sold starting from cursor.
func (c Curve) Left(cursor int64) int64 {
	if cursor > c.Last {
		return 0
	}
	return c.Last - cursor + 1
}

// Price returns price of the token with serial number n.
func (c Curve) Price(n int64) (*big.Int, error) {
	if n < c.First || n > c.Last {
		return nil, fmt.Errorf("%w: %d", ErrOutOfSaleBounds, n)
	}

	p := new(big.Int).Mul(c.Slope, big.NewInt(n))
	return p.Sub(p, c.Intercept), nil
}

// Cost returns the sum of prices of qty tokens starting from cursor.
func (c Curve) Cost(cursor, qty int64) (*big.Int, error) {
	if qty < 1 {
		return nil, ErrBelowMinimumPurchase
	}
	if cursor < c.First || cursor+qty-1 > c.Last {
		return nil, fmt.Errorf("%w: %d tokens from %d", ErrAboveMaximumPurchase, qty, cursor)
	}

	q := big.NewInt(qty)

	// qty*cursor + qty*(qty-1)/2
	sum := new(big.Int).Mul(q, big.NewInt(cursor))
	tri := new(big.Int).Mul(q, big.NewInt(qty-1))
	sum.Add(sum, tri.Rsh(tri, 1))

	res := sum.Mul(sum, c.Slope)
	return res.Sub(res, new(big.Int).Mul(c.Intercept, q)), nil
}

// TokensFor returns the largest quantity of tokens starting from cursor
// whose cost does not exceed usd. The result is capped by the tokens left.
func (c Curve) TokensFor(cursor int64, usd *big.Int) int64 {
	left := c.Left(cursor)
	if usd.Sign() <= 0 || left <= 0 {
		return 0
	}

	var (
		n  = big.NewInt(cursor)
		s  = c.Slope
		cc = new(big.Int).Lsh(c.Intercept, 1)
		b  = new(big.Int).Lsh(s, 1)
		d  = new(big.Int)
		t  = new(big.Int)
	)
	cc.Add(cc, s)

	// 4s²n² - 4s·C·n + C² + 8s·usd
	t.Mul(s, n)
	d.Mul(t, t)
	d.Lsh(d, 2)
	d.Sub(d, t.Lsh(t.Mul(t, cc), 2))
	d.Add(d, t.Mul(cc, cc))
	d.Add(d, t.Lsh(t.Mul(s, usd), 3))

	qty := new(big.Int).Sqrt(d)
	qty.Sub(qty, t.Mul(b, n))
	qty.Add(qty, cc)
	qty.Quo(qty, b)

	if !qty.IsInt64() || qty.Int64() > left {
		return left
	}

	return qty.Int64()
}

// Rescale converts USD amount with 18 decimals into the amount of
// stablecoin with the given precision. Extra digits are truncated.
func Rescale(amount *big.Int, decimals int) (*big.Int, error) {
	if decimals < 0 || decimals > saleconst.MaxStablecoinDecimals {
		return nil, fmt.Errorf("%w: %d", ErrIllegalDecimals, decimals)
	}

	res := new(big.Int).Set(amount)
	switch {
	case decimals < saleconst.USDDecimals:
		return res.Quo(res, pow10(saleconst.USDDecimals-decimals)), nil
	case decimals > saleconst.USDDecimals:
		return res.Mul(res, pow10(decimals-saleconst.USDDecimals)), nil
	default:
		return res, nil
	}
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
