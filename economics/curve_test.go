package economics

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func bigInt(t *testing.T, s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, s)
	return v
}

func TestDefaultCurve(t *testing.T) {
	c := DefaultCurve()

	require.Equal(t, "9300000186", c.Slope.String())
	require.Equal(t, "8800000186000000000", c.Intercept.String())

	nc, err := NewCurve(c.First, c.Last, big.NewInt(35e15), big.NewInt(5e17))
	require.NoError(t, err)
	require.Equal(t, c, nc)

	_, err = NewCurve(10, 10, big.NewInt(1), big.NewInt(2))
	require.Error(t, err)
	_, err = NewCurve(1, 10, big.NewInt(2), big.NewInt(2))
	require.Error(t, err)
}

func TestPrice(t *testing.T) {
	c := DefaultCurve()

	p, err := c.Price(c.First)
	require.NoError(t, err)
	require.Equal(t, "35000000000000186", p.String())

	p, err = c.Price(c.Last)
	require.NoError(t, err)
	require.Equal(t, "500000000000000000", p.String())

	_, err = c.Price(c.First - 1)
	require.ErrorIs(t, err, ErrOutOfSaleBounds)
	_, err = c.Price(c.Last + 1)
	require.ErrorIs(t, err, ErrOutOfSaleBounds)
}

func TestCost(t *testing.T) {
	c := DefaultCurve()

	testCases := []struct {
		cursor, qty int64
		cost        string
	}{
		{c.First, 1, "35000000000000186"},
		{c.First, 10, "350000418500010230"},
		{c.First, 100, "3500046035000939300"},
		{c.First + 10, 5, "175000558000012090"},
		{c.Last, 1, "500000000000000000"},
		{c.First, 50_000_000, "13375000000000004650000000"},
	}

	for _, tc := range testCases {
		cost, err := c.Cost(tc.cursor, tc.qty)
		require.NoError(t, err)
		require.Equal(t, tc.cost, cost.String(), "%d tokens from %d", tc.qty, tc.cursor)
	}

	t.Run("sum of prices", func(t *testing.T) {
		sum := new(big.Int)
		for n := c.First + 7; n < c.First+7+25; n++ {
			p, err := c.Price(n)
			require.NoError(t, err)
			sum.Add(sum, p)
		}

		cost, err := c.Cost(c.First+7, 25)
		require.NoError(t, err)
		require.Equal(t, sum, cost)
	})

	_, err := c.Cost(c.First, 0)
	require.ErrorIs(t, err, ErrBelowMinimumPurchase)
	_, err = c.Cost(c.Last, 2)
	require.ErrorIs(t, err, ErrAboveMaximumPurchase)
}

func TestTokensFor(t *testing.T) {
	c := DefaultCurve()

	require.EqualValues(t, 0, c.TokensFor(c.First, big.NewInt(0)))
	require.EqualValues(t, 0, c.TokensFor(c.First, big.NewInt(-1)))
	require.EqualValues(t, 0, c.TokensFor(c.Last+1, bigInt(t, "1000000000000000000000")))

	require.EqualValues(t, 10, c.TokensFor(c.First, bigInt(t, "350000418500010230")))
	require.EqualValues(t, 9, c.TokensFor(c.First, bigInt(t, "350000418500010229")))
	require.EqualValues(t, 28, c.TokensFor(c.First, bigInt(t, "1000000000000000000")))

	require.EqualValues(t, 1, c.TokensFor(c.Last, bigInt(t, "1000000000000000000000000000000")))
	require.EqualValues(t, 11, c.TokensFor(c.Last-10, bigInt(t, "1000000000000000000000000000000")))

	t.Run("inverse of cost", func(t *testing.T) {
		for _, cursor := range []int64{c.First, c.First + 12345, 975_000_000, c.Last - 1000} {
			for _, qty := range []int64{1, 2, 17, 999} {
				cost, err := c.Cost(cursor, qty)
				require.NoError(t, err)

				require.Equal(t, qty, c.TokensFor(cursor, cost))
				require.Equal(t, qty-1, c.TokensFor(cursor, cost.Sub(cost, big.NewInt(1))))
			}
		}
	})
}

func TestRescale(t *testing.T) {
	usd := bigInt(t, "350000418500010230")

	testCases := []struct {
		decimals int
		result   string
	}{
		{0, "0"},
		{6, "350000"},
		{8, "35000041"},
		{18, "350000418500010230"},
		{20, "35000041850001023000"},
	}

	for _, tc := range testCases {
		res, err := Rescale(usd, tc.decimals)
		require.NoError(t, err)
		require.Equal(t, tc.result, res.String())
	}

	require.Equal(t, "350000418500010230", usd.String())

	_, err := Rescale(usd, 37)
	require.ErrorIs(t, err, ErrIllegalDecimals)
	_, err = Rescale(usd, -1)
	require.ErrorIs(t, err, ErrIllegalDecimals)
}
