package sale

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/math"
	"github.com/unionprotocol/unn-contract/contracts/sale/saleconst"
)

// tokenPrice returns price of the token with serial number n.
func tokenPrice(n int) int {
	if n < saleconst.FirstTokenNumber || n > saleconst.LastTokenNumber {
		panic(saleconst.ErrOutOfSaleBounds)
	}

	return saleconst.Slope*n - saleconst.Intercept
}

// buyPrice returns the sum of prices of qty tokens starting from serial
// number cursor.
func buyPrice(cursor, qty int) int {
	if qty < 1 {
		panic(saleconst.ErrBelowMinimumPurchase)
	}
	if cursor+qty-1 > saleconst.LastTokenNumber {
		panic(saleconst.ErrAboveMaximumPurchase)
	}

	return saleconst.Slope*(qty*cursor+qty*(qty-1)/2) - saleconst.Intercept*qty
}

// tokensForContribution returns the largest quantity of tokens starting from
// cursor whose buy price does not exceed usd. It solves
//
//	s*q^2/2 + (s*c - s/2 - K)*q - usd = 0
//
// for q with integer square root, s and K are curve slope and intercept.
// The result is capped by the amount of tokens left.
func tokensForContribution(cursor, usd int) int {
	left := saleconst.LastTokenNumber - cursor + 1
	if usd <= 0 || left <= 0 {
		return 0
	}

	// Operands are variables: 2*Intercept does not fit int as a constant
	// expression, VM integers hold it.
	var (
		s = saleconst.Slope
		k = saleconst.Intercept
		c = s + 2*k
		b = 2 * s

		d = 4*s*s*cursor*cursor - 4*s*c*cursor + c*c + 8*s*usd
	)

	qty := (math.Sqrt(d) - b*cursor + c) / b
	if qty > left {
		qty = left
	}

	return qty
}

// rescale converts amount with 18 decimals into amount with given decimals.
// Extra digits are truncated.
func rescale(amount, decimals int) int {
	switch {
	case decimals < saleconst.USDDecimals:
		return amount / math.Pow(10, saleconst.USDDecimals-decimals)
	case decimals > saleconst.USDDecimals:
		return amount * math.Pow(10, decimals-saleconst.USDDecimals)
	default:
		return amount
	}
}
