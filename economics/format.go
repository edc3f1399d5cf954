package economics

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/unionprotocol/unn-contract/contracts/token/tokenconst"
)

// TokenDecimals is a precision of UNN amounts.
const TokenDecimals = tokenconst.Decimals

// Format renders integer amount with the given number of decimals, trailing
// zeros are dropped.
func Format(amount *big.Int, decimals int32) string {
	return decimal.NewFromBigInt(amount, -decimals).String()
}

// Parse converts decimal string into integer amount with the given number of
// decimals. Digits beyond the precision are rejected.
func Parse(s string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	scaled := d.Shift(decimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, fmt.Errorf("amount %q has more than %d decimals", s, decimals)
	}

	return scaled.BigInt(), nil
}
