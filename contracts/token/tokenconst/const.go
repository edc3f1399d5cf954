// Package tokenconst contains constants shared between UNN token contract
// and its off-chain clients.
package tokenconst

const (
	// Symbol is a ticker of the governance token.
	Symbol = "UNN"
	// Decimals is a precision of token amounts.
	Decimals = 18
	// Unit is an amount of the smallest fractions in one whole token.
	Unit = 1_000_000_000_000_000_000
)

// Error messages thrown (or logged in legacy mode) by the token contract.
const (
	ErrNegativeAmount        = "negative amount"
	ErrInsufficientSpendable = "insufficient spendable balance"
	ErrAllowanceExceeded     = "allowance exceeded"
	ErrAllowanceUnderflow    = "allowance underflow"
	ErrTransfersDisabled     = "transfers are disabled"
	ErrReservedSpender       = "reserved spender address"
	ErrReleaseTimeInPast     = "release time must be in the future"
	ErrInvalidDeployData     = "invalid deploy data"
)
