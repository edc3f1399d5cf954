// Package saleconst contains calibration of UNN bonding curve and other
// constants shared between the sale contract and off-chain tools.
package saleconst

// Bonding curve calibration. Serial numbers of sellable tokens run over
// [FirstTokenNumber, LastTokenNumber], unit price grows linearly from
// StartPrice to EndPrice (both in 10^-18 USD).
const (
	FirstTokenNumber = 950_000_001
	LastTokenNumber  = 1_000_000_000

	StartPrice = 35_000_000_000_000_000
	EndPrice   = 500_000_000_000_000_000

	// Slope is a price increment between two consecutive serial numbers.
	Slope = (EndPrice - StartPrice) / (LastTokenNumber - FirstTokenNumber)
	// Intercept is such that price(n) = Slope*n - Intercept and
	// price(LastTokenNumber) = EndPrice.
	Intercept = Slope*LastTokenNumber - EndPrice

	// USDDecimals is a precision of USD amounts used by the curve.
	USDDecimals = 18
)

// Bonus configuration bounds and defaults.
const (
	DefaultBonusFactor = 20
	MinBonusFactor     = 1
	MaxBonusFactor     = 500

	DefaultBonusLockMonths = 12
	MinBonusLockMonths     = 1
	MaxBonusLockMonths     = 60

	MaxStablecoinDecimals = 36
)

// Names of the wallets the sale works with.
const (
	PoolPrecheckContribution = "preCheckContribution"
	PoolSaleContribution     = "saleContribution"
	PoolSeed                 = "seed"
	PoolPrivateRound1        = "privateRound1"
	PoolPrivateRound2        = "privateRound2"
	PoolPublicSale           = "publicSale"
	PoolPublicSaleBonus      = "publicSaleBonus"
	PoolPartners             = "ecosystemPartnersTeam"
	PoolMining               = "miningIncentives"
	PoolLiquidity            = "marketLiquidity"
	PoolReserve              = "supplyReserve"
)

// Shares of generated supply in percent. Rounding residue goes to the
// reserve pool.
const (
	ShareSeed            = 10
	SharePrivateRound1   = 20
	SharePrivateRound2   = 5
	SharePublicSale      = 5
	SharePublicSaleBonus = 0
	SharePartners        = 10
	ShareMining          = 15
	ShareLiquidity       = 10
	ShareReserve         = 25
)

// Error messages thrown by the sale contract.
const (
	ErrOutOfSaleBounds             = "token number out of sale bounds"
	ErrBelowMinimumPurchase        = "purchase below minimum"
	ErrAboveMaximumPurchase        = "purchase above maximum"
	ErrAlreadyGenerated            = "token generation already performed"
	ErrNotGenerated                = "token generation not performed"
	ErrAlreadyAllocated            = "allocation already performed"
	ErrNotAllocated                = "allocation not performed"
	ErrSaleNotOpen                 = "sale is not open"
	ErrSaleAlreadyOpen             = "sale is already open"
	ErrTokenAlreadySupported       = "token already supported"
	ErrUnsupportedToken            = "unsupported token"
	ErrIllegalDecimals             = "illegal decimals value"
	ErrNotPermitted                = "buyer is not permitted"
	ErrExceedsPermittedAllowance   = "purchase exceeds permitted allowance"
	ErrIllegalBonusFactor          = "illegal bonus token factor value"
	ErrIllegalLockPeriod           = "illegal lock period value"
	ErrIllegalAllowance            = "illegal permitted allowance"
	ErrUnknownPool                 = "unknown pool"
	ErrPaymentFailed               = "stablecoin payment failed"
	ErrTokenTransferFailed         = "token transfer failed"
	ErrInvalidDeployData           = "invalid deploy data"
	ErrOnlyGovernanceTokenAccepted = "only UNN tokens are accepted"
)
