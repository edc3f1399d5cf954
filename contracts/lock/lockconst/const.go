// Package lockconst contains constants of the voluntary lock contract.
package lockconst

const (
	// Name is returned by the contract name method.
	Name = "Voluntary Lock Contract"

	// CompoundingPeriods is the number of reward compounding periods (days)
	// in a year.
	CompoundingPeriods = 365

	// ScaleDecimals is a precision of fixed-point growth factors.
	ScaleDecimals = 36

	// BasisPoints is the denominator of annual yields.
	BasisPoints = 10_000

	MinLockDays = 1
	MaxLockDays = 3650

	// MaxYieldBps keeps (1+yield)^(MaxLockDays/365) well below 2^255/10^72,
	// the largest growth fixed-point factors can be multiplied at.
	MaxYieldBps = 15_000

	// MaxPrincipalDecimals bounds principal of reward calculations by
	// 10^MaxPrincipalDecimals.
	MaxPrincipalDecimals = 36
)

// Default yield tiers: minimal lock period in days and annual yield in basis
// points. Shorter locks get no reward.
const (
	ShortTermDays  = 30
	ShortTermYield = 2500
	MidTermDays    = 60
	MidTermYield   = 3000
	LongTermDays   = 120
	LongTermYield  = 4000
)

// Error messages thrown by the lock contract.
const (
	ErrIllegalLockPeriod   = "illegal lock period value"
	ErrIllegalAmount       = "amount must be positive"
	ErrIllegalYield        = "illegal yield value"
	ErrUnknownTier         = "unknown yield tier"
	ErrTokenTransferFailed = "token transfer failed"
	ErrInvalidDeployData   = "invalid deploy data"
)
