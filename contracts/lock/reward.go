package lock

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/math"
	"github.com/unionprotocol/unn-contract/contracts/lock/lockconst"
)

func scale() int {
	return math.Pow(10, lockconst.ScaleDecimals)
}

// fpow raises fixed-point x to the power n by squaring. Intermediate
// products stay below s*s*(x/s)^n.
func fpow(x, n, s int) int {
	r := s
	for n > 0 {
		if n%2 == 1 {
			r = r * x / s
		}
		n /= 2
		if n > 0 {
			x = x * x / s
		}
	}

	return r
}

// dailyFactor returns fixed-point (1+yield)^(1/365) for the annual yield in
// basis points. Newton iterations start above the root and stop as soon as
// the estimate does not decrease, so the result is rounded up to the last
// step.
func dailyFactor(yieldBps int) int {
	var (
		s = scale()
		n = lockconst.CompoundingPeriods
		a = s + s*yieldBps/lockconst.BasisPoints
		x = s + (a-s)/n + 1
	)

	for {
		p := fpow(x, n-1, s)
		y := ((n-1)*x + a*s/p) / n
		if y >= x {
			return x
		}
		x = y
	}
}

// lockAmount returns principal compounded daily over the period with the
// given daily factor. Rounding happens once, on the final token amount.
func lockAmount(principal, days, factor int) int {
	s := scale()
	return principal * fpow(factor, days, s) / s
}
