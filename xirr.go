package fundflow

import (
	"errors"
	"math"
)

// Rate is a per-year discount rate, as a fraction (0.10 is 10% per year).
type Rate float64

// Percent returns the rate as a Percent for display.
func (r Rate) Percent() Percent { return Percent(100 * r) }

// Errors returned by XIRR. They replace the not-a-number sentinel of
// spreadsheet implementations: XIRR always returns a (Rate, error) pair and
// never panics on documented input.
var (
	// ErrInsufficientData is returned when the series has fewer than two flows.
	ErrInsufficientData = errors.New("at least two cash flows are required")
	// ErrNoSignChange is returned when all non-zero amounts share one sign.
	ErrNoSignChange = errors.New("cash flows must contain at least one inflow and one outflow")
	// ErrNoConvergence is returned when no initial guess produced a root.
	ErrNoConvergence = errors.New("no rate found: all initial guesses failed to converge")
)

// errors internal to a single root-finding attempt. The driver treats every
// one of them as recoverable and moves on to the next guess.
var (
	errZeroDerivative = errors.New("zero derivative")
	errDomain         = errors.New("rate left the (-1, +inf) domain")
	errDiverged       = errors.New("iteration diverged")
	errIterationLimit = errors.New("iteration limit reached")
)

// guesses is the fixed starting-point schedule for the multi-start search,
// interleaving positive and negative rates of growing magnitude. The order
// matters: the first convergent guess wins, so the result is reproducible.
var guesses = []Rate{
	0.1, -0.1, 0.2, -0.2, 0.3, -0.3, 0.4, -0.4, 0.5, -0.5,
	0.6, -0.6, 0.7, -0.7, 0.8, -0.8, 0.9, -0.9,
}

// Newton-Halley iteration bounds, same as scipy.optimize.newton defaults.
const (
	maxIterations = 50
	stepTolerance = 1.48e-8
)

// XNPV returns the net present value of the series discounted at the given
// rate. Flows are sorted by date internally and discounted back to the
// earliest date with the actual/365 day count: each amount contributes
// a/(1+rate)^years. A single-flow series is returned undiscounted.
//
// Excel equivalent: XNPV.
func XNPV(rate Rate, s Series) float64 {
	return newSchedule(s).npv(float64(rate))
}

// XIRR returns the internal rate of return of the series: the rate at which
// XNPV is zero. It tries a fixed schedule of initial guesses in order,
// running a bounded Newton-Halley iteration from each, and returns the first
// root found. That "first convergent guess wins" policy matches the Excel
// XIRR convention; when the NPV curve has several real roots the result is
// the first one reached by the guess schedule, not a global pick.
//
// It fails fast with ErrInsufficientData or ErrNoSignChange without
// searching, and with ErrNoConvergence once every guess is exhausted.
// Failures of individual guesses are never surfaced.
func XIRR(s Series) (Rate, error) {
	if len(s) < 2 {
		return 0, ErrInsufficientData
	}
	if !s.HasSignChange() {
		return 0, ErrNoSignChange
	}

	sc := newSchedule(s)
	for _, guess := range guesses {
		root, err := sc.solve(float64(guess))
		if err != nil {
			continue
		}
		return Rate(root), nil
	}
	return 0, ErrNoConvergence
}

// npv is the valuation function f(r) = sum a_i * (1+r)^n_i with n_i the
// negated years elapsed since the anchor.
func (sc schedule) npv(rate float64) float64 {
	var res float64
	for i, years := range sc.years {
		res += sc.amounts[i] / math.Pow(1+rate, years)
	}
	return res
}

// deriv is the closed-form first derivative of npv with respect to rate:
// f'(r) = sum a_i * n_i * (1+r)^(n_i - 1).
func (sc schedule) deriv(rate float64) float64 {
	var res float64
	for i, years := range sc.years {
		n := -years
		res += sc.amounts[i] * n * math.Pow(1+rate, n-1)
	}
	return res
}

// deriv2 is the closed-form second derivative:
// f''(r) = sum a_i * n_i * (n_i - 1) * (1+r)^(n_i - 2).
func (sc schedule) deriv2(rate float64) float64 {
	var res float64
	for i, years := range sc.years {
		n := -years
		res += sc.amounts[i] * n * (n - 1) * math.Pow(1+rate, n-2)
	}
	return res
}

// solve runs one bounded Newton iteration with Halley's second-derivative
// refinement from the given starting rate. All failures are reported as
// errors for the driver to discard; none are fatal.
func (sc schedule) solve(guess float64) (float64, error) {
	x := guess
	for iter := 0; iter < maxIterations; iter++ {
		if x <= -1 {
			// (1+x)^n with fractional n is undefined for a negative base;
			// the real-arithmetic rendition of a complex intermediate.
			return 0, errDomain
		}
		f := sc.npv(x)
		fp := sc.deriv(x)
		if fp == 0 {
			return 0, errZeroDerivative
		}

		step := f / fp
		// Halley refinement: shrink the Newton step by the curvature term
		// when it keeps the step finite.
		if adj := step * sc.deriv2(x) / fp / 2; math.Abs(adj) < 1 {
			step /= 1 - adj
		}

		x1 := x - step
		if math.IsNaN(x1) || math.IsInf(x1, 0) {
			return 0, errDiverged
		}
		if math.Abs(x1-x) < stepTolerance {
			if x1 <= -1 {
				return 0, errDomain
			}
			return x1, nil
		}
		x = x1
	}
	return 0, errIterationLimit
}
