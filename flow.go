package fundflow

import (
	"fmt"
	"sort"

	"github.com/davrieb/fundflow/date"
)

// CashFlow is a single dated money movement. Inflows (returns, proceeds)
// are positive, outflows (investments) are negative.
type CashFlow struct {
	On     date.Date
	Amount Money
}

// NewCashFlow returns a cash flow of the given amount on the given date.
func NewCashFlow(on date.Date, amount Money) CashFlow {
	return CashFlow{On: on, Amount: amount}
}

func (c CashFlow) String() string {
	return fmt.Sprintf("%s %s", c.On, c.Amount.SignedString())
}

// Series is a list of cash flows, in no particular order.
type Series []CashFlow

// Sorted returns a copy of the series ordered by date ascending. The sort is
// stable: same-day flows keep their relative order, which never affects a
// valuation since they share the same discount exponent.
func (s Series) Sorted() Series {
	out := make(Series, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool { return out[i].On.Before(out[j].On) })
	return out
}

// HasSignChange reports whether the series contains at least one strictly
// positive and one strictly negative amount. Zero amounts are ignored.
// Without a sign change no finite internal rate of return is guaranteed to
// exist.
func (s Series) HasSignChange() bool {
	var pos, neg bool
	for _, cf := range s {
		if cf.Amount.IsPositive() {
			pos = true
		}
		if cf.Amount.IsNegative() {
			neg = true
		}
	}
	return pos && neg
}

// Currency returns the first non-empty currency found in the series.
func (s Series) Currency() string {
	for _, cf := range s {
		if c := cf.Amount.Currency(); c != "" {
			return c
		}
	}
	return ""
}

// Total returns the undiscounted sum of all amounts.
func (s Series) Total() Money {
	var total Money
	for _, cf := range s {
		total = total.Add(cf.Amount)
	}
	return total
}

// daysPerYear is the fixed actual/365 day count used throughout: calendar
// days elapsed, annualized over 365 regardless of leap years. This matches
// the Excel XIRR convention.
const daysPerYear = 365.0

// schedule is the solver's prepared form of a series: flows sorted by date,
// anchored at the earliest date, and reduced to (years elapsed, amount)
// pairs. Valuation and both derivatives evaluate off the same schedule so
// they always agree on the anchor.
type schedule struct {
	years   []float64
	amounts []float64
}

// newSchedule sorts the series and discounts every flow back to the
// earliest date.
func newSchedule(s Series) schedule {
	sorted := s.Sorted()
	sc := schedule{
		years:   make([]float64, len(sorted)),
		amounts: make([]float64, len(sorted)),
	}
	if len(sorted) == 0 {
		return sc
	}
	t0 := sorted[0].On
	for i, cf := range sorted {
		sc.years[i] = float64(cf.On.Sub(t0)) / daysPerYear
		sc.amounts[i] = cf.Amount.AsFloat()
	}
	return sc
}
