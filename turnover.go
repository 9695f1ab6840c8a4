package fundflow

import (
	"errors"

	"github.com/davrieb/fundflow/date"
)

// ErrUndefinedTurnover is returned when the portfolio value is not strictly
// positive: the ratio has no meaning then.
var ErrUndefinedTurnover = errors.New("turnover is undefined for a non-positive portfolio value")

// Turnover returns the standard turnover ratio of a portfolio over a period:
// the lesser of the total purchases and total sales, divided by the
// portfolio value. Only strictly positive sides count; with a single active
// side the ratio uses that side, and with none it is zero.
//
// purchases and sales are period totals aggregated by the caller, both
// expressed as positive amounts.
func Turnover(purchases, sales, portfolioValue Money) (Percent, error) {
	if !portfolioValue.IsPositive() {
		return 0, ErrUndefinedTurnover
	}

	var traded Money
	switch {
	case purchases.IsPositive() && sales.IsPositive():
		traded = purchases
		if sales.LessThan(purchases) {
			traded = sales
		}
	case purchases.IsPositive():
		traded = purchases
	case sales.IsPositive():
		traded = sales
	default:
		return 0, nil
	}

	ratio := traded.Decimal().Div(portfolioValue.Decimal())
	return Percent(100 * ratio.InexactFloat64()), nil
}

// LookBackQuarterDate returns the month-end date the given number of months
// before (negative) or after (positive) the reference date. Portfolio
// period logic uses it with multiples of three to step between quarter
// ends.
func LookBackQuarterDate(on date.Date, months int) date.Date {
	return on.MonthEnd(months)
}
