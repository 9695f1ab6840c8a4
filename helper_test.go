package fundflow

import "github.com/davrieb/fundflow/date"

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// on is a helper for test to build a date from its ISO string.
func on(str string) date.Date { return date.MustParse(str) }

// flow is a helper for test to build a usd cash flow from its ISO date string.
func flow(str string, amount float64) CashFlow {
	return NewCashFlow(on(str), USD(amount))
}
