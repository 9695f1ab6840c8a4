package fundflow

// IRRReport contains the result of a money-weighted return calculation over
// a cash-flow series, ready for rendering.
type IRRReport struct {
	// Flows is the analyzed series, sorted by date.
	Flows Series
	// Currency is the series currency, if any flow carries one.
	Currency string
	// Total is the undiscounted sum of all flows.
	Total Money
	// Rate is the solved internal rate of return. Only meaningful when Err
	// is nil.
	Rate Rate
	// Residual is the net present value at Rate, the solver's leftover. It
	// should be numerically close to zero.
	Residual float64
	// Err is the failure reported by the solver, nil on success.
	Err error
}

// NewIRRReport solves the series and assembles the report. The solver's
// failure, if any, is carried in the report rather than returned: a report
// of an unsolvable series is still renderable.
func NewIRRReport(s Series) *IRRReport {
	report := &IRRReport{
		Flows:    s.Sorted(),
		Currency: s.Currency(),
		Total:    s.Total(),
	}
	rate, err := XIRR(s)
	if err != nil {
		report.Err = err
		return report
	}
	report.Rate = rate
	report.Residual = XNPV(rate, s)
	return report
}
