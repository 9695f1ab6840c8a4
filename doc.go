// Package fundflow computes money-weighted returns and related analytics
// for irregularly-dated cash flows.
//
// The core is the XIRR solver: it discounts a series of dated flows back to
// the earliest date (actual/365 day count, the Excel convention) and
// searches for the rate that zeroes the net present value, using a
// multi-start Newton-Halley iteration with closed-form first and second
// derivatives. Around it the package carries:
//   - Valuation: XNPV of a series at any rate.
//   - Portfolio helpers: the standard turnover ratio and month-end offset
//     lookups for quarter-based periods.
//   - Persistence: cash-flow series encoded as JSONL, one flow per line, in
//     a human-readable and git-friendly form, plus extraction from
//     arbitrary JSON exports via jsonpath expressions.
//
// This package is the foundational logic for the `ffw` command-line tool.
package fundflow
