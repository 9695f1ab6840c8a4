package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/davrieb/fundflow"
	"github.com/davrieb/fundflow/renderer"
	"github.com/google/subcommands"
)

// irrCmd holds the flags for the 'irr' subcommand.
type irrCmd struct {
	file        string
	jsonDates   string
	jsonAmounts string
	currency    string
}

func (*irrCmd) Name() string     { return "irr" }
func (*irrCmd) Synopsis() string { return "money-weighted annualized return of a cash-flow series" }
func (*irrCmd) Usage() string {
	return `ffw irr [-f <file>] [-json-dates <path> -json-amounts <path>] [-c <currency>]

  Computes the internal rate of return of dated cash flows (Excel XIRR).
`
}

func (c *irrCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Flows file to analyze. Defaults to the app flows file.")
	f.StringVar(&c.jsonDates, "json-dates", "", "jsonpath expression selecting the dates in an arbitrary JSON file")
	f.StringVar(&c.jsonAmounts, "json-amounts", "", "jsonpath expression selecting the amounts in an arbitrary JSON file")
	f.StringVar(&c.currency, "c", "", "Currency of extracted amounts (jsonpath mode only)")
}

func (c *irrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (c.jsonDates == "") != (c.jsonAmounts == "") {
		fmt.Fprintln(os.Stderr, "-json-dates and -json-amounts must be used together")
		return subcommands.ExitUsageError
	}

	var series fundflow.Series
	var err error
	if c.jsonDates != "" {
		series, err = DecodeFlowsJSONFile(c.file, c.jsonDates, c.jsonAmounts, c.currency)
	} else {
		series, err = DecodeFlowsFile(c.file)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading flows: %v\n", err)
		return subcommands.ExitFailure
	}

	report := fundflow.NewIRRReport(series)
	fmt.Println(renderer.IRRMarkdown(report))
	if report.Err != nil {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
