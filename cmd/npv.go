package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/davrieb/fundflow"
	"github.com/google/subcommands"
)

// npvCmd holds the flags for the 'npv' subcommand.
type npvCmd struct {
	file string
	rate float64
}

func (*npvCmd) Name() string     { return "npv" }
func (*npvCmd) Synopsis() string { return "net present value of a cash-flow series at a given rate" }
func (*npvCmd) Usage() string {
	return `ffw npv -rate <rate> [-f <file>]

  Discounts dated cash flows back to the earliest date (Excel XNPV).
`
}

func (c *npvCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Flows file to analyze. Defaults to the app flows file.")
	f.Float64Var(&c.rate, "rate", 0, "Annual discount rate as a fraction (0.1 for 10%)")
}

func (c *npvCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.rate <= -1 {
		fmt.Fprintln(os.Stderr, "-rate must be greater than -1")
		return subcommands.ExitUsageError
	}

	series, err := DecodeFlowsFile(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading flows: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(series) == 0 {
		fmt.Fprintln(os.Stderr, "No flows to discount")
		return subcommands.ExitFailure
	}

	fmt.Printf("%.6f\n", fundflow.XNPV(fundflow.Rate(c.rate), series))
	return subcommands.ExitSuccess
}
