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

// turnoverCmd holds the flags for the 'turnover' subcommand.
type turnoverCmd struct {
	purchases float64
	sales     float64
	value     float64
	currency  string
}

func (*turnoverCmd) Name() string     { return "turnover" }
func (*turnoverCmd) Synopsis() string { return "standard turnover ratio of a portfolio period" }
func (*turnoverCmd) Usage() string {
	return `ffw turnover -purchases <amount> -sales <amount> -value <amount> [-c <currency>]

  Computes min(purchases, sales) over the portfolio value, counting only
  strictly positive sides.
`
}

func (c *turnoverCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.purchases, "purchases", 0, "Total purchases over the period")
	f.Float64Var(&c.sales, "sales", 0, "Total sales over the period")
	f.Float64Var(&c.value, "value", 0, "Portfolio value at the end of the period")
	f.StringVar(&c.currency, "c", "", "Currency of the amounts")
}

func (c *turnoverCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ratio, err := fundflow.Turnover(
		fundflow.M(c.purchases, c.currency),
		fundflow.M(c.sales, c.currency),
		fundflow.M(c.value, c.currency),
	)
	fmt.Println(renderer.TurnoverMarkdown(ratio, err))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
