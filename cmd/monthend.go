package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/davrieb/fundflow"
	"github.com/davrieb/fundflow/date"
	"github.com/google/subcommands"
)

// monthendCmd holds the flags for the 'monthend' subcommand.
type monthendCmd struct {
	on     string
	months int
}

func (*monthendCmd) Name() string     { return "monthend" }
func (*monthendCmd) Synopsis() string { return "month-end date a number of months away" }
func (*monthendCmd) Usage() string {
	return `ffw monthend [-d <date>] [-m <months>]

  Prints the end-of-month date the given number of months before (negative)
  or after (positive) the reference date. Use multiples of 3 to step
  between quarter ends.
`
}

func (c *monthendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.on, "d", date.Today().String(), "Reference date")
	f.IntVar(&c.months, "m", -3, "Month offset, negative to look back")
}

func (c *monthendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	fmt.Println(fundflow.LookBackQuarterDate(on, c.months))
	return subcommands.ExitSuccess
}
