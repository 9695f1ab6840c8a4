package cmd

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/davrieb/fundflow"
	"github.com/davrieb/fundflow/date"
	"github.com/google/subcommands"
)

// sampleCmd holds the flags for the 'sample' subcommand.
type sampleCmd struct {
	out      string
	count    int
	seed     int64
	start    string
	currency string
}

func (*sampleCmd) Name() string     { return "sample" }
func (*sampleCmd) Synopsis() string { return "generate a random demonstration cash-flow series" }
func (*sampleCmd) Usage() string {
	return `ffw sample [-o <file>] [-n <count>] [-seed <seed>] [-d <start date>]

  Writes a random series of cash flows spread over one year, starting with
  an outflow, in JSONL format.
`
}

func (c *sampleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "flows.jsonl", "Output file")
	f.IntVar(&c.count, "n", 20, "Number of flows to generate")
	f.Int64Var(&c.seed, "seed", 1, "Random seed, for reproducible series")
	f.StringVar(&c.start, "d", date.Today().Add(-365).String(), "Date of the first flow")
	f.StringVar(&c.currency, "c", "USD", "Currency of the flows")
}

func (c *sampleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.count < 2 {
		fmt.Fprintln(os.Stderr, "-n must be at least 2")
		return subcommands.ExitUsageError
	}
	start, err := date.Parse(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}

	rng := rand.New(rand.NewSource(c.seed))

	// an initial investment followed by random flows spread evenly over a year.
	series := fundflow.Series{
		fundflow.NewCashFlow(start, fundflow.M(-rng.Float64()*100000, c.currency)),
	}
	step := 365 / (c.count - 1)
	for i := 1; i < c.count; i++ {
		amount := rng.Float64()*200000 - 100000
		series = append(series, fundflow.NewCashFlow(start.Add(i*step), fundflow.M(amount, c.currency)))
	}

	out, err := os.Create(c.out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.out, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	if err := fundflow.EncodeFlows(out, series); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.out, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Wrote %d flows to %s\n", len(series), c.out)
	return subcommands.ExitSuccess
}
