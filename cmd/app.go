// Package cmd implements the CLI application to analyze cash-flow series.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/davrieb/fundflow"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&irrCmd{}, "analytics")
	c.Register(&npvCmd{}, "analytics")
	c.Register(&turnoverCmd{}, "analytics")

	c.Register(&monthendCmd{}, "dates")

	c.Register(&sampleCmd{}, "flows")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var flowsFile = flag.String("flows-file", "flows.jsonl", "Path to the cash flows file (JSONL format)")

// DecodeFlowsFile reads a cash-flow series from a JSONL file. An empty path
// falls back to the app default flows file.
func DecodeFlowsFile(path string) (fundflow.Series, error) {
	if path == "" {
		path = *flowsFile
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open flows file %q: %w", path, err)
	}
	defer f.Close()

	series, err := fundflow.DecodeFlows(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read flows file %q: %w", path, err)
	}
	return series, nil
}

// DecodeFlowsJSONFile extracts a cash-flow series from an arbitrary JSON
// file using a pair of jsonpath expressions.
func DecodeFlowsJSONFile(path, datesPath, amountsPath, currency string) (fundflow.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open json file %q: %w", path, err)
	}
	defer f.Close()

	series, err := fundflow.DecodeFlowsJSONPath(f, datesPath, amountsPath, currency)
	if err != nil {
		return nil, fmt.Errorf("cannot extract flows from %q: %w", path, err)
	}
	return series, nil
}
