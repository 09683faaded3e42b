package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pagesum"
)

// Console framing for a summary printed to stdout.
var (
	summaryHeader = strings.Repeat("=", 50) + " SUMMARY " + strings.Repeat("=", 50)
	summaryFooter = strings.Repeat("=", 110)
)

// SummarizeCmd summarizes one page and prints or saves the result.
type SummarizeCmd struct {
	URL    string
	Output string
}

// Run executes the summarize command. A failed summary is still written
// out as its "Error: ..." text; only output failures return an error.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	deps.Pipeline.SetURL(c.URL)
	deps.Logger.Info("accessing url", "url", deps.Pipeline.URL())
	result := deps.Pipeline.Summarize(deps.Ctx)

	if c.Output != "" {
		if err := deps.Writer.WriteSummary(c.Output, result); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagesum.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Summary saved to %s\n", c.Output)
		return nil
	}

	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, summaryHeader)
	fmt.Fprintln(deps.Stdout, result)
	fmt.Fprintln(deps.Stdout, summaryFooter)
	return nil
}
