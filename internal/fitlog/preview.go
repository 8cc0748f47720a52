package fitlog

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WritePreview prints the last n records of s as an aligned table.
func WritePreview(w io.Writer, s Series, n int) error {
	tail := s.Tail(n)
	if len(tail) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Generation\tMaxFitness\tAvgFitness\t")
	for _, r := range tail {
		fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t\n", r.Generation, r.Max, r.Avg)
	}
	return tw.Flush()
}
