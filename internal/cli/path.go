package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rhartert/maxbw/maxbw"
)

func newPathCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "path [network]",
		Short: "Print the maximum bandwidth path to each destination",
		Long: `Print, for each destination, the cumulative bandwidth of the best path from
the source and the edges of that path. The network file starts with the
number of nodes followed by one "from to type bandwidth length" line per edge.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd, args)
			if err != nil {
				return err
			}
			s, err := solve(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return printPaths(cmd.OutOrStdout(), s, destinations(cfg, s))
		},
	}
	opts.addFlags(cmd)
	return cmd
}

// printPaths writes one line per destination:
//
//	0 to 2 (8)  0->1 5   1->2 3
//	0 to 3         no path
func printPaths(w io.Writer, s *maxbw.Solver, dests []int) error {
	src := s.Source()
	for _, d := range dests {
		p, err := s.PathTo(d)
		if err != nil {
			return err
		}
		if p == nil {
			fmt.Fprintf(w, "%d to %d         no path\n", src, d)
			continue
		}
		bw, _ := s.BandwidthTo(d)
		line := fmt.Sprintf("%d to %d (%d)  %s", src, d, bw, p)
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
	return nil
}
