package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/rhartert/maxbw/maxbw"
)

func newTableCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "table [network]",
		Short: "Print a summary table of bandwidths, lengths and hops",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd, args)
			if err != nil {
				return err
			}
			s, err := solve(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return printTable(cmd.OutOrStdout(), s, destinations(cfg, s))
		},
	}
	opts.addFlags(cmd)
	return cmd
}

func printTable(w io.Writer, s *maxbw.Solver, dests []int) error {
	rows := make([][]string, 0, len(dests))
	for _, d := range dests {
		p, err := s.PathTo(d)
		if err != nil {
			return err
		}
		if p == nil {
			rows = append(rows, []string{strconv.Itoa(d), "-", "-", "-", "no path"})
			continue
		}
		bw, _ := s.BandwidthTo(d)
		rows = append(rows, []string{
			strconv.Itoa(d),
			strconv.FormatInt(bw, 10),
			strconv.FormatInt(p.Length(), 10),
			strconv.Itoa(p.Len()),
			p.String(),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Node", "Bandwidth", "Length", "Hops", "Path").
		Rows(rows...)

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
