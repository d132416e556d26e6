package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rhartert/maxbw/loader"
	"github.com/rhartert/maxbw/maxbw"
)

// runOptions holds the flags shared by the solving commands. Flags that are
// set explicitly take precedence over the configuration file.
type runOptions struct {
	config        string
	source        int
	dests         []int
	bidirectional bool
	check         bool
	maxSettles    int
}

func (o *runOptions) addFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.config, "config", "c", "", "TOML run configuration")
	f.IntVarP(&o.source, "source", "s", 0, "source node")
	f.IntSliceVarP(&o.dests, "dest", "d", nil, "destination nodes (default: all nodes)")
	f.BoolVar(&o.bidirectional, "bidirectional", false, "add the reverse of every edge")
	f.BoolVar(&o.check, "check", false, "verify optimality conditions after solving")
	f.IntVar(&o.maxSettles, "max-settles", 0, "maximum number of extractions (0 means no limit)")
}

// resolve merges the configuration file, the positional network argument and
// the explicitly set flags into a validated configuration.
func (o *runOptions) resolve(cmd *cobra.Command, args []string) (*loader.Config, error) {
	cfg := &loader.Config{}
	if o.config != "" {
		c, err := loader.LoadConfig(o.config)
		if err != nil {
			return nil, err
		}
		cfg = c
	}

	if len(args) > 0 {
		cfg.Network = args[0]
	}
	f := cmd.Flags()
	if f.Changed("source") {
		cfg.Source = o.source
	}
	if f.Changed("dest") {
		cfg.Destinations = o.dests
	}
	if f.Changed("bidirectional") {
		cfg.Bidirectional = o.bidirectional
	}
	if f.Changed("check") {
		cfg.Check = o.check
	}
	if f.Changed("max-settles") {
		cfg.MaxSettles = o.maxSettles
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// solve loads the network described by cfg and runs the solver. The
// solver itself cannot be interrupted, so ctx is checked once the network is
// loaded.
func solve(ctx context.Context, cfg *loader.Config) (*maxbw.Solver, error) {
	logger := log.FromContext(ctx)

	start := time.Now()
	nw, err := loader.ParseNetworkFile(cfg.Network)
	if err != nil {
		return nil, fmt.Errorf("reading network: %w", err)
	}
	g, err := nw.Digraph(cfg.Bidirectional)
	if err != nil {
		return nil, err
	}
	logger.Debug("network loaded", "file", cfg.Network, "nodes", g.NumNodes(), "edges", len(g.Edges), "bidirectional", cfg.Bidirectional)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := []maxbw.Option{maxbw.WithSettleLimit(cfg.MaxSettles)}
	if cfg.Check {
		opts = append(opts, maxbw.WithCheck())
	}
	logger.Debug("solving", "source", cfg.Source, "check", cfg.Check, "max_settles", cfg.MaxSettles)

	s, err := maxbw.Solve(g, cfg.Source, opts...)
	if err != nil {
		return nil, err
	}
	stage(logger, start, "solved", "source", cfg.Source, "extractions", s.Extractions(), "settled", len(s.Settled()))
	return s, nil
}

// destinations returns the nodes to report: the configured destinations, or
// every node if none is configured.
func destinations(cfg *loader.Config, s *maxbw.Solver) []int {
	if len(cfg.Destinations) > 0 {
		return cfg.Destinations
	}
	all := make([]int, s.NumVertices())
	for v := range all {
		all[v] = v
	}
	return all
}
