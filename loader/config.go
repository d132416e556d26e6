package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config describes a run of the solver.
type Config struct {
	// Network is the path to the network file. A relative path is resolved
	// against the directory of the configuration file.
	Network string `toml:"network"`

	// Source is the node from which bandwidths are computed.
	Source int `toml:"source"`

	// Destinations lists the nodes to report. Empty means all nodes.
	Destinations []int `toml:"destinations"`

	// Bidirectional adds the reverse of each edge.
	Bidirectional bool `toml:"bidirectional"`

	// Check runs the optimality checker after solving.
	Check bool `toml:"check"`

	// MaxSettles bounds the number of extractions. Zero means no limit.
	MaxSettles int `toml:"max_settles"`
}

// LoadConfig reads a TOML configuration file. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("loader: reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("loader: unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if cfg.Network != "" && !filepath.IsAbs(cfg.Network) {
		cfg.Network = filepath.Join(filepath.Dir(path), cfg.Network)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error if the configuration cannot describe a run.
func (c *Config) Validate() error {
	if c.Network == "" {
		return fmt.Errorf("loader: missing network file")
	}
	if c.Source < 0 {
		return fmt.Errorf("loader: source must be non-negative, got %d", c.Source)
	}
	for _, d := range c.Destinations {
		if d < 0 {
			return fmt.Errorf("loader: destination must be non-negative, got %d", d)
		}
	}
	if c.MaxSettles < 0 {
		return fmt.Errorf("loader: max_settles must be non-negative, got %d", c.MaxSettles)
	}
	return nil
}
