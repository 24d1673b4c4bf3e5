package packctl

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/packsat/amo"
)

// ErrBadAtMostOne indicates --at-most-one named a scheme amo.ParseScheme
// doesn't recognize (spec.md §7 error kind 1, "configuration error").
var ErrBadAtMostOne = errors.New("packctl: unknown --at-most-one scheme")

// Config holds every spec.md §6 CLI flag's parsed value, shared by the
// root command and the bench subcommand.
type Config struct {
	Steps         int
	Fill          int
	Duration      int
	Height        int
	MaxWidth      int
	NoCardinality bool
	AtMostOne     string
	Verbose       bool
	IP            bool
	Seed          int64
}

// bindFlags registers every spec.md §6 flag against cmd, writing into cfg.
func bindFlags(cmd *cobra.Command, cfg *Config) {
	f := cmd.Flags()
	f.IntVar(&cfg.Steps, "steps", 8, "number of time steps to generate")
	f.IntVar(&cfg.Fill, "fill", 4, "target per-step fill level")
	f.IntVar(&cfg.Duration, "duration", 3, "max item duration in steps")
	f.IntVar(&cfg.Height, "height", 4, "strip height")
	f.IntVar(&cfg.MaxWidth, "max-width", 8, "maximum strip width to search within")
	f.BoolVar(&cfg.NoCardinality, "no-cardinality", false, "disable per-timestep cardinality clauses")
	f.StringVar(&cfg.AtMostOne, "at-most-one", "product", "at-most-one scheme: pairwise|binary|commander|product")
	f.BoolVar(&cfg.Verbose, "verbose", false, "log instance and encoding settings (the SAT solver's own log is not shown)")
	f.BoolVar(&cfg.IP, "ip", false, "use the IP/MPS back-end instead of the SAT core")
	f.Int64Var(&cfg.Seed, "seed", 0, "instance generation seed")
}

// scheme parses cfg.AtMostOne, returning ErrBadAtMostOne on an unknown name.
func (cfg Config) scheme() (amo.Scheme, error) {
	s, err := amo.ParseScheme(cfg.AtMostOne)
	if err != nil {
		return 0, ErrBadAtMostOne
	}
	return s, nil
}
