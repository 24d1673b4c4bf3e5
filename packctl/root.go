package packctl

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/packsat/encode"
	"github.com/katalvlaran/packsat/instance"
	"github.com/katalvlaran/packsat/optimize"
	"github.com/katalvlaran/packsat/satsolver"
	"github.com/katalvlaran/packsat/solution"
)

// NewRootCommand builds the "packsat" root command (spec.md §6) and its
// "bench" subcommand.
func NewRootCommand() *cobra.Command {
	cfg := &Config{}

	root := &cobra.Command{
		Use:   "packsat",
		Short: "Strip-packing SAT encoder and optimizer",
		Long: "packsat generates (or would load) a schedule of time-windowed\n" +
			"polyomino blocks and computes the minimum strip-packing width via\n" +
			"an incremental SAT encoding, or via the optional IP/MPS back-end.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}
	bindFlags(root, cfg)
	root.AddCommand(newBenchCommand())
	return root
}

func run(ctx context.Context, cfg *Config) error {
	scheme, err := cfg.scheme()
	if err != nil {
		return err
	}

	inst, err := instance.Random(instance.WellKnownShapes, cfg.Steps, cfg.Height, cfg.MaxWidth,
		instance.WithMaxFill(cfg.Fill), instance.WithMaxDuration(cfg.Duration), instance.WithSeed(cfg.Seed))
	if err != nil {
		return fmt.Errorf("packctl: generate instance: %w", err)
	}

	if cfg.Verbose {
		log.Printf("packsat: generated %d items over %d steps (height=%d max_width=%d)",
			len(inst.Items), inst.Steps(), cfg.Height, cfg.MaxWidth)
	}

	if cfg.IP {
		return runIP(inst)
	}

	solver, err := satsolver.NewGini()
	if err != nil {
		return fmt.Errorf("packctl: %w", err)
	}

	enc, err := encode.New(inst, solver,
		encode.WithCardinality(!cfg.NoCardinality),
		encode.WithAMOScheme(scheme))
	if err != nil {
		return fmt.Errorf("packctl: encode instance: %w", err)
	}

	if cfg.Verbose {
		log.Printf("packsat: solving with at-most-one=%s cardinality=%v", scheme, !cfg.NoCardinality)
	}

	sink := solution.NewMemorySink()
	driver := optimize.New(enc, sink)

	result, err := driver.Optimize(ctx)
	if err != nil {
		return fmt.Errorf("packctl: %w", err)
	}

	log.Printf("packsat: optimal width = %d", result.Width)
	return nil
}
