package packctl

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/packsat/encode"
	"github.com/katalvlaran/packsat/instance"
	"github.com/katalvlaran/packsat/optimize"
	"github.com/katalvlaran/packsat/satsolver"
	"github.com/katalvlaran/packsat/solution"
)

// newBenchCommand builds the "bench" subcommand: it generates several
// independent instances (one per seed offset) and solves them
// concurrently, each with its own single-threaded optimize.Driver
// (spec.md §5's ambient CLI concurrency -- never parallel *within* one
// instance's Solver). bench always uses the SAT core and logs only each
// instance's optimal width: --ip and --verbose are accepted but have no
// effect here.
func newBenchCommand() *cobra.Command {
	cfg := &Config{}
	var instances int
	var workers int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Solve several independently generated instances concurrently",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.Context(), cfg, instances, workers)
		},
	}
	bindFlags(cmd, cfg)
	cmd.Flags().IntVar(&instances, "instances", 4, "number of independent instances to generate and solve")
	cmd.Flags().IntVar(&workers, "workers", 2, "maximum concurrent solves")
	return cmd
}

func runBench(ctx context.Context, cfg *Config, instances, workers int) error {
	scheme, err := cfg.scheme()
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for n := 0; n < instances; n++ {
		n := n
		g.Go(func() error {
			inst, err := instance.Random(instance.WellKnownShapes, cfg.Steps, cfg.Height, cfg.MaxWidth,
				instance.WithMaxFill(cfg.Fill), instance.WithMaxDuration(cfg.Duration),
				instance.WithSeed(cfg.Seed+int64(n)))
			if err != nil {
				return fmt.Errorf("packctl: instance %d: generate: %w", n, err)
			}

			solver, err := satsolver.NewGini()
			if err != nil {
				return fmt.Errorf("packctl: instance %d: %w", n, err)
			}

			enc, err := encode.New(inst, solver,
				encode.WithCardinality(!cfg.NoCardinality),
				encode.WithAMOScheme(scheme))
			if err != nil {
				return fmt.Errorf("packctl: instance %d: encode: %w", n, err)
			}

			driver := optimize.New(enc, solution.NewMemorySink())
			result, err := driver.Optimize(ctx)
			if err != nil {
				return fmt.Errorf("packctl: instance %d: %w", n, err)
			}

			log.Printf("packsat: instance %d optimal width = %d", n, result.Width)
			return nil
		})
	}

	return g.Wait()
}
