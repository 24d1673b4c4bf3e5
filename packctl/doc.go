// Package packctl assembles the CLI surface described by spec.md §6 on
// top of github.com/spf13/cobra: a root "packsat" command that generates
// a random instance, runs the SAT core (or the optional IP back-end)
// against it, and logs the optimal width (solutions are kept in memory
// only; nothing is loaded from or written to disk), plus a "bench" subcommand
// that fans out independent optimize.Driver runs across generated
// instances via a golang.org/x/sync/errgroup worker pool.
//
// Flags map directly to spec.md §6: --steps, --fill, --duration,
// --height, --max-width, --no-cardinality, --at-most-one, --verbose,
// --ip, --seed. Exit code 0 on completion of the optimization loop,
// nonzero on any spec.md §7 error.
package packctl
