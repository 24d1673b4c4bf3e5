// Package instance builds shape.Instance values for callers that don't
// already have a schedule on hand: WellKnownShapes is a fixed catalog of
// tetromino-family pieces (a Go port of original_source/shapes.py's
// well_known_shapes), and Random greedily schedules pieces from a catalog
// to a target per-step fill level (a Go port of
// original_source/gen_instance.py's random_instance).
//
// This package is peripheral to the SAT-encoding core (spec.md §1 lists
// instance generation as "out of scope: external collaborators"), but
// spec.md §6's own CLI surface requires --seed/--fill/--duration, so it is
// carried as an ambient package the CLI depends on.
package instance
