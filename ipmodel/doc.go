// Package ipmodel implements the optional parallel integer-programming
// formulation (spec.md §4.H): the same placement problem re-expressed as
// 0/1 variables plus one integer slack, written out as an MPS file for an
// external IP solver (the CLI shells out to cbc, mirroring
// original_source/packing_ip.py's subprocess.check_call(['cbc', ...])).
//
// This is a parallel, simpler path, not the focus of the module -- it
// shares shape.Instance as input but does not touch satsolver, encode, or
// optimize at all.
package ipmodel
