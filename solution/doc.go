// Package solution persists the packing artifacts package optimize
// discovers (spec.md §6 "Solution artifacts"): a three-dimensional grid of
// cell labels, one upper-bound width at a time, written atomically and
// losslessly reloadable.
package solution
