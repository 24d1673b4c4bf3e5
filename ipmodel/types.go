package ipmodel

import "errors"

// ErrCBCUnavailable indicates the external cbc binary could not be found
// on PATH (spec.md §7 error kind 2, IP back-end variant).
var ErrCBCUnavailable = errors.New("ipmodel: cbc binary not found on PATH")

// column is one MPS COLUMNS entry: a variable name plus its nonzero
// coefficients in named rows.
type column struct {
	name    string
	integer bool
	upper   int // 0 means binary (handled via BV bound), >0 means explicit UI bound
	entries []entry
}

type entry struct {
	row   string
	coeff int
}

// row is one MPS ROWS entry.
type row struct {
	name string
	kind byte // 'E', 'L', 'G', or 'N' (objective/free row)
	rhs  int
}
