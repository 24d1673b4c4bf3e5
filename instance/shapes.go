package instance

import "github.com/katalvlaran/packsat/shape"

// wellKnownBlob is a Go port of original_source/shapes.py's six
// tetromino-family ASCII drawings: square (O), bar (I), L, T, S, and Z.
const wellKnownBlob = `
XX
XX

X
X
X
X

X
X
XX

XXX
 X

XX
 XX

 XX
XX
`

// WellKnownShapes is the fixed catalog of tetromino-family ShapeSets,
// each already expanded to its distinct rotations by shape.ParseASCII.
var WellKnownShapes = shape.ParseShapes(wellKnownBlob)
