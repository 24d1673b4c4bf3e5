// Package shape defines the data model shared by every packing component:
// Point, Shape, ShapeSet, ScheduleItem and Instance.
//
// What:
//
//   - Shape is a normalized set of (row, col) cell offsets (min row = min
//     col = 0). ShapeSet is an ordered, immutable list of 1-4 orientations
//     of the same polyomino.
//   - ScheduleItem pairs a half-open presence window [Begin, End) with a
//     ShapeSet; every orientation of one item occupies the same number of
//     cells.
//   - Instance is an ordered list of ScheduleItems plus the fixed Height
//     and MaxWidth of the packing area.
//
// Why:
//
//   - Keeping this model free of any SAT/CNF concept lets the encoder
//     (package encode), the IP formulation (package ipmodel) and the
//     instance generator (package instance) all share one validated view
//     of "what is being packed" without depending on each other.
//
// Errors:
//
//   - ErrEmptyShape: a Shape has no cells.
//   - ErrUnnormalizedShape: a Shape's minimum row or column is not zero.
//   - ErrEmptyShapeSet: a ShapeSet has no orientations.
//   - ErrOrientationCardinality: two orientations of one ShapeSet occupy a
//     different number of cells.
//   - ErrBadWindow: a ScheduleItem's Begin/End do not satisfy 0 <= Begin < End.
//   - ErrBadDimensions: Instance.Height or Instance.MaxWidth is not positive.
package shape
