package shape

import "errors"

// Sentinel errors for the shape data model.
var (
	// ErrEmptyShape indicates a Shape carries no cell offsets.
	ErrEmptyShape = errors.New("shape: shape has no cells")

	// ErrUnnormalizedShape indicates a Shape's minimum row or column isn't zero.
	ErrUnnormalizedShape = errors.New("shape: shape is not normalized to origin (0,0)")

	// ErrEmptyShapeSet indicates a ShapeSet has zero orientations.
	ErrEmptyShapeSet = errors.New("shape: shape set has no orientations")

	// ErrOrientationCardinality indicates orientations of one ShapeSet disagree
	// on the number of cells they occupy.
	ErrOrientationCardinality = errors.New("shape: orientations of a shape set must have equal cardinality")

	// ErrBadWindow indicates a ScheduleItem's [Begin, End) window is invalid.
	ErrBadWindow = errors.New("shape: schedule item requires 0 <= begin < end")

	// ErrBadDimensions indicates a non-positive Height or MaxWidth on an Instance.
	ErrBadDimensions = errors.New("shape: height and max_width must be positive")
)
