package generation

import "errors"

var (
	// ErrEvenDimension indicates a stage width or height that is not odd.
	ErrEvenDimension = errors.New("generation: stage dimensions must be odd")
	// ErrTooSmall indicates a stage smaller than the 3x3 minimum.
	ErrTooSmall = errors.New("generation: stage must be at least 3x3")
	// ErrPercentRange indicates a percentage outside [0,100].
	ErrPercentRange = errors.New("generation: percentage must be within 0-100")
	// ErrNegative indicates a count that must not be negative.
	ErrNegative = errors.New("generation: value must not be negative")
	// ErrDisconnected indicates regions that no connector can join.
	ErrDisconnected = errors.New("generation: regions cannot be connected")
	// ErrInvalidLayout indicates a finished layout that breaks a layout invariant.
	ErrInvalidLayout = errors.New("generation: invalid layout")
)

// IsConfigError reports whether err was caused by a bad Config
func IsConfigError(err error) bool {
	return errors.Is(err, ErrEvenDimension) ||
		errors.Is(err, ErrTooSmall) ||
		errors.Is(err, ErrPercentRange) ||
		errors.Is(err, ErrNegative)
}
