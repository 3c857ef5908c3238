package asciiart

import "errors"

var (
	// ErrInvalidImage is returned for nil, empty or undecodable source images.
	ErrInvalidImage = errors.New("invalid image")
	// ErrInvalidParameter is returned for out-of-range arguments such as a
	// non-positive output width or a negative adjustment factor.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrIO is returned when loading, saving or copying fails outside of the
	// conversion itself.
	ErrIO = errors.New("i/o failure")
)
