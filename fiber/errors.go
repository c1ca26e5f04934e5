package fiber

import "errors"

var (
	// ErrConfig reports a non-positive or inconsistent channel parameter.
	// Construction fails outright; no partially usable Channel is returned.
	ErrConfig = errors.New("fiber: invalid channel configuration")

	// ErrShapeMismatch reports an input array whose length differs from the
	// configured FFT sample count. A failed call leaves the channel in its
	// prior state.
	ErrShapeMismatch = errors.New("fiber: input length does not match FFT sample count")

	// ErrUnstable reports a NaN or Inf detected in the propagated field.
	ErrUnstable = errors.New("fiber: numerical instability in propagated field")
)
