package luma

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch reports magnitude and Hough buffers with different
	// sample counts.
	ErrLengthMismatch = errors.New("luma: magnitude and hough sample counts differ")

	// ErrShortOutput reports a destination slice smaller than the sample count.
	ErrShortOutput = errors.New("luma: output buffer shorter than sample count")

	// ErrUnknownKernel reports a kernel name that is not registered.
	ErrUnknownKernel = errors.New("luma: unknown kernel")

	// ErrDuplicateKernel reports a second registration under the same name.
	ErrDuplicateKernel = errors.New("luma: kernel already registered")

	// ErrInvalidKernel reports a registration with an empty name or nil kernel.
	ErrInvalidKernel = errors.New("luma: kernel entry needs a name and a function")
)

// LengthMismatchError carries the two sample counts of a rejected call.
// It matches ErrLengthMismatch under errors.Is.
type LengthMismatchError struct {
	Magnitude int
	Hough     int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("luma: magnitude has %d samples, hough has %d", e.Magnitude, e.Hough)
}

// Is reports whether target is ErrLengthMismatch.
func (e *LengthMismatchError) Is(target error) bool {
	return target == ErrLengthMismatch
}
