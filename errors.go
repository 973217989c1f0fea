package h5scalar

import (
	"errors"
	"fmt"
)

// Stage identifies the step of the read pipeline that produced an error.
type Stage int

const (
	// StageOpen covers opening the container file.
	StageOpen Stage = iota
	// StageResolve covers resolving a dataset path inside the container.
	StageResolve
	// StageRead covers reading and converting the dataset value.
	StageRead
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageOpen:
		return "open"
	case StageResolve:
		return "resolve"
	case StageRead:
		return "read"
	default:
		return fmt.Sprintf("stage_%d", int(s))
	}
}

// Sentinel causes carried by *Error.
var (
	ErrClosed     = errors.New("container is closed")
	ErrEmptyPath  = errors.New("dataset path is empty")
	ErrNotFound   = errors.New("object not found")
	ErrNotDataset = errors.New("object is not a dataset")
	ErrNotScalar  = errors.New("dataset does not hold exactly one element")
	ErrNotInteger = errors.New("dataset value is not an integer")
	ErrOutOfRange = errors.New("dataset value overflows int32")

	ErrUnsupportedWidth = errors.New("integer width not supported")
)

// Error is a storage failure annotated with the pipeline stage and the
// path (file name or dataset path) it concerns.
type Error struct {
	Stage Stage
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s failed: %v", e.Stage, e.Cause)
	}
	return fmt.Sprintf("%s %q failed: %v", e.Stage, e.Path, e.Cause)
}

// Unwrap provides compatibility with errors.Unwrap().
func (e *Error) Unwrap() error {
	return e.Cause
}

// wrapError attaches stage and path context to cause. A nil cause stays nil.
func wrapError(stage Stage, path string, cause error) error {
	if cause == nil {
		return nil
	}
	return &Error{
		Stage: stage,
		Path:  path,
		Cause: cause,
	}
}

// StageOf reports the stage of the first *Error in err's chain.
func StageOf(err error) (Stage, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Stage, true
	}
	return 0, false
}
