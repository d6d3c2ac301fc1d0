package dataset

import (
	"errors"
	"fmt"
)

// ErrIO is matched by every IOError via errors.Is.
var ErrIO = errors.New("i/o error")

// IOError reports a failure to create, write, sync, rename or read a dataset
// file. The underlying cause stays reachable through errors.Unwrap.
type IOError struct {
	Op   string `json:"op"`
	Path string `json:"path"`
	Err  error  `json:"-"`
}

// Error implements the error interface
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s %s: %v", ErrIO, e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

func ioError(op, path string, err error) *IOError {
	return &IOError{Op: op, Path: path, Err: err}
}
