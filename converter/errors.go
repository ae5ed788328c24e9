// SPDX-License-Identifier: EPL-2.0

package converter

import (
	"errors"
	"fmt"
)

// Batch level errors, returned by Convert before any file is touched.
var (
	ErrEmptyBatch      = errors.New("no input files supplied")
	ErrInvalidInput    = errors.New("invalid input path")
	ErrOutputCollision = errors.New("output path collision")
)

// FileError is the failure of one file at one step.
type FileError struct {
	File string
	Step Step
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("convert %s: %s: %v", e.File, e.Step, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
