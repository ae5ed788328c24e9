// SPDX-License-Identifier: EPL-2.0

package converter

import "errors"

// Result is the outcome for one input file.
type Result struct {
	Input  string
	Output string
	State  State
	// Step is where the file failed, StepNone on success.
	Step   Step
	Record Record
	Err    error
}

// OK reports whether the output file was written.
func (r Result) OK() bool {
	return r.State == Written && r.Err == nil
}

// Batch holds one Result per input, in input order.
type Batch struct {
	Results []Result
}

// Outputs lists the written output paths in input order.
func (b *Batch) Outputs() []string {
	var out []string

	for _, r := range b.Results {
		if r.OK() {
			out = append(out, r.Output)
		}
	}

	return out
}

// Records lists the display records of written files in input order.
func (b *Batch) Records() []Record {
	var out []Record

	for _, r := range b.Results {
		if r.OK() {
			out = append(out, r.Record)
		}
	}

	return out
}

// Failed returns the results that did not reach Written.
func (b *Batch) Failed() []Result {
	var out []Result

	for _, r := range b.Results {
		if !r.OK() {
			out = append(out, r)
		}
	}

	return out
}

// Err joins every per-file error, nil when all files were written.
func (b *Batch) Err() error {
	var errs []error

	for _, r := range b.Results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}

	return errors.Join(errs...)
}
