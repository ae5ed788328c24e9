// SPDX-License-Identifier: EPL-2.0

package converter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/wavconv/formats/wav"
)

// Converter rewrites WAV files with their exact original format.
// It holds no per-batch state and may be used concurrently.
type Converter struct {
	cfg Config
}

func New(cfg Config) *Converter {
	return &Converter{cfg: cfg.withDefaults()}
}

// OutputPath returns where the converted copy of input is written.
func (c *Converter) OutputPath(input string) string {
	dir := c.cfg.OutputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}

	return filepath.Join(dir, c.cfg.Prefix+filepath.Base(input))
}

// plan validates the batch and maps every input to its output path without
// touching the filesystem. Paths are compared in absolute form, so one file
// named two ways is a collision.
func (c *Converter) plan(inputs []string) ([]string, error) {
	if len(inputs) == 0 {
		return nil, ErrEmptyBatch
	}

	outputs := make([]string, len(inputs))
	inputSet := make(map[string]int, len(inputs))

	for i, in := range inputs {
		if strings.TrimSpace(in) == "" {
			return nil, fmt.Errorf("%w: input %d is blank", ErrInvalidInput, i)
		}

		if base := filepath.Base(filepath.Clean(in)); base == "." || base == string(filepath.Separator) {
			return nil, fmt.Errorf("%w: %q is not a file name", ErrInvalidInput, in)
		}

		key, err := filepath.Abs(in)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidInput, in, err)
		}

		if j, ok := inputSet[key]; ok {
			return nil, fmt.Errorf("%w: %q and %q are the same file", ErrOutputCollision, inputs[j], in)
		}

		inputSet[key] = i
	}

	seen := make(map[string]int, len(inputs))

	for i, in := range inputs {
		out := filepath.Clean(c.OutputPath(in))

		key, err := filepath.Abs(out)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidInput, out, err)
		}

		if j, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %q and %q both write %q", ErrOutputCollision, inputs[j], in, out)
		}

		if j, ok := inputSet[key]; ok {
			return nil, fmt.Errorf("%w: %q would overwrite input %q", ErrOutputCollision, in, inputs[j])
		}

		seen[key] = i
		outputs[i] = out
	}

	return outputs, nil
}

// Convert runs every input through inspect, decode, encode and write.
//
// The returned error is non-nil only when the batch itself is invalid; in
// that case no file has been opened. Per-file failures are reported in the
// Batch, which always has one Result per input in input order.
func (c *Converter) Convert(ctx context.Context, inputs []string) (*Batch, error) {
	outputs, err := c.plan(inputs)
	if err != nil {
		return nil, err
	}

	// a missing output directory fails every file at the write step
	var dirErr error
	if c.cfg.OutputDir != "" {
		if err := os.MkdirAll(c.cfg.OutputDir, 0o755); err != nil {
			dirErr = fmt.Errorf("%w: create output directory: %w", wav.ErrEncode, err)
			c.cfg.Logger.Printf("Cannot create output directory %s: %v", c.cfg.OutputDir, err)
		}
	}

	batch := &Batch{Results: make([]Result, len(inputs))}

	var g errgroup.Group
	g.SetLimit(c.cfg.Workers)

	for i := range inputs {
		g.Go(func() error {
			// each worker owns its own slot
			batch.Results[i] = c.convertFile(ctx, inputs[i], outputs[i], dirErr)
			return nil
		})
	}

	_ = g.Wait()

	return batch, nil
}

func (c *Converter) convertFile(ctx context.Context, input, output string, dirErr error) Result {
	res := Result{Input: input, Output: output, State: Unprocessed}

	fail := func(step Step, err error) Result {
		res.State = Failed
		res.Step = step
		res.Err = &FileError{File: input, Step: step, Err: err}
		c.cfg.Logger.Printf("Failed %v", res.Err)

		return res
	}

	if err := ctx.Err(); err != nil {
		return fail(StepInspect, err)
	}

	d, err := wav.Inspect(input)
	if err != nil {
		return fail(StepInspect, c.describe(input, err))
	}
	res.State = Inspected
	c.debugf("%s: inspected %v", input, d)

	buf, err := wav.Decode(input, d)
	if err != nil {
		return fail(StepDecode, err)
	}
	res.State = Decoded
	c.debugf("%s: decoded %d frames", input, buf.Frames())

	data, err := wav.Marshal(buf, d)
	if err != nil {
		return fail(StepEncode, err)
	}
	res.State = Encoded
	c.debugf("%s: encoded %d bytes", input, len(data))

	if dirErr != nil {
		return fail(StepWrite, dirErr)
	}

	if err := wav.WriteFile(output, data); err != nil {
		return fail(StepWrite, err)
	}
	res.State = Written

	res.Record = newRecord(filepath.Base(input), d)
	c.cfg.Logger.Printf("Converted %s -> %s (%v)", input, output, d)

	return res
}

// describe adds what the input actually is when it is not a WAV file.
func (c *Converter) describe(input string, err error) error {
	if !errors.Is(err, wav.ErrNotWavFile) {
		return err
	}

	f, ferr := os.Open(input)
	if ferr != nil {
		return err
	}
	defer f.Close()

	info, perr := c.cfg.Probes.Identify(f)
	if perr != nil {
		c.debugf("%s: %v", input, perr)
		return err
	}

	return fmt.Errorf("%w (input is %s)", err, info)
}

func (c *Converter) debugf(format string, args ...any) {
	if c.cfg.Debug {
		c.cfg.Logger.Printf("[DEBUG] "+format, args...)
	}
}
