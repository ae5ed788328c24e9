// SPDX-License-Identifier: EPL-2.0

package wavconv

import (
	"context"

	"github.com/ik5/wavconv/converter"
)

// ConvertFiles rewrites every WAV file in paths next to itself as
// converted_<name>, keeping its exact sample format.
//
// It returns the output paths and display records of the files that were
// written, in input order. The error is nil when every file succeeded; it
// is converter.ErrEmptyBatch (or another batch validation error) when
// nothing was attempted, and otherwise joins one *converter.FileError per
// failed file. Files that succeed are written even when others fail.
//
// Example:
//
//	outputs, records, err := wavconv.ConvertFiles(ctx, []string{"ir.wav"})
//	if err != nil {
//	    log.Print(err)
//	}
//	fmt.Print(converter.Summary(records))
func ConvertFiles(ctx context.Context, paths []string) ([]string, []converter.Record, error) {
	return ConvertFilesTo(ctx, paths, "")
}

// ConvertFilesTo is ConvertFiles writing into outputDir. An empty
// outputDir writes next to each input.
func ConvertFilesTo(ctx context.Context, paths []string, outputDir string) ([]string, []converter.Record, error) {
	cfg := converter.DefaultConfig()
	cfg.OutputDir = outputDir

	batch, err := converter.New(cfg).Convert(ctx, paths)
	if err != nil {
		return nil, nil, err
	}

	return batch.Outputs(), batch.Records(), batch.Err()
}
