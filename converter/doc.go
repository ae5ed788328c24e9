// SPDX-License-Identifier: EPL-2.0

// Package converter runs the WAV round trip over a batch of files.
//
// Every input goes through the same linear pipeline:
//
//	Unprocessed -> Inspected -> Decoded -> Encoded -> Written
//
// with Failed reachable from every step and no retry. Files are independent:
// a failure stops that file only, and the batch always reports one Result
// per input, in input order.
//
// # Usage
//
//	c := converter.New(converter.DefaultConfig())
//	batch, err := c.Convert(ctx, []string{"a.wav", "b.wav"})
//	if err != nil {
//	    // empty batch, blank path or output collision: nothing was touched
//	}
//
//	for _, res := range batch.Results {
//	    if res.Err != nil {
//	        fmt.Println(res.Err) // convert b.wav: inspect: unreadable WAV file: ...
//	        continue
//	    }
//	    fmt.Print(res.Record)
//	}
//
// Each output is written as <Prefix><name> next to its input, or in
// Config.OutputDir when set. The default prefix is "converted_".
//
// # Errors
//
// Batch validation fails with ErrEmptyBatch, ErrInvalidInput or
// ErrOutputCollision before any file is opened. Per-file failures are
// *FileError values that name the file and step and wrap one of the wav
// package classes, so errors.Is(err, wav.ErrUnsupportedFormat) works on
// them directly.
//
// When an input is not a RIFF/WAVE file, the probers in Config.Probes are
// asked what it is, and the answer is added to the message:
//
//	convert song.mp3: inspect: unreadable WAV file: not a WAV file: magic "ID3\x04" (input is MP3, 44100 Hz, 2 ch)
//
// # Concurrency
//
// Files run on at most Config.Workers goroutines. Cancelling the context
// fails the files that have not started yet; running files finish.
package converter
