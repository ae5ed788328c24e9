// SPDX-License-Identifier: EPL-2.0

// Package wavconv re-encodes WAV files without changing their format.
//
// A converted file has the same sample rate, channel count, bit depth and
// encoding as its input, and the same samples: integer formats survive
// bit for bit, float formats are clamped to [-1.0, 1.0]. Nothing is
// resampled, remixed or converted between integer and float.
//
// # Supported Formats
//
//   - PCM 8-bit (unsigned), 16-bit, 24-bit, 32-bit
//   - IEEE float 32-bit and 64-bit
//   - WAVE_FORMAT_EXTENSIBLE variants of the above
//
// Everything else is rejected. When a rejected input is AIFF, MP3 or Ogg
// Vorbis the error says so.
//
// # Quick Start
//
//	outputs, records, err := wavconv.ConvertFiles(ctx, []string{"a.wav", "b.wav"})
//	if err != nil {
//	    // some files failed; the others are still in outputs
//	}
//	fmt.Print(converter.Summary(records))
//
// # Packages
//
//   - audio: sample formats, descriptors, sample buffers, prober registry
//   - formats/wav: header inspection, sample decode and encode, atomic writes
//   - formats/aiff, formats/mp3, formats/vorbis: probers for non-WAV inputs
//   - converter: the batch pipeline with worker pool, per-file results and
//     the display records
//
// Use the converter package directly for control over workers, output
// directory, file prefix and logging.
//
// # Performance
//
// Every file is held in memory while it is converted:
//   - One float64 per sample, so 8 bytes per sample regardless of format
//   - Files are processed in parallel, one per CPU by default
//   - Encoding writes in fixed size chunks through a buffered writer
//
// See the individual subpackages for more detailed documentation.
package wavconv
