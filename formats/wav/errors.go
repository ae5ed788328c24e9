// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

// Error classes. Every error returned by this package wraps exactly one of them.
var (
	// ErrUnreadableFile covers missing files and corrupt or truncated headers.
	ErrUnreadableFile = errors.New("unreadable WAV file")
	// ErrUnsupportedFormat is a well-formed header whose sample format is not handled.
	ErrUnsupportedFormat = errors.New("unsupported WAV sample format")
	// ErrDecode means the data chunk is inconsistent with the header.
	ErrDecode = errors.New("WAV decode failed")
	// ErrEncode covers unsupported targets and write failures.
	ErrEncode = errors.New("WAV encode failed")
)

// Causes, wrapped together with a class.
var (
	ErrNotWavFile         = errors.New("not a WAV file")
	ErrTruncatedHeader    = errors.New("truncated WAV header")
	ErrCorruptHeader      = errors.New("corrupt WAV header")
	ErrMissingFmtChunk    = errors.New("missing fmt chunk")
	ErrMissingDataChunk   = errors.New("missing data chunk")
	ErrTruncatedData      = errors.New("data chunk shorter than declared")
	ErrFrameMisaligned    = errors.New("data size is not a whole number of frames")
	ErrDescriptorMismatch = errors.New("descriptor does not match file header")
	ErrDataTooLarge       = errors.New("audio data too large for a RIFF container")
)
