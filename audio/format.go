// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Encoding tells how a single sample is stored.
type Encoding int

const (
	SignedInteger Encoding = iota + 1
	// UnsignedInteger is only used by legacy 8-bit PCM.
	UnsignedInteger
	FloatingPoint
)

func (e Encoding) String() string {
	switch e {
	case SignedInteger:
		return "signed integer"
	case UnsignedInteger:
		return "unsigned integer"
	case FloatingPoint:
		return "floating point"
	default:
		return fmt.Sprintf("Encoding(%d)", int(e))
	}
}

// SampleFormat is the closed set of sample layouts a WAV container can carry
// and that this module knows how to decode and encode.
//
// The zero value is FormatUnsupported. Anything that does not map to one of
// the other variants ends up there and must be rejected by the caller.
type SampleFormat uint8

const (
	FormatUnsupported SampleFormat = iota
	PCMU8
	PCM16
	PCM24
	PCM32
	Float32
	Float64
)

var formatTable = [...]struct {
	bits     int
	encoding Encoding
	label    string
}{
	FormatUnsupported: {0, 0, "UNSUPPORTED"},
	PCMU8:             {8, UnsignedInteger, "PCM_U8"},
	PCM16:             {16, SignedInteger, "PCM_16"},
	PCM24:             {24, SignedInteger, "PCM_24"},
	PCM32:             {32, SignedInteger, "PCM_32"},
	Float32:           {32, FloatingPoint, "FLOAT"},
	Float64:           {64, FloatingPoint, "DOUBLE"},
}

// FormatFor maps a bit depth and encoding pair onto its variant.
// Pairs outside the table return FormatUnsupported, there is no fallback.
func FormatFor(bitDepth int, enc Encoding) SampleFormat {
	for f := PCMU8; f <= Float64; f++ {
		if formatTable[f].bits == bitDepth && formatTable[f].encoding == enc {
			return f
		}
	}

	return FormatUnsupported
}

// Supported reports whether f is one of the known variants.
func (f SampleFormat) Supported() bool {
	return f > FormatUnsupported && f <= Float64
}

// BitDepth returns the number of bits per sample, 0 for unsupported formats.
func (f SampleFormat) BitDepth() int {
	if !f.Supported() {
		return 0
	}

	return formatTable[f].bits
}

// BytesPerSample returns the container width of one sample.
func (f SampleFormat) BytesPerSample() int {
	return f.BitDepth() / 8
}

// Encoding returns how samples of this format are stored, 0 for unsupported formats.
func (f SampleFormat) Encoding() Encoding {
	if !f.Supported() {
		return 0
	}

	return formatTable[f].encoding
}

// IsFloat reports whether samples are IEEE floats.
func (f SampleFormat) IsFloat() bool {
	return f.Encoding() == FloatingPoint
}

// Label is the short subtype name shown to users (PCM_16, FLOAT, ...).
func (f SampleFormat) Label() string {
	if !f.Supported() {
		return formatTable[FormatUnsupported].label
	}

	return formatTable[f].label
}

func (f SampleFormat) String() string {
	return f.Label()
}

// Descriptor describes the sample layout of one audio stream.
// It is a plain value and is never modified once read from a file.
type Descriptor struct {
	SampleRate int
	Channels   int
	Format     SampleFormat
}

// BitDepth is a shortcut for d.Format.BitDepth().
func (d Descriptor) BitDepth() int { return d.Format.BitDepth() }

// Encoding is a shortcut for d.Format.Encoding().
func (d Descriptor) Encoding() Encoding { return d.Format.Encoding() }

// Label is a shortcut for d.Format.Label().
func (d Descriptor) Label() string { return d.Format.Label() }

// BlockAlign is the size in bytes of one frame.
func (d Descriptor) BlockAlign() int {
	return d.Channels * d.Format.BytesPerSample()
}

// ByteRate is the number of bytes per second of audio.
func (d Descriptor) ByteRate() int {
	return d.SampleRate * d.BlockAlign()
}

// Validate checks that the descriptor can be encoded.
func (d Descriptor) Validate() error {
	switch {
	case d.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidDescriptor, d.SampleRate)
	case d.Channels <= 0:
		return fmt.Errorf("%w: channel count %d", ErrInvalidDescriptor, d.Channels)
	case !d.Format.Supported():
		return fmt.Errorf("%w: %w", ErrInvalidDescriptor, ErrUnknownSampleFormat)
	}

	return nil
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s %d Hz %d ch", d.Format.Label(), d.SampleRate, d.Channels)
}
