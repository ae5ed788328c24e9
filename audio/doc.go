// SPDX-License-Identifier: EPL-2.0

// Package audio provides the data model shared by the container packages.
//
// # Sample Formats
//
// SampleFormat is a closed enumeration of the layouts this module can
// round-trip:
//
//	PCMU8    8-bit unsigned integer (legacy WAV 8-bit)
//	PCM16   16-bit signed integer
//	PCM24   24-bit signed integer
//	PCM32   32-bit signed integer
//	Float32 32-bit IEEE float
//	Float64 64-bit IEEE float
//
// FormatFor maps a (bit depth, encoding) pair onto a variant. Anything
// outside the table maps to FormatUnsupported; there is no default.
//
// # Descriptor
//
// Descriptor is the immutable value read from a file header: sample rate,
// channel count and sample format. Descriptors are comparable with ==,
// which is how a round trip is verified.
//
// # Buffer
//
// Buffer holds a whole decoded stream as interleaved float64 samples in
// [-1.0, 1.0]. It embeds a go-audio FloatBuffer:
//
//	buf := audio.NewBuffer(2, 44100, frames)
//	left := buf.Sample(0, 0)
//
// float64 is wide enough to carry every supported format without loss,
// including 32-bit integer and 64-bit float samples.
//
// # Container Registry
//
// The Registry maps container names to Probers. A Prober recognizes a
// container from its first bytes and reports its stream parameters without
// decoding audio. It is used to explain why a file was rejected:
//
//	registry := audio.NewRegistry()
//	registry.Register("aiff", aiff.Prober{})
//	info, err := registry.Identify(file)
package audio
