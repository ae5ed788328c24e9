// SPDX-License-Identifier: EPL-2.0

// Package aiff identifies AIFF (Audio Interchange File Format) files.
//
// This package uses github.com/go-audio/aiff to read the COMM chunk of
// AIFF and AIFF-C files. It does not decode audio: its only job is to say
// what a rejected input actually is, so a converter error can read
// "AIFF, 44100 Hz, 2 ch, 16-bit" instead of "not a WAV file".
//
// # Probing
//
//	p := aiff.Prober{}
//	if p.Sniff(head) {
//	    info, err := p.Probe(file)
//	}
//
// Sniff matches the "FORM" magic with an "AIFF" or "AIFC" form type in
// the first 12 bytes. Probe returns the sample rate, channel count and bit
// depth.
//
// Usually the prober is registered with an audio.Registry:
//
//	registry := audio.NewRegistry()
//	registry.Register("aiff", aiff.Prober{})
//
// # Errors
//
//   - ErrNotAiffFile: the stream has no valid FORM/AIFF header
//   - ErrUnsupportedAiffLayout: the header has no usable COMM chunk
package aiff
