// SPDX-License-Identifier: EPL-2.0

// Package vorbis identifies Ogg Vorbis audio files.
//
// This package uses github.com/jfreymuth/oggvorbis to read the Vorbis
// identification header. No audio packets are decoded.
//
// # Probing
//
//	p := vorbis.Prober{}
//	if p.Sniff(head) {
//	    info, err := p.Probe(file) // "Ogg Vorbis, 48000 Hz, 2 ch"
//	}
//
// Sniff matches the "OggS" capture pattern, so Ogg streams carrying Opus
// or FLAC pass Sniff but fail Probe with ErrNotVorbisFile.
//
// Vorbis decodes to float, so StreamInfo.BitDepth is always 0.
package vorbis
