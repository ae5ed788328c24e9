// SPDX-License-Identifier: EPL-2.0

// Package mp3 identifies MP3 audio files.
//
// This package uses github.com/hajimehoshi/go-mp3 to read the first frame
// header of a stream. No audio is decoded.
//
// # Probing
//
//	p := mp3.Prober{}
//	if p.Sniff(head) {
//	    info, err := p.Probe(file) // "MP3, 44100 Hz, 2 ch"
//	}
//
// Sniff accepts an ID3v2 tag or an MPEG Layer III frame sync. Probe reports
// the sample rate; the channel count is always 2 because go-mp3 decodes
// every stream to stereo. BitDepth is 0: MP3 has no fixed sample width.
//
// # Errors
//
// Probe wraps go-mp3's error in ErrNotMP3File.
package mp3
