// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/wavconv/audio"
	"github.com/jfreymuth/oggvorbis"
)

// Container is the name reported in audio.StreamInfo.
const Container = "Ogg Vorbis"

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
}

// Prober recognizes Ogg streams carrying Vorbis audio.
type Prober struct{}

func (Prober) Sniff(head []byte) bool {
	return bytes.HasPrefix(head, []byte("OggS"))
}

// Probe reads the Vorbis identification header. Ogg streams with a
// different codec fail here.
func (Prober) Probe(r io.ReadSeeker) (audio.StreamInfo, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return audio.StreamInfo{}, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}

	return probe(dec)
}

func probe(dec oggReader) (audio.StreamInfo, error) {
	if dec.SampleRate() <= 0 || dec.Channels() <= 0 {
		return audio.StreamInfo{}, fmt.Errorf("%w: %d Hz, %d channels", ErrNotVorbisFile, dec.SampleRate(), dec.Channels())
	}

	return audio.StreamInfo{
		Container:  Container,
		SampleRate: dec.SampleRate(),
		Channels:   dec.Channels(),
	}, nil
}
