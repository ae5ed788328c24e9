// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/ik5/wavconv/audio"
)

// Container is the name reported in audio.StreamInfo.
const Container = "AIFF"

// aiffReader is the part of aiff.Decoder the prober needs, split out for testing.
type aiffReader interface {
	IsValidFile() bool
	ReadInfo()
	Format() *goaudio.Format
	SampleBits() int
}

// decoder exposes the BitDepth field of aiff.Decoder through aiffReader.
type decoder struct {
	*aiff.Decoder
}

func (d decoder) SampleBits() int { return int(d.Decoder.BitDepth) }

// Prober recognizes AIFF and AIFF-C files. It reads the COMM chunk only.
type Prober struct{}

func (Prober) Sniff(head []byte) bool {
	if len(head) < 12 || !bytes.Equal(head[0:4], []byte("FORM")) {
		return false
	}

	form := head[8:12]

	return bytes.Equal(form, []byte("AIFF")) || bytes.Equal(form, []byte("AIFC"))
}

func (Prober) Probe(r io.ReadSeeker) (audio.StreamInfo, error) {
	return probe(decoder{aiff.NewDecoder(r)})
}

func probe(dec aiffReader) (audio.StreamInfo, error) {
	if !dec.IsValidFile() {
		return audio.StreamInfo{}, ErrNotAiffFile
	}

	dec.ReadInfo()

	format := dec.Format()
	if format == nil || format.SampleRate <= 0 || format.NumChannels <= 0 {
		return audio.StreamInfo{}, fmt.Errorf("%w: missing or empty COMM chunk", ErrUnsupportedAiffLayout)
	}

	return audio.StreamInfo{
		Container:  Container,
		SampleRate: format.SampleRate,
		Channels:   format.NumChannels,
		BitDepth:   dec.SampleBits(),
	}, nil
}
