// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/wavconv/audio"
)

// Container is the name reported in audio.StreamInfo.
const Container = "MP3"

// go-mp3 always produces interleaved stereo
const outputChannels = 2

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	SampleRate() int
}

// Prober recognizes MPEG-1/2 Layer III streams, with or without an ID3v2 tag.
type Prober struct{}

func (Prober) Sniff(head []byte) bool {
	if bytes.HasPrefix(head, []byte("ID3")) {
		return true
	}

	// 11-bit frame sync followed by layer bits 01 (Layer III)
	return len(head) >= 2 && head[0] == 0xFF && head[1]&0xE0 == 0xE0 && (head[1]>>1)&0x03 == 0x01
}

// Probe decodes the first frame header to learn the sample rate.
func (Prober) Probe(r io.ReadSeeker) (audio.StreamInfo, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return audio.StreamInfo{}, fmt.Errorf("%w: %w", ErrNotMP3File, err)
	}

	return probe(dec)
}

func probe(dec mp3Reader) (audio.StreamInfo, error) {
	rate := dec.SampleRate()
	if rate <= 0 {
		return audio.StreamInfo{}, fmt.Errorf("%w: sample rate %d", ErrNotMP3File, rate)
	}

	return audio.StreamInfo{
		Container:  Container,
		SampleRate: rate,
		Channels:   outputChannels,
	}, nil
}
