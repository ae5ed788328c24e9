// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	goaudio "github.com/go-audio/audio"
)

// Buffer holds a whole decoded stream as interleaved float64 samples
// normalized to [-1, 1].
//
// It wraps a go-audio FloatBuffer so the data can be handed to any
// go-audio based processing without copying.
type Buffer struct {
	*goaudio.FloatBuffer
}

// NewBuffer allocates a silent buffer of frames*channels samples.
func NewBuffer(channels, sampleRate, frames int) *Buffer {
	return &Buffer{
		FloatBuffer: &goaudio.FloatBuffer{
			Format: &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			Data:   make([]float64, frames*channels),
		},
	}
}

// WrapSamples builds a Buffer around already interleaved samples.
// It fails when len(data) is not a multiple of channels.
func WrapSamples(channels, sampleRate int, data []float64) (*Buffer, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidBufferSize, channels)
	}

	if len(data)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples for %d channels", ErrInvalidBufferSize, len(data), channels)
	}

	return &Buffer{
		FloatBuffer: &goaudio.FloatBuffer{
			Format: &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			Data:   data,
		},
	}, nil
}

// Channels returns the number of interleaved channels, 0 for an empty wrapper.
func (b *Buffer) Channels() int {
	if b == nil || b.FloatBuffer == nil || b.Format == nil {
		return 0
	}

	return b.Format.NumChannels
}

// SampleRate returns the rate recorded with the samples.
func (b *Buffer) SampleRate() int {
	if b == nil || b.FloatBuffer == nil || b.Format == nil {
		return 0
	}

	return b.Format.SampleRate
}

// Frames returns the number of complete frames.
func (b *Buffer) Frames() int {
	ch := b.Channels()
	if ch == 0 {
		return 0
	}

	return len(b.Data) / ch
}

// Frame returns the samples of frame i. The slice aliases the buffer.
func (b *Buffer) Frame(i int) []float64 {
	ch := b.Channels()

	return b.Data[i*ch : (i+1)*ch]
}

// Sample returns one sample of one channel.
func (b *Buffer) Sample(frame, channel int) float64 {
	return b.Data[frame*b.Channels()+channel]
}

// Check verifies that the buffer is usable with descriptor d.
func (b *Buffer) Check(d Descriptor) error {
	if b == nil || b.FloatBuffer == nil || b.Format == nil {
		return ErrNilBuffer
	}

	if b.Format.NumChannels != d.Channels {
		return fmt.Errorf("%w: buffer has %d, descriptor %d", ErrChannelMismatch, b.Format.NumChannels, d.Channels)
	}

	if d.Channels <= 0 || len(b.Data)%d.Channels != 0 {
		return fmt.Errorf("%w: %d samples for %d channels", ErrInvalidBufferSize, len(b.Data), d.Channels)
	}

	return nil
}
