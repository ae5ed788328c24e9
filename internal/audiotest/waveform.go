// SPDX-License-Identifier: EPL-2.0

package audiotest

import "math"

// Waveform generates interleaved samples given sample index and channel.
func Waveform(frames, channels int, fn func(frame, channel int) float64) []float64 {
	out := make([]float64, frames*channels)
	for frame := range frames {
		for ch := range channels {
			out[frame*channels+ch] = fn(frame, ch)
		}
	}

	return out
}

// Sine generates a sine wave at amplitude amp. Each channel is phase shifted
// so channel swaps are detectable.
func Sine(frames, channels, sampleRate int, frequency, amp float64) []float64 {
	return Waveform(frames, channels, func(frame, channel int) float64 {
		t := float64(frame) / float64(sampleRate)
		return amp * math.Sin(2*math.Pi*frequency*t+float64(channel)*math.Pi/4)
	})
}
