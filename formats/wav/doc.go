// SPDX-License-Identifier: EPL-2.0

// Package wav provides lossless WAV inspection, decoding and encoding.
//
// It is split in two layers: the format inspector, which reads the RIFF
// header only, and the sample codec, which converts the data chunk to and
// from normalized float64 samples.
//
// # Supported Formats
//
//   - PCM 8-bit (unsigned), 16-bit, 24-bit and 32-bit
//   - IEEE float 32-bit and 64-bit
//   - Any channel count and sample rate
//   - WAVE_FORMAT_EXTENSIBLE headers whose sub-format is PCM or IEEE float
//
// Anything else fails with ErrUnsupportedFormat. Unknown formats are never
// treated as 16-bit PCM.
//
// # Inspecting WAV Files
//
//	d, err := wav.Inspect("input.wav")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(d.BitDepth(), d.SampleRate, d.Channels, d.Label())
//
// ReadHeader returns the full header including the raw format tag, the
// extensible fields and the position of the data chunk.
//
// # Decoding WAV Files
//
//	buf, err := wav.Decode("input.wav", d)
//
// The returned buffer holds float64 samples in [-1.0, 1.0]. Integer samples
// are divided by the full scale of their width (32768 for 16-bit), float
// samples are clamped.
//
// # Writing WAV Files
//
//	err := wav.Encode(buf, d, "output.wav")
//
// The output header carries exactly the descriptor passed in. Integer
// samples are rounded to nearest and saturated, so +1.0 becomes 32767 in a
// 16-bit file instead of wrapping. WriteWAV writes to any io.Writer and
// Marshal returns the file as bytes.
//
// # Error Handling
//
// Every error wraps one class:
//   - ErrUnreadableFile: missing file, bad magic, truncated or corrupt header
//   - ErrUnsupportedFormat: valid header with an unhandled format
//   - ErrDecode: data chunk inconsistent with the header
//   - ErrEncode: invalid target or write failure
//
// and usually a more specific cause (ErrNotWavFile, ErrTruncatedData, ...):
//
//	_, err := wav.Inspect(path)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
//
// # File Format
//
// WAV files consist of:
//   - RIFF header (12 bytes)
//   - fmt chunk: audio format, channels, sample rate, block align, bit depth
//   - fact chunk (float files written by this package)
//   - data chunk: interleaved little-endian samples
//
// Chunks other than fmt and data are skipped on read and are not written.
package wav
