// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ik5/wavconv/audio"
	"github.com/ik5/wavconv/utils"
)

// Decode reads every frame of the WAV file at path into a normalized
// buffer. d must be the descriptor Inspect returned for the same file.
func Decode(path string, d audio.Descriptor) (*audio.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableFile, err)
	}
	defer f.Close()

	return decode(f, d)
}

// DecodeReader is Decode for a stream. Readers that cannot seek are read
// into memory first.
func DecodeReader(r io.Reader, d audio.Descriptor) (*audio.Buffer, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnreadableFile, err)
		}
		rs = bytes.NewReader(data)
	}

	return decode(rs, d)
}

func decode(rs io.ReadSeeker, d audio.Descriptor) (*audio.Buffer, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableFile, err)
	}

	h, err := ReadHeader(rs)
	if err != nil {
		return nil, err
	}

	if h.Descriptor != d {
		return nil, fmt.Errorf("%w: %w: file is %v, caller passed %v", ErrDecode, ErrDescriptorMismatch, h.Descriptor, d)
	}

	if h.DataSize%int64(d.BlockAlign()) != 0 {
		return nil, fmt.Errorf("%w: %w: %d bytes with %d-byte frames", ErrDecode, ErrFrameMisaligned, h.DataSize, d.BlockAlign())
	}

	end, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	dataStart := start + h.DataOffset
	if available := end - dataStart; available < h.DataSize {
		return nil, fmt.Errorf("%w: %w: %d of %d bytes", ErrDecode, ErrTruncatedData, max(available, 0), h.DataSize)
	}

	if _, err := rs.Seek(dataStart, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	raw := make([]byte, h.DataSize)
	if _, err := io.ReadFull(rs, raw); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %w", ErrDecode, ErrTruncatedData)
		}

		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return DecodeSamples(raw, d)
}

// DecodeSamples converts a bare interleaved little-endian payload into a
// normalized buffer. Integer samples are divided by the full scale of their
// width; float samples are copied and clamped to [-1, 1].
func DecodeSamples(raw []byte, d audio.Descriptor) (*audio.Buffer, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if len(raw)%d.BlockAlign() != 0 {
		return nil, fmt.Errorf("%w: %w: %d bytes with %d-byte frames", ErrDecode, ErrFrameMisaligned, len(raw), d.BlockAlign())
	}

	buf := audio.NewBuffer(d.Channels, d.SampleRate, len(raw)/d.BlockAlign())
	out := buf.Data

	switch d.Format {
	case audio.PCMU8:
		for i, b := range raw {
			out[i] = utils.Uint8ToFloat(b)
		}
	case audio.PCM16:
		for i := range out {
			v := int16(binary.LittleEndian.Uint16(raw[2*i:]))
			out[i] = utils.IntToFloat(int32(v), 16)
		}
	case audio.PCM24:
		for i := range out {
			b := raw[3*i : 3*i+3]
			// shift into the top of an int32 and back to sign extend
			v := int32(uint32(b[0])<<8|uint32(b[1])<<16|uint32(b[2])<<24) >> 8
			out[i] = utils.IntToFloat(v, 24)
		}
	case audio.PCM32:
		for i := range out {
			v := int32(binary.LittleEndian.Uint32(raw[4*i:]))
			out[i] = utils.IntToFloat(v, 32)
		}
	case audio.Float32:
		for i := range out {
			v := math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:]))
			out[i] = utils.Clamp(float64(v))
		}
	case audio.Float64:
		for i := range out {
			v := math.Float64frombits(binary.LittleEndian.Uint64(raw[8*i:]))
			out[i] = utils.Clamp(v)
		}
	default:
		return nil, fmt.Errorf("%w: %w", ErrDecode, audio.ErrUnknownSampleFormat)
	}

	return buf, nil
}
