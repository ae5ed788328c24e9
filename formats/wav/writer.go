// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/go-audio/riff"
	"github.com/google/uuid"
	"github.com/ik5/wavconv/audio"
	"github.com/ik5/wavconv/utils"
)

const (
	riffHeaderSize  = 12
	chunkHeaderSize = 8
	factBodySize    = 4

	// samples encoded per Write call
	writeChunkSamples = 8192
)

// headerLen is the size of everything before the first sample byte.
// PCM uses the canonical 44-byte layout, float adds cbSize and a fact chunk.
func headerLen(d audio.Descriptor) int {
	if d.Format.IsFloat() {
		return riffHeaderSize + chunkHeaderSize + fmtChunkSizeFloat + chunkHeaderSize + factBodySize + chunkHeaderSize
	}

	return riffHeaderSize + chunkHeaderSize + fmtChunkSizePCM + chunkHeaderSize
}

func encodeErr(err error) error {
	if errors.Is(err, ErrEncode) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrEncode, err)
}

// checkEncodable validates the target before anything is written.
func checkEncodable(buf *audio.Buffer, d audio.Descriptor) error {
	if err := d.Validate(); err != nil {
		return encodeErr(err)
	}

	if d.Channels > math.MaxUint16 || int64(d.ByteRate()) > math.MaxUint32 {
		return encodeErr(fmt.Errorf("%w: %v does not fit a fmt chunk", audio.ErrInvalidDescriptor, d))
	}

	if err := buf.Check(d); err != nil {
		return encodeErr(err)
	}

	dataSize := int64(len(buf.Data)) * int64(d.Format.BytesPerSample())
	if int64(headerLen(d))-chunkHeaderSize+dataSize+1 > math.MaxUint32 {
		return encodeErr(fmt.Errorf("%w: %d bytes", ErrDataTooLarge, dataSize))
	}

	return nil
}

// WriteWAV writes buf as a complete WAV container whose header carries
// exactly the sample rate, channel count and sample format of d.
func WriteWAV(w io.Writer, buf *audio.Buffer, d audio.Descriptor) error {
	if err := checkEncodable(buf, d); err != nil {
		return err
	}

	frames := buf.Frames()
	dataSize := uint32(frames * d.BlockAlign())
	pad := dataSize & 1

	// Pre-allocate buffer for entire header
	header := make([]byte, headerLen(d))

	// RIFF header (12 bytes)
	copy(header[0:4], riff.RiffID[:])
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(header))-chunkHeaderSize+dataSize+pad)
	copy(header[8:12], riff.WavFormatID[:])

	// fmt chunk
	fmtSize, tag := uint32(fmtChunkSizePCM), uint16(wavFormatPCM)
	if d.Format.IsFloat() {
		fmtSize, tag = fmtChunkSizeFloat, wavFormatIEEEFloat
	}

	off := riffHeaderSize
	copy(header[off:off+4], riff.FmtID[:])
	binary.LittleEndian.PutUint32(header[off+4:], fmtSize)
	binary.LittleEndian.PutUint16(header[off+8:], tag)
	binary.LittleEndian.PutUint16(header[off+10:], uint16(d.Channels))
	binary.LittleEndian.PutUint32(header[off+12:], uint32(d.SampleRate))
	binary.LittleEndian.PutUint32(header[off+16:], uint32(d.ByteRate()))
	binary.LittleEndian.PutUint16(header[off+20:], uint16(d.BlockAlign()))
	binary.LittleEndian.PutUint16(header[off+22:], uint16(d.BitDepth()))
	// cbSize, when present, stays zero
	off += chunkHeaderSize + int(fmtSize)

	// fact chunk, required for non-PCM tags
	if d.Format.IsFloat() {
		copy(header[off:off+4], factID[:])
		binary.LittleEndian.PutUint32(header[off+4:], factBodySize)
		binary.LittleEndian.PutUint32(header[off+8:], uint32(frames))
		off += chunkHeaderSize + factBodySize
	}

	// data chunk header
	copy(header[off:off+4], riff.DataFormatID[:])
	binary.LittleEndian.PutUint32(header[off+4:], dataSize)

	// Write header in one operation
	if _, err := w.Write(header); err != nil {
		return encodeErr(err)
	}

	if len(buf.Data) == 0 {
		return nil
	}

	width := d.Format.BytesPerSample()
	chunk := make([]byte, min(len(buf.Data), writeChunkSamples)*width)

	for i := 0; i < len(buf.Data); i += writeChunkSamples {
		end := min(i+writeChunkSamples, len(buf.Data))
		out := chunk[:(end-i)*width]

		encodeInto(out, buf.Data[i:end], d.Format)

		if _, err := w.Write(out); err != nil {
			return encodeErr(err)
		}
	}

	if pad == 1 {
		if _, err := w.Write([]byte{0}); err != nil {
			return encodeErr(err)
		}
	}

	return nil
}

// EncodeSamples returns the bare interleaved payload for buf in format d.
func EncodeSamples(buf *audio.Buffer, d audio.Descriptor) ([]byte, error) {
	if err := checkEncodable(buf, d); err != nil {
		return nil, err
	}

	out := make([]byte, len(buf.Data)*d.Format.BytesPerSample())
	encodeInto(out, buf.Data, d.Format)

	return out, nil
}

// Marshal returns a complete WAV file for buf in memory.
func Marshal(buf *audio.Buffer, d audio.Descriptor) ([]byte, error) {
	if err := checkEncodable(buf, d); err != nil {
		return nil, err
	}

	out := new(bytes.Buffer)
	out.Grow(headerLen(d) + len(buf.Data)*d.Format.BytesPerSample() + 1)

	if err := WriteWAV(out, buf, d); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// encodeInto quantizes src into dst, which must hold len(src) samples of f.
func encodeInto(dst []byte, src []float64, f audio.SampleFormat) {
	switch f {
	case audio.PCMU8:
		for i, x := range src {
			dst[i] = utils.FloatToUint8(x)
		}
	case audio.PCM16:
		for i, x := range src {
			binary.LittleEndian.PutUint16(dst[2*i:], uint16(int16(utils.FloatToInt(x, 16))))
		}
	case audio.PCM24:
		for i, x := range src {
			v := uint32(utils.FloatToInt(x, 24))
			dst[3*i] = byte(v)
			dst[3*i+1] = byte(v >> 8)
			dst[3*i+2] = byte(v >> 16)
		}
	case audio.PCM32:
		for i, x := range src {
			binary.LittleEndian.PutUint32(dst[4*i:], uint32(utils.FloatToInt(x, 32)))
		}
	case audio.Float32:
		for i, x := range src {
			binary.LittleEndian.PutUint32(dst[4*i:], math.Float32bits(float32(utils.Clamp(x))))
		}
	case audio.Float64:
		for i, x := range src {
			binary.LittleEndian.PutUint64(dst[8*i:], math.Float64bits(utils.Clamp(x)))
		}
	}
}

// Encode writes buf to outputPath as a WAV file with descriptor d, creating
// or replacing it. The file is written under a temporary name in the same
// directory and renamed into place, so a failed write never leaves a
// partial file behind.
func Encode(buf *audio.Buffer, d audio.Descriptor, outputPath string) error {
	if err := checkEncodable(buf, d); err != nil {
		return err
	}

	return writeFileAtomic(outputPath, func(w io.Writer) error {
		return WriteWAV(w, buf, d)
	})
}

// WriteFile atomically replaces path with data, typically the output of
// Marshal. Failures wrap ErrEncode.
func WriteFile(path string, data []byte) error {
	return writeFileAtomic(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

func writeFileAtomic(path string, write func(io.Writer) error) error {
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return encodeErr(err)
	}

	bw := bufio.NewWriter(f)

	err = write(bw)
	if err == nil {
		err = bw.Flush()
	}

	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err == nil {
		err = os.Rename(tmp, path)
	}

	if err != nil {
		_ = os.Remove(tmp)
		return encodeErr(err)
	}

	return nil
}
