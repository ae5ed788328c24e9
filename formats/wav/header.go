// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/riff"
	"github.com/ik5/wavconv/audio"
)

const (
	wavFormatPCM        = 0x0001
	wavFormatIEEEFloat  = 0x0003
	wavFormatExtensible = 0xFFFE

	fmtChunkSizePCM   = 16
	fmtChunkSizeFloat = 18
	fmtChunkSizeExt   = 40
	extensibleCbSize  = 22
)

// ksSubFormatTail is bytes 2..15 of every KSDATAFORMAT_SUBTYPE_* GUID; the
// first two bytes carry the plain format tag.
var ksSubFormatTail = [14]byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71}

var factID = [4]byte{'f', 'a', 'c', 't'}

// Header is everything the inspector learns from the chunks preceding the
// sample data.
type Header struct {
	audio.Descriptor

	// FormatTag is the tag as declared, possibly WAVE_FORMAT_EXTENSIBLE.
	FormatTag uint16
	// SubFormat is the effective tag after resolving the extensible GUID.
	SubFormat     uint16
	BitsPerSample uint16
	ValidBits     uint16
	ChannelMask   uint32
	BlockAlign    uint16

	// DataOffset is where the first sample byte sits, relative to the
	// position of the reader when ReadHeader was called.
	DataOffset int64
	// DataSize is the declared length of the data chunk body.
	DataSize int64
}

// Extensible reports whether the fmt chunk used WAVE_FORMAT_EXTENSIBLE.
func (h *Header) Extensible() bool {
	return h.FormatTag == wavFormatExtensible
}

// Frames is the number of frames the data chunk declares.
func (h *Header) Frames() int64 {
	if h.BlockAlign == 0 {
		return 0
	}

	return h.DataSize / int64(h.BlockAlign)
}

// Inspect reads the header of the WAV file at path and returns its format
// descriptor. Sample data is not loaded.
func Inspect(path string) (audio.Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return audio.Descriptor{}, fmt.Errorf("%w: %w", ErrUnreadableFile, err)
	}
	defer f.Close()

	return InspectReader(f)
}

// InspectReader is Inspect for an already open stream.
func InspectReader(r io.Reader) (audio.Descriptor, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return audio.Descriptor{}, err
	}

	return h.Descriptor, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)

	return n, err
}

// skip moves n bytes forward, seeking when the underlying reader allows it.
func (c *countingReader) skip(n int64) error {
	if n <= 0 {
		return nil
	}

	if s, ok := c.r.(io.Seeker); ok {
		if _, err := s.Seek(n, io.SeekCurrent); err != nil {
			return err
		}
		c.n += n

		return nil
	}

	copied, err := io.CopyN(io.Discard, c, n)
	if copied < n && err == nil {
		err = io.ErrUnexpectedEOF
	}

	return err
}

func headerErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", ErrUnreadableFile, ErrTruncatedHeader)
	}

	return fmt.Errorf("%w: %w", ErrUnreadableFile, err)
}

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrUnreadableFile, ErrCorruptHeader, fmt.Sprintf(format, args...))
}

// ReadHeader walks the RIFF chunks of r until both the fmt and data chunks
// are found. Chunks it does not know are skipped, and the data chunk body is
// never read. On return r is positioned at the first sample byte when the
// data chunk follows the fmt chunk.
func ReadHeader(r io.Reader) (*Header, error) {
	cr := &countingReader{r: r}
	p := riff.New(cr)

	id, size, err := p.IDnSize()
	if err != nil {
		return nil, headerErr(err)
	}

	if id != riff.RiffID {
		return nil, fmt.Errorf("%w: %w: magic %q", ErrUnreadableFile, ErrNotWavFile, id[:])
	}
	p.ID, p.Size = id, size

	if err := binary.Read(cr, binary.BigEndian, &p.Format); err != nil {
		return nil, headerErr(err)
	}

	if p.Format != riff.WavFormatID {
		return nil, fmt.Errorf("%w: %w: RIFF form %q", ErrUnreadableFile, ErrNotWavFile, p.Format[:])
	}

	var (
		h          *Header
		dataFound  bool
		dataOffset int64
		dataSize   int64
	)

	for !(dataFound && h != nil) {
		id, size, err := p.IDnSize()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, headerErr(err)
		}

		pad := int64(size & 1)

		switch id {
		case riff.FmtID:
			if h != nil {
				return nil, corrupt("duplicate fmt chunk")
			}

			body := &io.LimitedReader{R: cr, N: int64(size)}
			h, err = parseFmt(&riff.Chunk{ID: id, Size: int(size), R: body})
			if err != nil {
				return nil, err
			}

			if err := cr.skip(body.N); err != nil {
				return nil, headerErr(err)
			}
			// a missing pad byte at the very end of a file is tolerated
			_ = cr.skip(pad)

		case riff.DataFormatID:
			dataFound = true
			dataOffset = cr.n
			dataSize = int64(size)

			if h == nil {
				// data before fmt: the body is skipped, Decode seeks back to it
				_ = cr.skip(dataSize + pad)
			}

		default:
			_ = cr.skip(int64(size) + pad)
		}
	}

	if h == nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableFile, ErrMissingFmtChunk)
	}

	if !dataFound {
		return nil, fmt.Errorf("%w: %w", ErrUnreadableFile, ErrMissingDataChunk)
	}

	h.DataOffset = dataOffset
	h.DataSize = dataSize

	return h, nil
}

// parseFmt decodes the fmt chunk and resolves the sample format. Corrupt
// fields fail with ErrUnreadableFile, valid but unknown formats with
// ErrUnsupportedFormat.
func parseFmt(chunk *riff.Chunk) (*Header, error) {
	if chunk.Size < fmtChunkSizePCM {
		return nil, corrupt("fmt chunk is %d bytes", chunk.Size)
	}

	var (
		tag, channels, blockAlign, bits uint16
		sampleRate, byteRate            uint32
	)

	for _, field := range []any{&tag, &channels, &sampleRate, &byteRate, &blockAlign, &bits} {
		if err := chunk.ReadLE(field); err != nil {
			return nil, headerErr(err)
		}
	}

	h := &Header{
		FormatTag:     tag,
		SubFormat:     tag,
		BitsPerSample: bits,
		ValidBits:     bits,
		BlockAlign:    blockAlign,
	}

	if tag == wavFormatExtensible {
		if chunk.Size < fmtChunkSizeExt {
			return nil, corrupt("extensible fmt chunk is %d bytes", chunk.Size)
		}

		var (
			cbSize uint16
			guid   [16]byte
		)

		for _, field := range []any{&cbSize, &h.ValidBits, &h.ChannelMask, &guid} {
			if err := chunk.ReadLE(field); err != nil {
				return nil, headerErr(err)
			}
		}

		if cbSize < extensibleCbSize {
			return nil, corrupt("extensible cbSize %d", cbSize)
		}

		if !bytes.Equal(guid[2:], ksSubFormatTail[:]) {
			return nil, fmt.Errorf("%w: unknown sub-format GUID % x", ErrUnsupportedFormat, guid)
		}

		h.SubFormat = binary.LittleEndian.Uint16(guid[:2])
	}

	if channels == 0 {
		return nil, corrupt("zero channels")
	}

	if sampleRate == 0 {
		return nil, corrupt("zero sample rate")
	}

	var enc audio.Encoding

	switch h.SubFormat {
	case wavFormatPCM:
		enc = audio.SignedInteger
		if bits == 8 {
			enc = audio.UnsignedInteger
		}
	case wavFormatIEEEFloat:
		enc = audio.FloatingPoint
	default:
		return nil, fmt.Errorf("%w: format tag %#04x", ErrUnsupportedFormat, h.SubFormat)
	}

	format := audio.FormatFor(int(bits), enc)
	if !format.Supported() {
		return nil, fmt.Errorf("%w: format tag %#04x with %d bits per sample", ErrUnsupportedFormat, h.SubFormat, bits)
	}

	h.Descriptor = audio.Descriptor{
		SampleRate: int(sampleRate),
		Channels:   int(channels),
		Format:     format,
	}

	if int(blockAlign) != h.Descriptor.BlockAlign() {
		return nil, corrupt("block align %d, want %d", blockAlign, h.Descriptor.BlockAlign())
	}

	return h, nil
}
