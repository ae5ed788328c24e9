// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// Format tags used by the fixtures.
const (
	TagPCM        uint16 = 0x0001
	TagIEEEFloat  uint16 = 0x0003
	TagALaw       uint16 = 0x0006
	TagExtensible uint16 = 0xFFFE
)

// Chunk is an extra RIFF chunk to place around fmt and data.
type Chunk struct {
	ID   string
	Body []byte
}

// WAVSpec describes a hand-built WAV file. It does not use the production
// encoder, so tests can build malformed inputs with it.
type WAVSpec struct {
	FormatTag     uint16
	Channels      uint16
	SampleRate    uint32
	BitsPerSample uint16
	// BlockAlign and ByteRate are computed when zero.
	BlockAlign uint16
	ByteRate   uint32
	// Extensible wraps FormatTag into a WAVE_FORMAT_EXTENSIBLE sub-format.
	Extensible bool
	ValidBits  uint16
	// Before are written between WAVE and the first of fmt/data, Between
	// after it.
	Before  []Chunk
	Between []Chunk
	// DataFirst puts the data chunk before the fmt chunk.
	DataFirst bool
	// DataSize overrides the declared data chunk size.
	DataSize *uint32
}

// U32 returns a pointer to v, for WAVSpec.DataSize.
func U32(v uint32) *uint32 { return &v }

func writeChunk(buf *bytes.Buffer, id string, body []byte, declared uint32) {
	buf.WriteString(id)
	binary.Write(buf, binary.LittleEndian, declared)
	buf.Write(body)
	if len(body)%2 == 1 {
		buf.WriteByte(0) // Padding byte
	}
}

func (s WAVSpec) fmtBody() []byte {
	body := new(bytes.Buffer)

	blockAlign := s.BlockAlign
	if blockAlign == 0 {
		blockAlign = s.Channels * (s.BitsPerSample / 8)
	}

	byteRate := s.ByteRate
	if byteRate == 0 {
		byteRate = s.SampleRate * uint32(blockAlign)
	}

	tag := s.FormatTag
	if s.Extensible {
		tag = TagExtensible
	}

	binary.Write(body, binary.LittleEndian, tag)
	binary.Write(body, binary.LittleEndian, s.Channels)
	binary.Write(body, binary.LittleEndian, s.SampleRate)
	binary.Write(body, binary.LittleEndian, byteRate)
	binary.Write(body, binary.LittleEndian, blockAlign)
	binary.Write(body, binary.LittleEndian, s.BitsPerSample)

	switch {
	case s.Extensible:
		validBits := s.ValidBits
		if validBits == 0 {
			validBits = s.BitsPerSample
		}

		binary.Write(body, binary.LittleEndian, uint16(22))
		binary.Write(body, binary.LittleEndian, validBits)
		binary.Write(body, binary.LittleEndian, uint32(0)) // channel mask
		body.Write(SubFormatGUID(s.FormatTag))
	case s.FormatTag != TagPCM:
		binary.Write(body, binary.LittleEndian, uint16(0)) // cbSize
	}

	return body.Bytes()
}

// SubFormatGUID returns the KSDATAFORMAT_SUBTYPE GUID for a format tag.
func SubFormatGUID(tag uint16) []byte {
	guid := make([]byte, 16)
	binary.LittleEndian.PutUint16(guid, tag)
	copy(guid[2:], []byte{0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71})

	return guid
}

// BuildWAV assembles a RIFF/WAVE file around data according to spec.
func BuildWAV(spec WAVSpec, data []byte) []byte {
	body := new(bytes.Buffer)
	body.WriteString("WAVE")

	for _, c := range spec.Before {
		writeChunk(body, c.ID, c.Body, uint32(len(c.Body)))
	}

	declared := uint32(len(data))
	if spec.DataSize != nil {
		declared = *spec.DataSize
	}

	fmtBody := spec.fmtBody()

	if spec.DataFirst {
		writeChunk(body, "data", data, declared)
		for _, c := range spec.Between {
			writeChunk(body, c.ID, c.Body, uint32(len(c.Body)))
		}
		writeChunk(body, "fmt ", fmtBody, uint32(len(fmtBody)))
	} else {
		writeChunk(body, "fmt ", fmtBody, uint32(len(fmtBody)))
		for _, c := range spec.Between {
			writeChunk(body, c.ID, c.Body, uint32(len(c.Body)))
		}
		writeChunk(body, "data", data, declared)
	}

	out := new(bytes.Buffer)
	out.WriteString("RIFF")
	binary.Write(out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())

	return out.Bytes()
}

// PCMSpec is the plain WAVSpec for integer PCM.
func PCMSpec(sampleRate, channels, bits int) WAVSpec {
	return WAVSpec{
		FormatTag:     TagPCM,
		Channels:      uint16(channels),
		SampleRate:    uint32(sampleRate),
		BitsPerSample: uint16(bits),
	}
}

// FloatSpec is the plain WAVSpec for IEEE float.
func FloatSpec(sampleRate, channels, bits int) WAVSpec {
	return WAVSpec{
		FormatTag:     TagIEEEFloat,
		Channels:      uint16(channels),
		SampleRate:    uint32(sampleRate),
		BitsPerSample: uint16(bits),
	}
}

// PCM16WAV builds a canonical 16-bit PCM file.
func PCM16WAV(sampleRate, channels int, samples ...int16) []byte {
	return BuildWAV(PCMSpec(sampleRate, channels, 16), PCM16(samples...))
}

// PCM16 encodes little-endian 16-bit samples.
func PCM16(samples ...int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}

	return out
}

// PCM24 encodes the low 24 bits of each sample, little-endian.
func PCM24(samples ...int32) []byte {
	out := make([]byte, 3*len(samples))
	for i, s := range samples {
		out[3*i] = byte(s)
		out[3*i+1] = byte(s >> 8)
		out[3*i+2] = byte(s >> 16)
	}

	return out
}

// PCM32 encodes little-endian 32-bit samples.
func PCM32(samples ...int32) []byte {
	out := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[4*i:], uint32(s))
	}

	return out
}

// Float32s encodes little-endian IEEE singles.
func Float32s(samples ...float32) []byte {
	out := make([]byte, 4*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[4*i:], math.Float32bits(s))
	}

	return out
}

// Float64s encodes little-endian IEEE doubles.
func Float64s(samples ...float64) []byte {
	out := make([]byte, 8*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint64(out[8*i:], math.Float64bits(s))
	}

	return out
}

// WriteFile stores data under dir and returns the full path.
func WriteFile(tb testing.TB, dir, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatalf("writing fixture %s: %v", path, err)
	}

	return path
}
