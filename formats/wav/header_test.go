// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/ik5/wavconv/audio"
	"github.com/ik5/wavconv/internal/audiotest"
)

// nonSeeker hides Seek so the discard path of the chunk walker is used.
type nonSeeker struct {
	r io.Reader
}

func (n nonSeeker) Read(p []byte) (int, error) { return n.r.Read(p) }

func TestInspectReader_SupportedFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec audiotest.WAVSpec
		data []byte
		want audio.Descriptor
	}{
		{
			name: "8-bit unsigned",
			spec: audiotest.PCMSpec(8000, 1, 8),
			data: []byte{128, 255, 0, 128},
			want: audio.Descriptor{SampleRate: 8000, Channels: 1, Format: audio.PCMU8},
		},
		{
			name: "16-bit stereo",
			spec: audiotest.PCMSpec(44100, 2, 16),
			data: audiotest.PCM16(1, 2, 3, 4),
			want: audio.Descriptor{SampleRate: 44100, Channels: 2, Format: audio.PCM16},
		},
		{
			name: "24-bit",
			spec: audiotest.PCMSpec(96000, 1, 24),
			data: audiotest.PCM24(1, -1),
			want: audio.Descriptor{SampleRate: 96000, Channels: 1, Format: audio.PCM24},
		},
		{
			name: "32-bit int",
			spec: audiotest.PCMSpec(48000, 2, 32),
			data: audiotest.PCM32(1, -1),
			want: audio.Descriptor{SampleRate: 48000, Channels: 2, Format: audio.PCM32},
		},
		{
			name: "32-bit float",
			spec: audiotest.FloatSpec(48000, 1, 32),
			data: audiotest.Float32s(0.5),
			want: audio.Descriptor{SampleRate: 48000, Channels: 1, Format: audio.Float32},
		},
		{
			name: "64-bit float",
			spec: audiotest.FloatSpec(22050, 6, 64),
			data: audiotest.Float64s(0, 0, 0, 0, 0, 0),
			want: audio.Descriptor{SampleRate: 22050, Channels: 6, Format: audio.Float64},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := InspectReader(bytes.NewReader(audiotest.BuildWAV(tt.spec, tt.data)))
			if err != nil {
				t.Fatalf("InspectReader() error = %v, want nil", err)
			}

			if got != tt.want {
				t.Errorf("InspectReader() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInspectReader_Extensible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tag  uint16
		bits uint16
		want audio.SampleFormat
	}{
		{"pcm 24", audiotest.TagPCM, 24, audio.PCM24},
		{"pcm 16", audiotest.TagPCM, 16, audio.PCM16},
		{"float 32", audiotest.TagIEEEFloat, 32, audio.Float32},
		{"float 64", audiotest.TagIEEEFloat, 64, audio.Float64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			spec := audiotest.WAVSpec{
				FormatTag:     tt.tag,
				Channels:      4,
				SampleRate:    48000,
				BitsPerSample: tt.bits,
				Extensible:    true,
			}

			h, err := ReadHeader(bytes.NewReader(audiotest.BuildWAV(spec, nil)))
			if err != nil {
				t.Fatalf("ReadHeader() error = %v", err)
			}

			if !h.Extensible() {
				t.Error("Extensible() = false, want true")
			}

			if h.SubFormat != tt.tag {
				t.Errorf("SubFormat = %#x, want %#x", h.SubFormat, tt.tag)
			}

			if h.Format != tt.want || h.Channels != 4 || h.SampleRate != 48000 {
				t.Errorf("Descriptor = %v, want %v 48000 Hz 4 ch", h.Descriptor, tt.want)
			}
		})
	}
}

func TestInspectReader_ExtensibleUnknownGUID(t *testing.T) {
	t.Parallel()

	spec := audiotest.WAVSpec{
		FormatTag:     audiotest.TagPCM,
		Channels:      1,
		SampleRate:    8000,
		BitsPerSample: 16,
		Extensible:    true,
	}
	data := audiotest.BuildWAV(spec, nil)

	// corrupt the GUID tail: RIFF(12) + fmt header(8) + 24 bytes into the body
	guidTail := 12 + 8 + 24 + 2
	data[guidTail+5] ^= 0xFF

	_, err := InspectReader(bytes.NewReader(data))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("InspectReader() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestReadHeader_Fields(t *testing.T) {
	t.Parallel()

	data := audiotest.PCM16WAV(8000, 2, 1, 2, 3, 4, 5, 6)

	h, err := ReadHeader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadHeader() error = %v", err)
	}

	if h.FormatTag != wavFormatPCM || h.Extensible() {
		t.Errorf("FormatTag = %#x, want plain PCM", h.FormatTag)
	}

	if h.DataOffset != 44 {
		t.Errorf("DataOffset = %d, want 44", h.DataOffset)
	}

	if h.DataSize != 12 {
		t.Errorf("DataSize = %d, want 12", h.DataSize)
	}

	if h.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", h.Frames())
	}

	if h.BlockAlign != 4 {
		t.Errorf("BlockAlign = %d, want 4", h.BlockAlign)
	}
}

func TestReadHeader_SkipsUnknownChunks(t *testing.T) {
	t.Parallel()

	spec := audiotest.PCMSpec(16000, 1, 16)
	spec.Before = []audiotest.Chunk{
		{ID: "LIST", Body: []byte("INFOISFT\x04\x00\x00\x00test")},
		{ID: "junk", Body: []byte{1, 2, 3}}, // odd size, padded
	}
	spec.Between = []audiotest.Chunk{{ID: "fact", Body: []byte{2, 0, 0, 0}}}

	data := audiotest.BuildWAV(spec, audiotest.PCM16(100, 200))

	for name, r := range map[string]io.Reader{
		"seeker":     bytes.NewReader(data),
		"non-seeker": nonSeeker{bytes.NewReader(data)},
	} {
		h, err := ReadHeader(r)
		if err != nil {
			t.Fatalf("%s: ReadHeader() error = %v, want nil (should skip unknown chunks)", name, err)
		}

		if h.Format != audio.PCM16 || h.Frames() != 2 {
			t.Errorf("%s: got %v with %d frames", name, h.Descriptor, h.Frames())
		}

		wantOffset := int64(len(data) - 4)
		if h.DataOffset != wantOffset {
			t.Errorf("%s: DataOffset = %d, want %d", name, h.DataOffset, wantOffset)
		}
	}
}

func TestReadHeader_DataBeforeFmt(t *testing.T) {
	t.Parallel()

	spec := audiotest.PCMSpec(8000, 1, 16)
	spec.DataFirst = true
	data := audiotest.BuildWAV(spec, audiotest.PCM16(7, 8, 9))

	h, err := ReadHeader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadHeader() error = %v", err)
	}

	if h.DataOffset != 20 {
		t.Errorf("DataOffset = %d, want 20", h.DataOffset)
	}

	if h.DataSize != 6 {
		t.Errorf("DataSize = %d, want 6", h.DataSize)
	}
}

func TestInspectReader_NotWAVFile(t *testing.T) {
	t.Parallel()

	_, err := InspectReader(bytes.NewReader([]byte("NOT A WAV FILE DATA")))

	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("InspectReader() error = %v, want ErrNotWavFile", err)
	}

	if !errors.Is(err, ErrUnreadableFile) {
		t.Errorf("InspectReader() error = %v, want ErrUnreadableFile class", err)
	}
}

func TestInspectReader_InvalidWAVEMarker(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36))
	buf.WriteString("AIFF") // Invalid WAVE marker

	_, err := InspectReader(buf)

	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("InspectReader() error = %v, want ErrNotWavFile", err)
	}
}

func TestInspectReader_TruncatedHeader(t *testing.T) {
	t.Parallel()

	full := audiotest.PCM16WAV(8000, 1, 1, 2)

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"partial riff id", []byte("RIFF\x00")},
		{"no form type", full[:8]},
		{"partial fmt header", full[:16]},
		{"partial fmt body", full[:30]},
		{"no data chunk header", full[:38]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := InspectReader(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrUnreadableFile) {
				t.Errorf("InspectReader() error = %v, want ErrUnreadableFile", err)
			}
		})
	}
}

func TestInspectReader_MissingChunks(t *testing.T) {
	t.Parallel()

	noData := new(bytes.Buffer)
	noData.WriteString("RIFF")
	binary.Write(noData, binary.LittleEndian, uint32(28))
	noData.WriteString("WAVE")
	noData.Write(audiotest.PCM16WAV(8000, 1)[12:36]) // fmt chunk only

	_, err := InspectReader(noData)
	if !errors.Is(err, ErrMissingDataChunk) {
		t.Errorf("InspectReader() error = %v, want ErrMissingDataChunk", err)
	}

	noFmt := new(bytes.Buffer)
	noFmt.WriteString("RIFF")
	binary.Write(noFmt, binary.LittleEndian, uint32(14))
	noFmt.WriteString("WAVE")
	noFmt.WriteString("data")
	binary.Write(noFmt, binary.LittleEndian, uint32(2))
	noFmt.Write([]byte{1, 2})

	_, err = InspectReader(noFmt)
	if !errors.Is(err, ErrMissingFmtChunk) {
		t.Errorf("InspectReader() error = %v, want ErrMissingFmtChunk", err)
	}
}

func TestInspectReader_CorruptHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec audiotest.WAVSpec
	}{
		{"zero channels", audiotest.WAVSpec{FormatTag: audiotest.TagPCM, Channels: 0, SampleRate: 8000, BitsPerSample: 16}},
		{"zero sample rate", audiotest.WAVSpec{FormatTag: audiotest.TagPCM, Channels: 1, SampleRate: 0, BitsPerSample: 16, ByteRate: 2}},
		{"bad block align", audiotest.WAVSpec{FormatTag: audiotest.TagPCM, Channels: 2, SampleRate: 8000, BitsPerSample: 16, BlockAlign: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := InspectReader(bytes.NewReader(audiotest.BuildWAV(tt.spec, nil)))
			if !errors.Is(err, ErrCorruptHeader) || !errors.Is(err, ErrUnreadableFile) {
				t.Errorf("InspectReader() error = %v, want ErrCorruptHeader", err)
			}
		})
	}
}

func TestInspectReader_ShortFmtChunk(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(24))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(8))
	buf.Write(make([]byte, 8))

	_, err := InspectReader(buf)
	if !errors.Is(err, ErrCorruptHeader) {
		t.Errorf("InspectReader() error = %v, want ErrCorruptHeader", err)
	}
}

// TestInspectReader_UnsupportedNeverDefaults makes sure formats outside the
// table are rejected instead of being read as 16-bit PCM.
func TestInspectReader_UnsupportedNeverDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec audiotest.WAVSpec
	}{
		{"12-bit pcm", audiotest.WAVSpec{FormatTag: audiotest.TagPCM, Channels: 1, SampleRate: 8000, BitsPerSample: 12, BlockAlign: 2}},
		{"64-bit pcm", audiotest.PCMSpec(8000, 1, 64)},
		{"16-bit float", audiotest.FloatSpec(8000, 1, 16)},
		{"a-law", audiotest.WAVSpec{FormatTag: audiotest.TagALaw, Channels: 1, SampleRate: 8000, BitsPerSample: 8}},
		{"adpcm", audiotest.WAVSpec{FormatTag: 0x0002, Channels: 1, SampleRate: 8000, BitsPerSample: 4, BlockAlign: 256}},
		{"extensible a-law", audiotest.WAVSpec{FormatTag: audiotest.TagALaw, Channels: 1, SampleRate: 8000, BitsPerSample: 8, Extensible: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d, err := InspectReader(bytes.NewReader(audiotest.BuildWAV(tt.spec, []byte{0, 0})))
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Fatalf("InspectReader() error = %v, want ErrUnsupportedFormat", err)
			}

			if errors.Is(err, ErrUnreadableFile) {
				t.Errorf("InspectReader() error = %v, should not be classed unreadable", err)
			}

			if d.Format != audio.FormatUnsupported {
				t.Errorf("InspectReader() format = %v, want zero descriptor", d.Format)
			}
		})
	}
}

func TestInspect_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Inspect(filepath.Join(t.TempDir(), "missing.wav"))
	if !errors.Is(err, ErrUnreadableFile) {
		t.Errorf("Inspect() error = %v, want ErrUnreadableFile", err)
	}
}

func TestInspect_Directory(t *testing.T) {
	t.Parallel()

	_, err := Inspect(t.TempDir())
	if !errors.Is(err, ErrUnreadableFile) {
		t.Errorf("Inspect() error = %v, want ErrUnreadableFile", err)
	}
}

func TestInspect_File(t *testing.T) {
	t.Parallel()

	path := audiotest.WriteFile(t, t.TempDir(), "in.wav", audiotest.PCM16WAV(44100, 1, 0, 16384, -16384, 32767))

	d, err := Inspect(path)
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	want := audio.Descriptor{SampleRate: 44100, Channels: 1, Format: audio.PCM16}
	if d != want {
		t.Errorf("Inspect() = %v, want %v", d, want)
	}
}

func BenchmarkReadHeader(b *testing.B) {
	data := audiotest.PCM16WAV(44100, 2, make([]int16, 4096)...)

	b.ReportAllocs()

	for range b.N {
		if _, err := ReadHeader(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}
