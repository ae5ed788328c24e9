// SPDX-License-Identifier: EPL-2.0

package converter

import (
	"fmt"
	"strings"

	"github.com/ik5/wavconv/audio"
)

// Record describes a converted file for display.
type Record struct {
	Filename      string
	BitDepth      int
	SampleRate    int
	Channels      int
	EncodingLabel string
}

func newRecord(filename string, d audio.Descriptor) Record {
	return Record{
		Filename:      filename,
		BitDepth:      d.BitDepth(),
		SampleRate:    d.SampleRate,
		Channels:      d.Channels,
		EncodingLabel: d.Label(),
	}
}

func (r Record) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s:\n", r.Filename)
	fmt.Fprintf(&b, "- Bit Depth: %d-bit\n", r.BitDepth)
	fmt.Fprintf(&b, "- Sample Rate: %dHz\n", r.SampleRate)
	fmt.Fprintf(&b, "- Channels: %d\n", r.Channels)
	fmt.Fprintf(&b, "- Format: %s\n", r.EncodingLabel)

	return b.String()
}

// Summary renders the report shown after a successful batch.
func Summary(records []Record) string {
	var b strings.Builder

	b.WriteString("Conversion completed successfully!\n")

	for _, r := range records {
		b.WriteString("\n")
		b.WriteString(r.String())
	}

	return b.String()
}
