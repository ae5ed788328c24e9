// SPDX-License-Identifier: EPL-2.0

package converter

import (
	"io"
	"log"
	"runtime"

	"github.com/ik5/wavconv/audio"
	"github.com/ik5/wavconv/formats/aiff"
	"github.com/ik5/wavconv/formats/mp3"
	"github.com/ik5/wavconv/formats/vorbis"
)

// DefaultPrefix is prepended to the input name to form the output name.
const DefaultPrefix = "converted_"

// Config controls a Converter. Zero values are replaced by defaults in New.
type Config struct {
	// Workers bounds the number of files processed at once.
	// Defaults to runtime.NumCPU().
	Workers int

	// OutputDir receives the converted files. Empty means next to each input.
	OutputDir string

	// Prefix is prepended to each output file name.
	Prefix string

	// Logger receives one line per file. Nil discards.
	Logger *log.Logger

	// Debug adds a line per pipeline step.
	Debug bool

	// Probes identifies non-WAV inputs for error messages.
	// Defaults to DefaultProbes().
	Probes *audio.Registry
}

// DefaultConfig returns the configuration New falls back to.
func DefaultConfig() Config {
	return Config{
		Workers: runtime.NumCPU(),
		Prefix:  DefaultPrefix,
		Logger:  log.New(io.Discard, "", 0),
		Probes:  DefaultProbes(),
	}
}

// DefaultProbes returns a registry with every container prober this module
// knows about.
func DefaultProbes() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("aiff", aiff.Prober{})
	r.Register("mp3", mp3.Prober{})
	r.Register("ogg vorbis", vorbis.Prober{})

	return r
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()

	if c.Workers <= 0 {
		c.Workers = def.Workers
	}

	if c.Prefix == "" {
		c.Prefix = def.Prefix
	}

	if c.Logger == nil {
		c.Logger = def.Logger
	}

	if c.Probes == nil {
		c.Probes = def.Probes
	}

	return c
}
