// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"sync"
)

// StreamInfo is what a Prober learned about a container it recognized.
type StreamInfo struct {
	Container  string
	SampleRate int
	Channels   int
	// BitDepth is 0 when the container has no fixed sample width (MP3, Vorbis).
	BitDepth int
}

func (si StreamInfo) String() string {
	s := fmt.Sprintf("%s, %d Hz, %d ch", si.Container, si.SampleRate, si.Channels)
	if si.BitDepth > 0 {
		s += fmt.Sprintf(", %d-bit", si.BitDepth)
	}

	return s
}

type Prober interface {
	// Sniff reports whether the first bytes of a file look like this container.
	Sniff(head []byte) bool
	// Probe parses enough of r to report the stream parameters. It never decodes audio.
	Probe(r io.ReadSeeker) (StreamInfo, error)
}

// SniffLen is the number of leading bytes handed to Prober.Sniff.
const SniffLen = 12

// Registry for probers by container key (e.g., "aiff", "mp3", "ogg vorbis").
type Registry struct {
	probers map[string]Prober
	order   []string

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		probers: make(map[string]Prober),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, p Prober) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.probers[format]; !ok {
		r.order = append(r.order, format)
	}

	r.probers[format] = p
}

func (r *Registry) Get(format string) (Prober, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	p, ok := r.probers[format]
	return p, ok
}

// Formats lists registered keys in registration order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return append([]string(nil), r.order...)
}

// Identify runs every prober whose Sniff matches the head of rs, in
// registration order, and returns the first successful probe.
// rs is rewound before each attempt.
func (r *Registry) Identify(rs io.ReadSeeker) (StreamInfo, error) {
	head := make([]byte, SniffLen)

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return StreamInfo{}, err
	}

	n, err := io.ReadFull(rs, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return StreamInfo{}, fmt.Errorf("%w: %w", ErrNotIdentified, err)
	}
	head = head[:n]

	var lastErr error
	for _, name := range r.Formats() {
		p, _ := r.Get(name)
		if !p.Sniff(head) {
			continue
		}

		if _, err := rs.Seek(0, io.SeekStart); err != nil {
			return StreamInfo{}, err
		}

		info, err := p.Probe(rs)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", name, err)
			continue
		}

		return info, nil
	}

	if lastErr != nil {
		return StreamInfo{}, fmt.Errorf("%w: %w", ErrNotIdentified, lastErr)
	}

	return StreamInfo{}, ErrNotIdentified
}
