// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidBufferSize   = errors.New("buffer size must be multiple of channels")
	ErrInvalidDescriptor   = errors.New("invalid format descriptor")
	ErrUnknownSampleFormat = errors.New("unknown sample format")
	ErrChannelMismatch     = errors.New("channel count does not match descriptor")
	ErrNilBuffer           = errors.New("nil sample buffer")
	ErrNotIdentified       = errors.New("container not identified")
)
