// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrNotVorbisFile indicates the stream has no Vorbis identification header
var ErrNotVorbisFile = errors.New("not an Ogg Vorbis file")
