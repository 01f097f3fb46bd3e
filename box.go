// Package mp42srt inspects ISO Base Media File Format (ISOBMFF) streams
// and extracts global timing metadata along with optional embedded XML
// metadata. The per-second timecode sequence derived from the movie
// header can be rendered as SRT subtitle cues.
package mp42srt

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

var be = binary.BigEndian

// BoxType is a 4-byte box type identifier.
type BoxType [4]byte

func (t BoxType) String() string {
	return string(t[:])
}

// Known box types.
var (
	TypeFtyp = BoxType{'f', 't', 'y', 'p'}
	TypeMoov = BoxType{'m', 'o', 'o', 'v'}
	TypeMvhd = BoxType{'m', 'v', 'h', 'd'}
	TypeMeta = BoxType{'m', 'e', 't', 'a'}
	TypeXML  = BoxType{'x', 'm', 'l', ' '}
	TypeMdat = BoxType{'m', 'd', 'a', 't'}
	TypeFree = BoxType{'f', 'r', 'e', 'e'}
)

// Kind classifies a box for dispatch. It is assigned once at header
// decode time so walkers switch on a closed set of variants instead of
// comparing type tags at every branch.
type Kind uint8

const (
	KindOpaque Kind = iota // payload is skipped unread
	KindFtyp
	KindMoov // container, descended into
	KindMvhd
	KindMeta
)

// KindOf maps a box type to its dispatch kind.
func KindOf(t BoxType) Kind {
	switch t {
	case TypeFtyp:
		return KindFtyp
	case TypeMoov:
		return KindMoov
	case TypeMvhd:
		return KindMvhd
	case TypeMeta:
		return KindMeta
	}
	return KindOpaque
}

// Header describes one decoded box header.
type Header struct {
	Type       BoxType
	Kind       Kind
	Size       int64 // total box size including header
	Offset     int64 // byte offset from start of stream
	HeaderSize int   // header size (8 or 16 bytes)
}

// DataSize returns the size of the box data (excluding the header).
func (h Header) DataSize() int64 {
	return h.Size - int64(h.HeaderSize)
}

// Decode errors. Walkers treat every one of them as terminal for the
// whole traversal.
var (
	// ErrTruncatedInput means the stream ended inside a fixed-width read.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrInvalidBoxSize means a box declared a size that cannot hold
	// its own header. Such a box cannot be skipped.
	ErrInvalidBoxSize = errors.New("invalid box size")

	// ErrTruncatedField means a box payload is shorter than the fields
	// a decoder needs to read from it.
	ErrTruncatedField = errors.New("payload too short")

	// ErrZeroTimescale means an mvhd box declared a zero timescale,
	// leaving the duration undefined.
	ErrZeroTimescale = errors.New("timescale is zero")
)
