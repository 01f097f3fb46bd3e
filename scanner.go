package mp42srt

import (
	"io"

	"github.com/pkg/errors"
)

// Scanner reads top-level box headers from an io.ReadSeeker without
// loading box contents into memory. Callers discover box positions and
// sizes, then selectively read only the boxes they need (e.g. moov)
// into a buffer for parsing with NewReader.
//
// Typical usage:
//
//	f, _ := os.Open("video.mp4")
//	sc := mp42srt.NewScanner(f)
//	for sc.Next() {
//	    h := sc.Header()
//	    if h.Kind == mp42srt.KindMoov {
//	        buf := make([]byte, h.DataSize())
//	        sc.ReadBody(buf)
//	        // parse moov contents...
//	    }
//	}
//
// A short read while decoding a minimal 8-byte header is a normal end
// of stream and leaves Err nil. A declared size of zero (or any size
// smaller than the header it was decoded from) stops the scan with
// ErrInvalidBoxSize, since such a box cannot be skipped. A declared
// size reaching past the end of the stream stops it with
// ErrTruncatedInput.
type Scanner struct {
	rs     io.ReadSeeker
	hdr    [16]byte // reusable header buffer
	head   Header
	err    error
	pos    int64 // current position in stream
	length int64 // total stream length, measured on first Next
	init   bool
}

// NewScanner creates a Scanner that reads box headers from rs.
func NewScanner(rs io.ReadSeeker) Scanner {
	return Scanner{rs: rs}
}

// Next advances to the next top-level box. Returns false when there
// are no more boxes or an error occurs. Check Err() after the loop.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}

	if !s.init {
		end, err := s.rs.Seek(0, io.SeekEnd)
		if err != nil {
			s.err = errors.Wrap(err, "measure stream length")
			return false
		}
		if _, err := s.rs.Seek(0, io.SeekStart); err != nil {
			s.err = errors.Wrap(err, "rewind stream")
			return false
		}
		s.length = end
		s.init = true
	}

	// Read the minimum 8-byte header
	if _, err := io.ReadFull(s.rs, s.hdr[:8]); err != nil {
		if err != io.EOF && err != io.ErrUnexpectedEOF {
			s.err = errors.Wrap(err, "read box header")
		}
		return false
	}

	boxStart := s.pos
	size := int64(be.Uint32(s.hdr[:4]))
	var t BoxType
	copy(t[:], s.hdr[4:8])

	headerSize := 8

	if size == 1 {
		// Extended 64-bit size
		if _, err := io.ReadFull(s.rs, s.hdr[8:16]); err != nil {
			s.err = errors.Wrapf(ErrTruncatedInput, "extended size of %s at offset %d", t, boxStart)
			return false
		}
		size = int64(be.Uint64(s.hdr[8:16]))
		headerSize = 16
	}

	if size < int64(headerSize) {
		s.err = errors.Wrapf(ErrInvalidBoxSize, "%s declares size %d at offset %d", t, size, boxStart)
		return false
	}

	// A declared size past the end of the stream can neither be read
	// nor skipped, and bounds every later payload allocation.
	if size > s.length-boxStart {
		s.err = errors.Wrapf(ErrTruncatedInput, "%s declares size %d past end of stream at offset %d", t, size, boxStart)
		return false
	}

	s.head = Header{
		Type:       t,
		Kind:       KindOf(t),
		Size:       size,
		Offset:     boxStart,
		HeaderSize: headerSize,
	}

	// Skip past this box's data to position for the next call
	if dataSize := size - int64(headerSize); dataSize > 0 {
		if _, err := s.rs.Seek(dataSize, io.SeekCurrent); err != nil {
			s.err = errors.Wrap(err, "seek past box data")
			return false
		}
	}
	s.pos = boxStart + size

	return true
}

// Header returns the current box header. Only valid after Next returns true.
func (s *Scanner) Header() Header {
	return s.head
}

// Err returns the terminal error, if any. A clean end of stream leaves
// it nil.
func (s *Scanner) Err() error {
	return s.err
}

// ReadBody reads the current box's data (excluding header) into buf.
// buf must be exactly DataSize() bytes. The scanner seeks to the data
// position, reads, then seeks back so that subsequent Next calls work
// correctly.
func (s *Scanner) ReadBody(buf []byte) error {
	dataOffset := s.head.Offset + int64(s.head.HeaderSize)

	// Save current position (which is past this box)
	saved := s.pos

	if _, err := s.rs.Seek(dataOffset, io.SeekStart); err != nil {
		return errors.Wrap(err, "seek to box data")
	}
	if _, err := io.ReadFull(s.rs, buf); err != nil {
		return errors.Wrapf(ErrTruncatedInput, "%s data at offset %d", s.head.Type, dataOffset)
	}

	// Restore position
	if _, err := s.rs.Seek(saved, io.SeekStart); err != nil {
		return errors.Wrap(err, "restore scan position")
	}
	return nil
}
