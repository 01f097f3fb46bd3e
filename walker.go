package mp42srt

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Options configure a Walk. The zero value walks silently.
type Options struct {
	// Trace receives one line per visited box when non-nil.
	Trace io.Writer
}

func (o Options) trace(h Header) {
	if o.Trace == nil {
		return
	}
	fmt.Fprintf(o.Trace, "BOX: %s size: %d @ pos: %d\n", h.Type, h.Size, h.Offset)
}

// Result accumulates what a walk found. Fields stay nil for boxes that
// were absent or could not be decoded before the walk ended.
type Result struct {
	Ftyp  *FtypInfo    // file type box
	Movie *MovieHeader // timing fields from mvhd
	XML   []byte       // embedded xml payload, NUL bytes stripped
}

// Walk traverses the box stream from offset 0 and decodes the boxes it
// recognizes: ftyp, mvhd and meta payloads are read and decoded, moov
// is descended into, everything else is skipped unread.
//
// The returned error is the condition that terminated the walk; it is
// nil when the stream simply ended. Either way the Result holds
// whatever was decoded up to that point.
func Walk(rs io.ReadSeeker, opts Options) (Result, error) {
	var res Result

	sc := NewScanner(rs)
	for sc.Next() {
		h := sc.Header()
		opts.trace(h)

		switch h.Kind {
		case KindFtyp:
			buf, err := scanBody(&sc, h)
			if err != nil {
				return res, err
			}
			info, err := ReadFtyp(buf)
			if err != nil {
				return res, err
			}
			res.Ftyp = &info
		case KindMoov:
			buf, err := scanBody(&sc, h)
			if err != nil {
				return res, err
			}
			if err := walkChildren(buf, h.Offset+int64(h.HeaderSize), opts, &res); err != nil {
				return res, err
			}
		case KindMvhd:
			buf, err := scanBody(&sc, h)
			if err != nil {
				return res, err
			}
			m, err := DecodeMvhd(buf)
			if err != nil {
				return res, err
			}
			res.Movie = &m
		case KindMeta:
			buf, err := scanBody(&sc, h)
			if err != nil {
				return res, err
			}
			if x, ok := DecodeMeta(buf); ok {
				res.XML = x
			}
		}
	}
	return res, sc.Err()
}

// scanBody reads the current box's payload into a fresh buffer.
func scanBody(sc *Scanner, h Header) ([]byte, error) {
	buf := make([]byte, h.DataSize())
	if err := sc.ReadBody(buf); err != nil {
		return nil, errors.Wrapf(err, "%s box", h.Type)
	}
	return buf, nil
}

// walkChildren iterates a container's contents with a Reader. The loop
// is flat: containers push a frame instead of recursing, and exhausted
// levels pop back to their parent until depth 0 runs out.
func walkChildren(buf []byte, base int64, opts Options, res *Result) error {
	r := NewReader(buf, base)
	for {
		if !r.Next() {
			if r.Err() != nil {
				return r.Err()
			}
			if r.Depth() == 0 {
				return nil
			}
			r.Exit()
			continue
		}

		h := r.Header()
		opts.trace(h)

		switch h.Kind {
		case KindMoov:
			r.Enter()
		case KindMvhd:
			m, err := DecodeMvhd(r.Data())
			if err != nil {
				return err
			}
			res.Movie = &m
		case KindMeta:
			if x, ok := DecodeMeta(r.Data()); ok {
				res.XML = x
			}
		}
		if r.Err() != nil {
			return r.Err()
		}
	}
}
