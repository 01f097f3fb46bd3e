package mp42srt

import "github.com/pkg/errors"

// maxDepth limits the reader nesting stack.
const maxDepth = 16

// readerFrame stores parent state when entering a container box.
type readerFrame struct {
	end    int // parent's iteration end boundary
	boxEnd int // position to resume after exiting this container
}

// Reader walks boxes inside an in-memory buffer. Traversal state is a
// cursor plus an explicit stack of parent ranges, one frame pushed per
// container box, so every sibling at every nesting level is visited
// exactly once and no node tree is ever built.
type Reader struct {
	buf  []byte
	base int64 // stream offset of buf[0], for reporting positions
	pos  int   // next position to parse from
	end  int   // iteration end boundary
	err  error

	// Current box state
	head      Header
	dataStart int
	boxEnd    int

	// Nesting stack
	stack [maxDepth]readerFrame
	depth int
}

// NewReader creates a Reader for the given buffer. base is the stream
// offset the buffer was read from; it only affects reported offsets.
func NewReader(buf []byte, base int64) Reader {
	return Reader{
		buf:  buf,
		base: base,
		end:  len(buf),
	}
}

// Next advances to the next sibling box. Returns false if no more
// boxes remain at the current level or the buffer is malformed; check
// Err() to tell the two apart.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}

	// Skip past current box
	if r.boxEnd > r.pos {
		r.pos = r.boxEnd
	}

	if r.end-r.pos < 8 {
		return false
	}

	start := r.pos
	size := int64(be.Uint32(r.buf[start:]))
	var t BoxType
	copy(t[:], r.buf[start+4:start+8])

	headerSize := 8

	if size == 1 {
		// Extended 64-bit size
		if r.end-start < 16 {
			r.err = errors.Wrapf(ErrTruncatedInput, "extended size of %s at offset %d", t, r.base+int64(start))
			return false
		}
		size = int64(be.Uint64(r.buf[start+8:]))
		headerSize = 16
	}

	if size < int64(headerSize) {
		r.err = errors.Wrapf(ErrInvalidBoxSize, "%s declares size %d at offset %d", t, size, r.base+int64(start))
		return false
	}

	// Compare against the remaining range before converting to an
	// index: a huge 64-bit size would overflow start+int(size).
	if size > int64(r.end-start) {
		r.err = errors.Wrapf(ErrTruncatedInput, "%s overruns its parent at offset %d", t, r.base+int64(start))
		return false
	}

	boxEnd := start + int(size)

	r.head = Header{
		Type:       t,
		Kind:       KindOf(t),
		Size:       size,
		Offset:     r.base + int64(start),
		HeaderSize: headerSize,
	}
	r.dataStart = start + headerSize
	r.boxEnd = boxEnd
	return true
}

// Header returns the current box header. Only valid after Next returns true.
func (r *Reader) Header() Header {
	return r.head
}

// Data returns the current box's payload. The returned slice points
// into the original buffer.
func (r *Reader) Data() []byte {
	return r.buf[r.dataStart:r.boxEnd]
}

// Depth returns the current nesting depth (0 at top level).
func (r *Reader) Depth() int {
	return r.depth
}

// Err returns the terminal error, if any. Running out of siblings at
// the current level leaves it nil.
func (r *Reader) Err() error {
	return r.err
}

// Enter descends into the current container box to iterate its
// children. After Enter, call Next to advance to the first child box.
// Call Exit when the level is exhausted to resume with the container's
// next sibling.
func (r *Reader) Enter() {
	if r.depth == maxDepth {
		r.err = errors.Errorf("%s nested deeper than %d levels", r.head.Type, maxDepth)
		return
	}
	r.stack[r.depth] = readerFrame{
		end:    r.end,
		boxEnd: r.boxEnd,
	}
	r.depth++
	r.end = r.boxEnd
	r.pos = r.dataStart
	r.boxEnd = r.dataStart // prevent Next from skipping
}

// Exit returns to the parent container level. After Exit, the next
// call to Next advances to the container's next sibling.
func (r *Reader) Exit() {
	r.depth--
	f := r.stack[r.depth]
	r.end = f.end
	r.pos = f.boxEnd
	r.boxEnd = f.boxEnd
}
