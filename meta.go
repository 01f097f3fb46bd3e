package mp42srt

import "bytes"

// DecodeMeta walks the sub-boxes of a meta box payload looking for an
// embedded "xml " box. Sub-boxes use plain 8-byte headers; the
// sub-walk stops at the first size that cannot hold a header.
//
// The xml payload begins after the sub-box's own version/flags word
// and drops the final byte, a NUL terminator in the camera files that
// carry this box. Any NUL bytes inside the payload are stripped too.
func DecodeMeta(data []byte) ([]byte, bool) {
	pos := 4 // meta version/flags
	for pos+8 <= len(data) {
		size := int(be.Uint32(data[pos:]))
		if size < 8 {
			break
		}

		var t BoxType
		copy(t[:], data[pos+4:pos+8])

		if t == TypeXML {
			start := pos + 12
			end := pos + size - 1
			if end > len(data) {
				end = len(data)
			}
			if start >= end {
				return nil, true
			}
			return bytes.ReplaceAll(data[start:end], []byte{0}, nil), true
		}

		pos += size
	}
	return nil, false
}
