package mp42srt_test

import "encoding/binary"

// box builds a box with an 8-byte header around payload.
func box(typ string, payload []byte) []byte {
	b := make([]byte, 8+len(payload))
	binary.BigEndian.PutUint32(b, uint32(8+len(payload)))
	copy(b[4:8], typ)
	copy(b[8:], payload)
	return b
}

// largeBox builds a box with a 16-byte header carrying an extended size.
func largeBox(typ string, payload []byte) []byte {
	b := make([]byte, 16+len(payload))
	binary.BigEndian.PutUint32(b, 1)
	copy(b[4:8], typ)
	binary.BigEndian.PutUint64(b[8:], uint64(16+len(payload)))
	copy(b[16:], payload)
	return b
}

func u32(v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return b[:]
}

func u64(v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return b[:]
}

func cat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// mvhdPayload builds a version 0 mvhd payload with the given timing
// fields and everything else zeroed.
func mvhdPayload(creation, timescale, duration uint32) []byte {
	p := make([]byte, 100)
	binary.BigEndian.PutUint32(p[4:], creation)
	binary.BigEndian.PutUint32(p[12:], timescale)
	binary.BigEndian.PutUint32(p[16:], duration)
	return p
}

// metaPayload builds a meta payload holding one xml sub-box whose text
// is NUL-terminated the way camera metadata is written.
func metaPayload(xmlText string) []byte {
	sub := cat(u32(0), []byte(xmlText), []byte{0})
	return cat(u32(0), box("xml ", sub))
}
