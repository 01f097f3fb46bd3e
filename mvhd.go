package mp42srt

import (
	"time"

	"github.com/pkg/errors"
)

// macEpochOffset is the number of seconds between the QuickTime epoch
// (1904-01-01T00:00:00Z) and the Unix epoch.
const macEpochOffset = 2082844800

// mvhdMinLen covers the version 0 payload fields consumed here:
// version/flags(4) + creation(4) + modification(4) + timescale(4) + duration(4).
const mvhdMinLen = 20

// MovieHeader holds the timing fields of an mvhd box.
type MovieHeader struct {
	CreationTime uint32 // seconds since 1904-01-01T00:00:00Z
	Timescale    uint32 // time units per second
	Duration     uint32 // length in time units
}

// DecodeMvhd extracts timing fields from an mvhd box payload. The
// payload is read at the fixed version 0 offsets; version 1 layouts
// with 64-bit dates are not consumed.
func DecodeMvhd(data []byte) (MovieHeader, error) {
	if len(data) < mvhdMinLen {
		return MovieHeader{}, errors.Wrapf(ErrTruncatedField, "mvhd payload is %d bytes, need %d", len(data), mvhdMinLen)
	}
	m := MovieHeader{
		CreationTime: be.Uint32(data[4:8]),
		Timescale:    be.Uint32(data[12:16]),
		Duration:     be.Uint32(data[16:20]),
	}
	if m.Timescale == 0 {
		return MovieHeader{}, errors.Wrap(ErrZeroTimescale, "mvhd")
	}
	return m, nil
}

// CreationDate returns the creation time converted to the Unix epoch,
// in UTC.
func (m MovieHeader) CreationDate() time.Time {
	return time.Unix(int64(m.CreationTime)-macEpochOffset, 0).UTC()
}

// Seconds returns the movie duration rounded to whole seconds.
func (m MovieHeader) Seconds() int {
	return int((uint64(m.Duration) + uint64(m.Timescale)/2) / uint64(m.Timescale))
}
