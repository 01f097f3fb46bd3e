package mp42srt

import "github.com/pkg/errors"

// FtypInfo holds parsed fields from an ftyp box.
type FtypInfo struct {
	MajorBrand   [4]byte
	MinorVersion uint32
	Compatible   [][4]byte
}

// Brand returns the major brand as a string.
func (f FtypInfo) Brand() string {
	return string(f.MajorBrand[:])
}

// ReadFtyp parses an ftyp box payload.
func ReadFtyp(data []byte) (FtypInfo, error) {
	if len(data) < 4 {
		return FtypInfo{}, errors.Wrapf(ErrTruncatedField, "ftyp payload is %d bytes", len(data))
	}
	var f FtypInfo
	copy(f.MajorBrand[:], data[0:4])
	if len(data) >= 8 {
		f.MinorVersion = be.Uint32(data[4:8])
	}
	for i := 8; i+4 <= len(data); i += 4 {
		var b [4]byte
		copy(b[:], data[i:i+4])
		f.Compatible = append(f.Compatible, b)
	}
	return f, nil
}
