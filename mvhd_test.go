package mp42srt_test

import (
	"errors"
	"testing"

	"github.com/tetsuo/mp42srt"
)

func TestDecodeMvhd(t *testing.T) {
	m, err := mp42srt.DecodeMvhd(mvhdPayload(3000000000, 50000, 576000))
	if err != nil {
		t.Fatalf("DecodeMvhd: %v", err)
	}
	if m.CreationTime != 3000000000 || m.Timescale != 50000 || m.Duration != 576000 {
		t.Errorf("decoded %+v", m)
	}
}

func TestMvhdEpochConversion(t *testing.T) {
	// The QuickTime epoch origin plus the 1904..1970 offset is exactly
	// the Unix epoch.
	m := mp42srt.MovieHeader{CreationTime: 2082844800, Timescale: 1}
	got := m.CreationDate().Format("02-01-2006 15:04:05")
	if got != "01-01-1970 00:00:00" {
		t.Errorf("CreationDate = %q, want 01-01-1970 00:00:00", got)
	}
}

func TestMvhdSeconds(t *testing.T) {
	tests := []struct {
		timescale, duration uint32
		want                int
	}{
		{50000, 576000, 12}, // 11.52s rounds up
		{1000, 1499, 1},
		{1000, 1500, 2},
		{1000, 2000, 2},
		{600, 0, 0},
		{1, 90, 90},
	}
	for _, tt := range tests {
		m := mp42srt.MovieHeader{Timescale: tt.timescale, Duration: tt.duration}
		if got := m.Seconds(); got != tt.want {
			t.Errorf("Seconds(%d/%d) = %d, want %d", tt.duration, tt.timescale, got, tt.want)
		}
	}
}

func TestMvhdZeroTimescale(t *testing.T) {
	_, err := mp42srt.DecodeMvhd(mvhdPayload(0, 0, 1000))
	if !errors.Is(err, mp42srt.ErrZeroTimescale) {
		t.Errorf("err = %v, want ErrZeroTimescale", err)
	}
}

func TestMvhdShortPayload(t *testing.T) {
	_, err := mp42srt.DecodeMvhd(make([]byte, 19))
	if !errors.Is(err, mp42srt.ErrTruncatedField) {
		t.Errorf("err = %v, want ErrTruncatedField", err)
	}
}
