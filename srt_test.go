package mp42srt_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/tetsuo/mp42srt"
)

func TestWriteSRT(t *testing.T) {
	start := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	entries := mp42srt.Timecodes(start, 3)

	var buf bytes.Buffer
	if err := mp42srt.WriteSRT(&buf, entries); err != nil {
		t.Fatalf("WriteSRT: %v", err)
	}

	want := "1\n" +
		"00:00:00,000 --> 00:00:01,000\n" +
		"01/01/1970\n00:00:00\n" +
		"\n" +
		"2\n" +
		"00:00:01,000 --> 00:00:02,000\n" +
		"01/01/1970\n00:00:01\n" +
		"\n" +
		"3\n" +
		"00:00:02,000 --> 00:00:03,000\n" +
		"01/01/1970\n00:00:02\n" +
		"\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriteSRTRollsOverClock(t *testing.T) {
	start := time.Date(2024, 12, 13, 23, 59, 59, 0, time.UTC)
	entries := mp42srt.Timecodes(start, 2)

	var buf bytes.Buffer
	if err := mp42srt.WriteSRT(&buf, entries); err != nil {
		t.Fatalf("WriteSRT: %v", err)
	}

	want := "1\n" +
		"00:00:00,000 --> 00:00:01,000\n" +
		"13/12/2024\n23:59:59\n" +
		"\n" +
		"2\n" +
		"00:00:01,000 --> 00:00:02,000\n" +
		"14/12/2024\n00:00:00\n" +
		"\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestTimecodes(t *testing.T) {
	start := time.Date(2024, 12, 13, 23, 11, 12, 0, time.UTC)

	seq := mp42srt.Timecodes(start, 5)
	if len(seq) != 5 {
		t.Fatalf("len = %d, want 5", len(seq))
	}
	for i, e := range seq {
		if want := start.Add(time.Duration(i) * time.Second); !e.Equal(want) {
			t.Errorf("entry %d = %v, want %v", i, e, want)
		}
	}

	if seq := mp42srt.Timecodes(start, 0); seq != nil {
		t.Errorf("Timecodes(_, 0) = %v, want nil", seq)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct{ in, want string }{
		{"clip.mp4", "clip.srt"},
		{"CLIP.MP4", "CLIP.srt"},
		{"/videos/day one.mp4", "/videos/day one.srt"},
	}
	for _, tt := range tests {
		if got := mp42srt.OutputPath(tt.in); got != tt.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
