package mp42srt

import "time"

// captionLayout renders a timecode entry as caption text: date on the
// first line, time of day on the second.
const captionLayout = "02/01/2006\n15:04:05"

// Timecodes expands a start time into n entries one second apart,
// beginning at start itself.
func Timecodes(start time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	seq := make([]time.Time, n)
	for i := range seq {
		seq[i] = start.Add(time.Duration(i) * time.Second)
	}
	return seq
}
