package mp42srt

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// OutputPath derives the subtitle path from a video path by swapping
// the extension for .srt.
func OutputPath(videoPath string) string {
	return strings.TrimSuffix(videoPath, filepath.Ext(videoPath)) + ".srt"
}

// WriteSRT writes one numbered cue per timecode entry. Cue i spans
// second i-1 to second i on the subtitle clock and shows the entry's
// date and time as its text.
func WriteSRT(w io.Writer, entries []time.Time) error {
	bw := bufio.NewWriter(w)
	for i, t := range entries {
		fmt.Fprintf(bw, "%d\n", i+1)
		fmt.Fprintf(bw, "%s --> %s\n", srtTimestamp(i), srtTimestamp(i+1))
		fmt.Fprintf(bw, "%s\n", t.Format(captionLayout))
		fmt.Fprintln(bw)
	}
	return errors.Wrap(bw.Flush(), "write srt")
}

// srtTimestamp renders whole seconds as an SRT clock value. The
// millisecond field is always zero since cues land on second bounds.
func srtTimestamp(sec int) string {
	return fmt.Sprintf("%02d:%02d:%02d,000", sec/3600, sec%3600/60, sec%60)
}
