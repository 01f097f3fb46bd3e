// Command mp42srt extracts timing metadata from an MP4 file and writes
// a per-second timecode track to a matching .srt subtitle file.
//
//	mp42srt <video.mp4> [-xml | -debug]
//
// -xml prints only the embedded XML metadata; -debug traces every box
// visited during the walk.
package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/tetsuo/mp42srt"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	path := os.Args[1]
	if !strings.HasSuffix(path, ".mp4") && !strings.HasSuffix(path, ".MP4") {
		log.Fatalf("not an MP4 video file path: %s", path)
	}

	var xmlOnly, debug bool
	if len(os.Args) > 2 {
		switch os.Args[2] {
		case "-xml":
			xmlOnly = true
		case "-debug":
			debug = true
		default:
			usage()
		}
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	if !xmlOnly {
		log.Infof("reading video file: %s", path)
	}

	var opts mp42srt.Options
	if debug {
		opts.Trace = os.Stdout
	}

	// A malformed or truncated stream just ends the walk; whatever was
	// decoded before that point is still reported.
	res, _ := mp42srt.Walk(f, opts)

	if xmlOnly {
		if res.XML != nil {
			fmt.Printf("%s\n", res.XML)
		}
		return
	}

	if res.Ftyp != nil {
		fmt.Printf("MP4 Major Brand: %s\n", res.Ftyp.Brand())
	}
	if res.Movie != nil {
		fmt.Printf("First timestamp: %s\n", res.Movie.CreationDate().Format("02-01-2006 15:04:05"))
		fmt.Printf("File duration: %d seconds\n", res.Movie.Seconds())
	}
	if res.XML != nil {
		fmt.Println("This file contains additional data in XML.")
		if s, ok := mp42srt.SummarizeXML(res.XML); ok {
			if s.CreationDate != "" {
				fmt.Printf("Creation Date: %s\n", s.CreationDate)
			}
			if len(s.Device) > 0 {
				fmt.Println("Device:")
				for _, a := range s.Device {
					fmt.Printf("  %s %s\n", a.Name.Local, a.Value)
				}
			}
		}
	}
	if res.Movie != nil {
		writeCaptions(path, res.Movie)
	}

	log.Infof("finished reading %s", path)
}

func writeCaptions(path string, m *mp42srt.MovieHeader) {
	out := mp42srt.OutputPath(path)
	log.Infof("writing timecodes to %s", out)

	f, err := os.Create(out)
	if err != nil {
		log.Errorf("create %s: %v", out, err)
		return
	}
	defer f.Close()

	entries := mp42srt.Timecodes(m.CreationDate(), m.Seconds())
	if err := mp42srt.WriteSRT(f, entries); err != nil {
		log.Errorf("write %s: %v", out, err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s <video.mp4> [-xml | -debug]\n", os.Args[0])
	os.Exit(1)
}
