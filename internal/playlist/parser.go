// Package playlist parses Twitch master playlists into variant records.
package playlist

import (
	"errors"
	"strconv"
	"strings"

	"github.com/famomatic/twitchlink/internal/variant"
)

const (
	videoMarker      = "VIDEO="
	bandwidthMarker  = "BANDWIDTH="
	resolutionMarker = "RESOLUTION="
)

// ErrInvalidPlaylist indicates a structurally malformed attribute line.
var ErrInvalidPlaylist = errors.New("invalid playlist")

// Logger receives non-fatal parse warnings.
type Logger interface {
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Warnf(string, ...any) {}

// pending is the attribute state accumulated between an attribute line
// and the URI line that consumes it. An empty tag means no attribute
// line has been seen since the last emit.
type pending struct {
	tag        string
	resolution string
	bandwidth  string
}

func (p *pending) clear() { *p = pending{} }

// Parse scans a master playlist document and returns its variants keyed
// by quality rank. When two attribute/URI pairs carry the same quality
// tag, the later pair wins. Unrecognized quality tags are reported
// through logger and skipped without aborting the scan.
//
// A URI line with no preceding attribute line is ignored. An attribute
// line directly followed by another attribute line loses the first set
// silently; Twitch playlists never interleave that way.
func Parse(doc string, logger Logger) (map[variant.Rank]variant.Variant, error) {
	if logger == nil {
		logger = nopLogger{}
	}

	byRank := make(map[variant.Rank]variant.Variant)
	var p pending

	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if strings.Contains(line, videoMarker) {
			idx := strings.Index(line, videoMarker)
			if idx < 0 {
				return nil, ErrInvalidPlaylist
			}
			p.tag = strings.ReplaceAll(line[idx+len(videoMarker):], `"`, "")
			p.bandwidth = attrValue(line, bandwidthMarker)
			p.resolution = attrValue(line, resolutionMarker)
		}

		if p.tag == "" || line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		rank, ok := classify(p.tag)
		if !ok {
			logger.Warnf("unknown quality %q", p.tag)
			p.clear()
			continue
		}

		byRank[rank] = variant.Variant{
			Resolution: p.resolution,
			Bandwidth:  p.bandwidth,
			Link:       line,
			Rank:       rank,
		}
		p.clear()
	}

	return byRank, nil
}

// attrValue extracts the value following marker, terminated by the next
// comma or the end of the line. A missing marker yields "".
func attrValue(line, marker string) string {
	idx := strings.Index(line, marker)
	if idx < 0 {
		return ""
	}
	val := line[idx+len(marker):]
	if comma := strings.Index(val, ","); comma >= 0 {
		val = val[:comma]
	}
	return val
}

// classify maps a quality tag to its rank. "chunked" is the source
// rendition; any other tag must open with three digits ("720p60" ranks
// as 720).
func classify(tag string) (variant.Rank, bool) {
	if tag == "chunked" {
		return variant.Rank{Source: true}, true
	}
	if len(tag) < 3 {
		return variant.Rank{}, false
	}
	n, err := strconv.Atoi(tag[:3])
	if err != nil || n < 0 {
		return variant.Rank{}, false
	}
	return variant.Rank{Value: n}, true
}
