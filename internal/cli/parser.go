// Package cli parses command-line arguments and environment
// configuration for the twitchlink binary.
package cli

import (
	"flag"
	"fmt"
)

// Options holds all command-line options.
type Options struct {
	JSON    bool   // -json: dump the result as JSON
	List    bool   // -list: list stream quality information
	Player  string // -player: player executable override
	Quality string // -quality: desired quality of the stream
	Verbose bool   // -verbose

	// Stream is the positional channel name or URL.
	Stream string

	// QualityGiven records whether -quality was set explicitly; it
	// switches list/JSON output between one variant and all of them.
	QualityGiven bool
}

// ParseFlags parses args (without the program name) into Options.
func ParseFlags(args []string) (Options, error) {
	opts := Options{}

	fs := flag.NewFlagSet("twitchlink", flag.ContinueOnError)
	fs.BoolVar(&opts.JSON, "json", false, "dump the stream information as JSON")
	fs.BoolVar(&opts.List, "list", false, "list stream quality information")
	fs.StringVar(&opts.Player, "player", "", "a player to use, defaults to mpv")
	fs.StringVar(&opts.Quality, "quality", "", "desired quality of the stream")
	fs.BoolVar(&opts.Verbose, "verbose", false, "print debugging information")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: twitchlink [OPTIONS] <stream>\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return opts, fmt.Errorf("the stream to fetch is required")
	}

	opts.Stream = fs.Arg(0)
	opts.QualityGiven = opts.Quality != ""
	return opts, nil
}

// Output selects how the resolved result is rendered.
type Output int

const (
	OpenPlayer Output = iota
	PrintAll
	PrintAllJSON
	PrintOne
	PrintOneJSON
	PrintStreamsJSON
)

// OutputFor derives the output mode from the json and list flags and
// whether a specific quality was requested.
func OutputFor(json, list, singular bool) Output {
	switch {
	case !json && list && !singular:
		return PrintAll
	case !json && list && singular:
		return PrintOne
	case json && list && singular:
		return PrintOneJSON
	case json && list && !singular:
		return PrintAllJSON
	case json && !list:
		return PrintStreamsJSON
	default:
		return OpenPlayer
	}
}
