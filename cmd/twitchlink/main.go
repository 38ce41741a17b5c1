// The twitchlink command resolves a live Twitch channel into a direct
// media URL and prints it, lists the available qualities, or hands the
// URL to a media player.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/famomatic/twitchlink/client"
	"github.com/famomatic/twitchlink/internal/cli"
	"github.com/famomatic/twitchlink/internal/logging"
	"github.com/famomatic/twitchlink/internal/player"
)

func main() {
	opts, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	settings, err := cli.LoadSettings()
	if err != nil {
		fatal(err)
	}
	if opts.Player != "" {
		settings.Player = opts.Player
	}

	level := "warn"
	if opts.Verbose {
		level = "debug"
	}
	logger := logging.New(logging.Config{Level: level, Format: "console"})

	c := client.New(client.Config{
		ClientID: settings.ClientID,
		Logger:   logger,
	})

	if err := run(context.Background(), c, opts, settings); err != nil {
		fatal(err)
	}
}

func run(ctx context.Context, c *client.Client, opts cli.Options, settings cli.Settings) error {
	switch cli.OutputFor(opts.JSON, opts.List, opts.QualityGiven) {
	case cli.PrintAll:
		variants, err := c.GetVariants(ctx, opts.Stream)
		if err != nil {
			return err
		}
		for _, v := range variants {
			fmt.Println(client.ItemOf(v))
		}
		return nil

	case cli.PrintAllJSON:
		variants, err := c.GetVariants(ctx, opts.Stream)
		if err != nil {
			return err
		}
		items := make([]client.Item, 0, len(variants))
		for _, v := range variants {
			items = append(items, client.ItemOf(v))
		}
		return printJSON(items)

	case cli.PrintOne:
		v, err := c.Resolve(ctx, opts.Stream, opts.Quality)
		if err != nil {
			return err
		}
		fmt.Println(client.ItemOf(v))
		return nil

	case cli.PrintOneJSON:
		v, err := c.Resolve(ctx, opts.Stream, opts.Quality)
		if err != nil {
			return err
		}
		return printJSON(client.ItemOf(v))

	case cli.PrintStreamsJSON:
		if opts.QualityGiven {
			v, err := c.Resolve(ctx, opts.Stream, opts.Quality)
			if err != nil {
				return err
			}
			return printJSON(v)
		}
		variants, err := c.GetVariants(ctx, opts.Stream)
		if err != nil {
			return err
		}
		return printJSON(variants)

	default: // cli.OpenPlayer
		v, err := c.Resolve(ctx, opts.Stream, opts.Quality)
		if err != nil {
			return err
		}
		return player.Spawn(settings.Player, v.Link)
	}
}

func printJSON(v any) error {
	return json.NewEncoder(os.Stdout).Encode(v)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
