// Package client resolves the playable variants of a live Twitch
// channel and selects one according to a quality policy.
package client

import (
	"context"
	"errors"

	"github.com/famomatic/twitchlink/internal/playlist"
	"github.com/famomatic/twitchlink/internal/policy"
	"github.com/famomatic/twitchlink/internal/usher"
	"github.com/famomatic/twitchlink/internal/variant"
)

// Client is the high-level twitchlink client.
type Client struct {
	config Config
	usher  *usher.Client
	logger Logger
}

// New creates a twitchlink client.
func New(config Config) *Client {
	if config.HTTPClient == nil {
		config.HTTPClient = defaultHTTPClient(config.ProxyURL)
	}
	logger := config.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	return &Client{
		config: config,
		usher: &usher.Client{
			HTTPClient:   config.HTTPClient,
			ClientID:     config.ClientID,
			APIBaseURL:   config.APIBaseURL,
			UsherBaseURL: config.UsherBaseURL,
		},
		logger: logger,
	}
}

// GetVariants resolves the channel's playable variants, best first.
// It fails with ErrStreamOffline when the channel lists none.
func (c *Client) GetVariants(ctx context.Context, input string) ([]Variant, error) {
	ctx, cancel := withDefaultTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	channel, err := ExtractChannelName(input)
	if err != nil {
		return nil, err
	}

	ordered, err := c.resolveVariants(ctx, channel)
	if err != nil {
		return nil, err
	}
	if len(ordered) == 0 {
		return nil, ErrStreamOffline
	}

	out := make([]Variant, 0, len(ordered))
	for _, v := range ordered {
		out = append(out, toVariant(v))
	}
	return out, nil
}

// Resolve selects one variant for the channel according to the quality
// policy string: "best"/"highest", "worst"/"lowest", or a custom label
// such as "720" or "720p".
func (c *Client) Resolve(ctx context.Context, input, quality string) (Variant, error) {
	ctx, cancel := withDefaultTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	channel, err := ExtractChannelName(input)
	if err != nil {
		return Variant{}, err
	}

	ordered, err := c.resolveVariants(ctx, channel)
	if err != nil {
		return Variant{}, err
	}

	selected, err := policy.Select(ordered, policy.Parse(quality))
	if err != nil {
		var unavailable *policy.UnavailableError
		if errors.As(err, &unavailable) {
			return Variant{}, &QualityUnavailableError{Quality: unavailable.Label, Channel: channel}
		}
		return Variant{}, mapError(err)
	}
	return toVariant(selected), nil
}

// FetchMasterPlaylist returns the channel's raw master playlist
// document.
func (c *Client) FetchMasterPlaylist(ctx context.Context, input string) (string, error) {
	ctx, cancel := withDefaultTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	channel, err := ExtractChannelName(input)
	if err != nil {
		return "", err
	}
	return c.fetchMasterPlaylist(ctx, channel)
}

// resolveVariants runs the token, playlist and parse stages and returns
// the ordered collection.
func (c *Client) resolveVariants(ctx context.Context, channel string) ([]variant.Variant, error) {
	doc, err := c.fetchMasterPlaylist(ctx, channel)
	if err != nil {
		return nil, err
	}

	byRank, err := playlist.Parse(doc, c.logger)
	if err != nil {
		return nil, mapError(err)
	}
	return variant.Order(byRank), nil
}

func (c *Client) fetchMasterPlaylist(ctx context.Context, channel string) (string, error) {
	token, err := c.usher.ExchangeToken(ctx, channel)
	if err != nil {
		return "", mapError(err)
	}
	doc, err := c.usher.FetchMasterPlaylist(ctx, channel, token)
	if err != nil {
		return "", mapError(err)
	}
	return doc, nil
}

func toVariant(v variant.Variant) Variant {
	return Variant{
		Resolution: v.Resolution,
		Bandwidth:  v.Bandwidth,
		Link:       v.Link,
		Type:       v.Label(),
	}
}

// mapError converts internal-package sentinels to the public ones.
// Transport failures pass through wrapped with stage context.
func mapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, usher.ErrDecodeToken):
		return ErrDecodeToken
	case errors.Is(err, usher.ErrMissingToken):
		return ErrMissingToken
	case errors.Is(err, usher.ErrMissingSignature):
		return ErrMissingSignature
	case errors.Is(err, playlist.ErrInvalidPlaylist):
		return ErrInvalidPlaylist
	case errors.Is(err, policy.ErrStreamOffline):
		return ErrStreamOffline
	}
	return err
}
