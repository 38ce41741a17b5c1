// Package usher talks to Twitch's access-token and playlist edge
// endpoints. Every call is a fresh round trip; nothing is cached or
// retried.
package usher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	defaultAPIBaseURL   = "https://api.twitch.tv"
	defaultUsherBaseURL = "https://usher.ttvnw.net"
)

var (
	// ErrDecodeToken indicates the access-token response body was not
	// valid JSON.
	ErrDecodeToken = errors.New("cannot decode access token response")
	// ErrMissingToken indicates the response carried no token field.
	ErrMissingToken = errors.New("cannot find token")
	// ErrMissingSignature indicates the response carried no sig field.
	ErrMissingSignature = errors.New("cannot find signature")
)

// AccessToken is the short-lived credential pair required to request a
// channel's master playlist.
type AccessToken struct {
	Token     string
	Signature string
}

// Client issues requests against the Twitch streaming endpoints.
type Client struct {
	HTTPClient *http.Client
	ClientID   string

	// APIBaseURL and UsherBaseURL override the production endpoints,
	// primarily for tests.
	APIBaseURL   string
	UsherBaseURL string
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) apiBaseURL() string {
	if c.APIBaseURL != "" {
		return c.APIBaseURL
	}
	return defaultAPIBaseURL
}

func (c *Client) usherBaseURL() string {
	if c.UsherBaseURL != "" {
		return c.UsherBaseURL
	}
	return defaultUsherBaseURL
}

// ExchangeToken requests the playback access token for channel, carrying
// the client ID as the Client-ID header.
func (c *Client) ExchangeToken(ctx context.Context, channel string) (AccessToken, error) {
	endpoint := fmt.Sprintf("%s/api/channels/%s/access_token", c.apiBaseURL(), url.PathEscape(channel))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return AccessToken{}, fmt.Errorf("build access token request: %w", err)
	}
	req.Header.Set("Client-ID", c.ClientID)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return AccessToken{}, fmt.Errorf("get access token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return AccessToken{}, fmt.Errorf("get access token: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return AccessToken{}, fmt.Errorf("read access token response: %w", err)
	}

	var val map[string]any
	if err := json.Unmarshal(body, &val); err != nil {
		return AccessToken{}, fmt.Errorf("%w: %v", ErrDecodeToken, err)
	}

	token, ok := val["token"].(string)
	if !ok {
		return AccessToken{}, ErrMissingToken
	}
	sig, ok := val["sig"].(string)
	if !ok {
		return AccessToken{}, ErrMissingSignature
	}

	return AccessToken{Token: token, Signature: sig}, nil
}

// FetchMasterPlaylist retrieves the channel's master playlist document
// as raw text.
func (c *Client) FetchMasterPlaylist(ctx context.Context, channel string, token AccessToken) (string, error) {
	endpoint := fmt.Sprintf("%s/api/channel/hls/%s.m3u8", c.usherBaseURL(), url.PathEscape(channel))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build playlist request: %w", err)
	}

	q := url.Values{}
	q.Set("token", token.Token)
	q.Set("sig", token.Signature)
	q.Set("player_backend", "html5")
	q.Set("player", "twitchweb")
	q.Set("type", "any")
	q.Set("allow_source", "true")
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("get playlist: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("get playlist: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read playlist response: %w", err)
	}
	return string(body), nil
}
