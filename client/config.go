package client

import (
	"net/http"
	"time"
)

// Config holds configuration for the twitchlink client.
type Config struct {
	// ClientID is the Twitch client credential sent with the
	// access-token request.
	ClientID string

	// HTTPClient is the client used for all requests.
	// If nil, a default client is used.
	HTTPClient *http.Client

	// ProxyURL is an optional proxy for the default client.
	// If HTTPClient is provided, this field is ignored.
	ProxyURL string

	// RequestTimeout bounds one full resolution when the caller's
	// context carries no deadline. Zero means no timeout.
	RequestTimeout time.Duration

	// Logger receives non-fatal warnings (unknown playlist quality
	// tags). If nil, warnings are dropped.
	Logger Logger

	// APIBaseURL and UsherBaseURL override the Twitch endpoints,
	// primarily for tests.
	APIBaseURL   string
	UsherBaseURL string
}
