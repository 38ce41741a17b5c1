package client

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChannel indicates the input is not a channel name or URL.
	ErrInvalidChannel = errors.New("invalid channel")
	// ErrStreamOffline indicates the channel lists no playable variants.
	ErrStreamOffline = errors.New("stream is offline")
	// ErrDecodeToken indicates the access-token response was not valid JSON.
	ErrDecodeToken = errors.New("cannot decode access token response")
	// ErrMissingToken indicates the access-token response has no token field.
	ErrMissingToken = errors.New("cannot find token")
	// ErrMissingSignature indicates the access-token response has no sig field.
	ErrMissingSignature = errors.New("cannot find signature")
	// ErrInvalidPlaylist indicates a structurally malformed playlist.
	ErrInvalidPlaylist = errors.New("invalid playlist")
)

// QualityUnavailableError reports a requested quality label the channel
// does not offer. Quality carries the normalized label, e.g. "720p".
type QualityUnavailableError struct {
	Quality string
	Channel string
}

func (e *QualityUnavailableError) Error() string {
	if e.Channel != "" {
		return fmt.Sprintf("quality %q is not available for stream %q", e.Quality, e.Channel)
	}
	return fmt.Sprintf("quality %q is not available", e.Quality)
}
