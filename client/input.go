package client

import (
	"regexp"
	"strings"
)

var channelNamePattern = regexp.MustCompile(`^[0-9A-Za-z_]{1,25}$`)

// ExtractChannelName accepts either a raw channel name or a channel URL;
// for URLs the trailing path segment is taken as the channel.
func ExtractChannelName(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ErrInvalidChannel
	}
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSuffix(s, "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	if !channelNamePattern.MatchString(s) {
		return "", ErrInvalidChannel
	}
	return s, nil
}
