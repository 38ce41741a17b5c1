package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

func defaultHTTPClient(proxyURL string) *http.Client {
	if strings.TrimSpace(proxyURL) == "" {
		return http.DefaultClient
	}
	parsed, err := url.Parse(proxyURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return http.DefaultClient
	}
	baseTransport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return http.DefaultClient
	}
	transport := baseTransport.Clone()
	transport.Proxy = http.ProxyURL(parsed)
	return &http.Client{Transport: transport}
}

func withDefaultTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
