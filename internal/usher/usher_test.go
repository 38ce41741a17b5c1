package usher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExchangeToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/channels/sodapoppin/access_token", r.URL.Path)
		require.Equal(t, "test-client-id", r.Header.Get("Client-ID"))
		w.Write([]byte(`{"token":"{\"channel\":\"sodapoppin\"}","sig":"deadbeef","expires_at":"2026-08-25T00:00:00Z"}`))
	}))
	defer srv.Close()

	c := &Client{ClientID: "test-client-id", APIBaseURL: srv.URL}
	token, err := c.ExchangeToken(context.Background(), "sodapoppin")
	require.NoError(t, err)
	require.Equal(t, `{"channel":"sodapoppin"}`, token.Token)
	require.Equal(t, "deadbeef", token.Signature)
}

func TestExchangeToken_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{name: "no token", body: `{"sig":"deadbeef"}`, want: ErrMissingToken},
		{name: "token not a string", body: `{"token":42,"sig":"deadbeef"}`, want: ErrMissingToken},
		{name: "no signature", body: `{"token":"abc"}`, want: ErrMissingSignature},
		{name: "signature not a string", body: `{"token":"abc","sig":null}`, want: ErrMissingSignature},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := &Client{APIBaseURL: srv.URL}
			_, err := c.ExchangeToken(context.Background(), "somechannel")
			require.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestExchangeToken_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := &Client{APIBaseURL: srv.URL}
	_, err := c.ExchangeToken(context.Background(), "somechannel")
	require.ErrorIs(t, err, ErrDecodeToken)
}

func TestExchangeToken_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := &Client{APIBaseURL: srv.URL}
	_, err := c.ExchangeToken(context.Background(), "somechannel")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 404")
}

func TestExchangeToken_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := &Client{APIBaseURL: srv.URL}
	_, err := c.ExchangeToken(context.Background(), "somechannel")
	require.Error(t, err)
	require.Contains(t, err.Error(), "get access token")
}

func TestFetchMasterPlaylist(t *testing.T) {
	const doc = "#EXTM3U\n#EXT-X-STREAM-INF:BANDWIDTH=1,VIDEO=\"chunked\"\nhttps://edge.example.net/c.m3u8\n"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/channel/hls/sodapoppin.m3u8", r.URL.Path)

		q := r.URL.Query()
		require.Equal(t, "tok", q.Get("token"))
		require.Equal(t, "sig", q.Get("sig"))
		require.Equal(t, "html5", q.Get("player_backend"))
		require.Equal(t, "twitchweb", q.Get("player"))
		require.Equal(t, "any", q.Get("type"))
		require.Equal(t, "true", q.Get("allow_source"))

		w.Write([]byte(doc))
	}))
	defer srv.Close()

	c := &Client{UsherBaseURL: srv.URL}
	got, err := c.FetchMasterPlaylist(context.Background(), "sodapoppin", AccessToken{Token: "tok", Signature: "sig"})
	require.NoError(t, err)
	require.Equal(t, doc, got)
}

func TestFetchMasterPlaylist_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "offline", http.StatusForbidden)
	}))
	defer srv.Close()

	c := &Client{UsherBaseURL: srv.URL}
	_, err := c.FetchMasterPlaylist(context.Background(), "somechannel", AccessToken{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 403")
}

func TestExchangeToken_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &Client{APIBaseURL: srv.URL}
	_, err := c.ExchangeToken(ctx, "somechannel")
	require.Error(t, err)
}
