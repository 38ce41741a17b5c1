package policy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/famomatic/twitchlink/internal/variant"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Policy
	}{
		{in: "best", want: Policy{Kind: Best}},
		{in: "highest", want: Policy{Kind: Best}},
		{in: "BEST", want: Policy{Kind: Best}},
		{in: "", want: Policy{Kind: Best}},
		{in: "worst", want: Policy{Kind: Lowest}},
		{in: "lowest", want: Policy{Kind: Lowest}},
		{in: "Worst", want: Policy{Kind: Lowest}},
		{in: "720", want: Policy{Kind: Custom, Label: "720p"}},
		{in: "720p", want: Policy{Kind: Custom, Label: "720p"}},
		{in: "1080P", want: Policy{Kind: Custom, Label: "1080p"}},
		{in: " 480 ", want: Policy{Kind: Custom, Label: "480p"}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Parse(tt.in), "Parse(%q)", tt.in)
	}
}

func orderedFixture() []variant.Variant {
	return []variant.Variant{
		{Rank: variant.Rank{Source: true}, Link: "chunked"},
		{Rank: variant.Rank{Value: 720}, Link: "720"},
		{Rank: variant.Rank{Value: 480}, Link: "480"},
	}
}

func TestSelect_Best(t *testing.T) {
	got, err := Select(orderedFixture(), Policy{Kind: Best})
	require.NoError(t, err)
	require.Equal(t, "chunked", got.Link)
}

func TestSelect_Lowest(t *testing.T) {
	got, err := Select(orderedFixture(), Policy{Kind: Lowest})
	require.NoError(t, err)
	require.Equal(t, "480", got.Link)
}

func TestSelect_LowestNeverPicksSource(t *testing.T) {
	ordered := []variant.Variant{
		{Rank: variant.Rank{Source: true}, Link: "chunked"},
		{Rank: variant.Rank{Value: 160}, Link: "160"},
	}
	got, err := Select(ordered, Policy{Kind: Lowest})
	require.NoError(t, err)
	require.Equal(t, "160", got.Link)
}

func TestSelect_CustomMatchesNormalizedLabel(t *testing.T) {
	for _, in := range []string{"720", "720p", "720P"} {
		got, err := Select(orderedFixture(), Parse(in))
		require.NoError(t, err, "quality %q", in)
		require.Equal(t, "720", got.Link, "quality %q", in)
	}
}

func TestSelect_CustomUnavailable(t *testing.T) {
	_, err := Select(orderedFixture(), Parse("1080p"))

	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
	require.Equal(t, "1080p", unavailable.Label)
}

func TestSelect_EmptyCollection(t *testing.T) {
	for _, p := range []Policy{{Kind: Best}, {Kind: Lowest}, {Kind: Custom, Label: "720p"}} {
		_, err := Select(nil, p)
		require.True(t, errors.Is(err, ErrStreamOffline), "policy %v", p)
	}
}
