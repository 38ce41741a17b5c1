package player

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpawn_InvalidPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-player")
	err := Spawn(missing, "https://edge.example.net/chunked.m3u8")
	require.Error(t, err)
	require.Contains(t, err.Error(), "TWITCHLINK_PLAYER")
}

func TestSpawn_BareNameNotOnPath(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	err := Spawn("definitely-not-a-player", "https://edge.example.net/chunked.m3u8")
	require.Error(t, err)
}
