package cli

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// Settings is the environment-sourced configuration.
type Settings struct {
	// ClientID is the Twitch client credential, from TWITCH_CLIENT_ID.
	ClientID string
	// Player is the media player executable, from TWITCHLINK_PLAYER or
	// a platform default.
	Player string
}

// LoadSettings reads configuration from the environment. TWITCH_CLIENT_ID
// is required; TWITCHLINK_PLAYER overrides the default player.
func LoadSettings() (Settings, error) {
	v := viper.New()
	v.SetDefault("twitchlink_player", defaultPlayer())
	if err := v.BindEnv("twitch_client_id", "TWITCH_CLIENT_ID"); err != nil {
		return Settings{}, err
	}
	if err := v.BindEnv("twitchlink_player", "TWITCHLINK_PLAYER"); err != nil {
		return Settings{}, err
	}

	s := Settings{
		ClientID: strings.TrimSpace(v.GetString("twitch_client_id")),
		Player:   v.GetString("twitchlink_player"),
	}
	if s.ClientID == "" {
		return Settings{}, fmt.Errorf("the environment variable TWITCH_CLIENT_ID must be set to your Twitch client ID")
	}
	return s, nil
}

func defaultPlayer() string {
	if runtime.GOOS == "windows" {
		return "mpv"
	}
	return "/usr/bin/mpv"
}
