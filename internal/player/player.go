// Package player hands a resolved stream link to an external media
// player.
package player

import (
	"fmt"
	"os"
	"os/exec"
)

// Spawn starts the player executable with link as its only argument and
// returns without waiting for it to exit. A bare command name is looked
// up on PATH.
func Spawn(path, link string) error {
	resolved := path
	if _, err := os.Stat(resolved); err != nil {
		found, lookErr := exec.LookPath(path)
		if lookErr != nil {
			return fmt.Errorf("invalid player path %q: set TWITCHLINK_PLAYER or provide a path to a valid executable", path)
		}
		resolved = found
	}

	cmd := exec.Command(resolved, link)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("cannot start player %q: %w", resolved, err)
	}
	// The player owns the stream from here on.
	return cmd.Process.Release()
}
