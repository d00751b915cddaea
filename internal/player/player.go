package player

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// windowsVLCPaths are the standard VLC install locations checked before
// falling back to PATH.
var windowsVLCPaths = []string{
	`C:\Program Files\VideoLAN\VLC\vlc.exe`,
	`C:\Program Files (x86)\VideoLAN\VLC\vlc.exe`,
}

// FindVLC locates the VLC executable. On Windows the well-known install
// directories are checked first; everywhere PATH is the final word.
func FindVLC() (string, error) {
	if runtime.GOOS == "windows" {
		for _, candidate := range windowsVLCPaths {
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
	}

	path, err := exec.LookPath("vlc")
	if err != nil {
		return "", fmt.Errorf("vlc not found; install VLC or put it on PATH")
	}
	return path, nil
}

// Launch starts VLC detached with the given files as its playlist. The
// command is not waited on; playback outlives the CLI process.
func Launch(paths []string, fullscreen bool) error {
	if len(paths) == 0 {
		return fmt.Errorf("nothing to play")
	}

	vlc, err := FindVLC()
	if err != nil {
		return err
	}

	args := make([]string, 0, len(paths)+2)
	if fullscreen {
		args = append(args, "--fullscreen", "--no-video-title-show")
	}
	args = append(args, paths...)

	cmd := exec.Command(vlc, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting vlc: %w", err)
	}

	// Reap the child in the background so it doesn't linger as a zombie
	// if VLC exits before we do.
	go cmd.Wait()
	return nil
}
