package provider

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// LaunchLMStudio starts LM Studio in the background, best-effort. If a
// running instance is already visible, report that instead of spawning a
// second one. The returned string is a user-facing message either way.
func LaunchLMStudio() (string, error) {
	if name, ok := lmStudioRunning(); ok {
		return fmt.Sprintf("LM Studio already running (%s)", name), nil
	}

	for _, path := range lmStudioPaths() {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}

		// The lms CLI can start the server headless; the GUI path just
		// launches the app.
		var cmd *exec.Cmd
		if strings.Contains(filepath.Base(path), "lms") {
			cmd = exec.Command(path, "server", "start")
		} else {
			cmd = exec.Command(path)
		}
		if err := cmd.Start(); err != nil {
			return "", fmt.Errorf("failed to launch %s: %w", path, err)
		}
		return fmt.Sprintf("LM Studio starting via %s", path), nil
	}

	return "", errors.New("LM Studio not found. Install from https://lmstudio.ai")
}

// lmStudioPaths lists well-known install locations, CLI first.
func lmStudioPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	switch runtime.GOOS {
	case "windows":
		return []string{
			filepath.Join(home, ".lmstudio", "bin", "lms.exe"),
			filepath.Join(os.Getenv("LOCALAPPDATA"), "Programs", "LM Studio", "LM Studio.exe"),
		}
	case "darwin":
		return []string{
			filepath.Join(home, ".lmstudio", "bin", "lms"),
			"/Applications/LM Studio.app/Contents/MacOS/LM Studio",
		}
	default:
		return []string{
			filepath.Join(home, ".lmstudio", "bin", "lms"),
		}
	}
}

func lmStudioRunning() (string, bool) {
	procs, err := process.Processes()
	if err != nil {
		return "", false
	}
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		lower := strings.ToLower(name)
		if strings.Contains(lower, "lm studio") || lower == "lms" || lower == "lms.exe" {
			return name, true
		}
	}
	return "", false
}
