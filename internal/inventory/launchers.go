package inventory

import "runtime"

// DefaultLaunchers returns the shell and session launcher names that are
// never shown as a parent on the current platform.
func DefaultLaunchers() []string {
	return launchersFor(runtime.GOOS)
}

func launchersFor(platform string) []string {
	switch platform {
	case "windows":
		return []string{"explorer.exe"}
	case "darwin":
		return []string{"launchd", "Finder", "Dock"}
	default:
		return []string{"systemd", "gnome-shell", "plasmashell", "xfce4-session"}
	}
}
