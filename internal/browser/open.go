// Package browser opens URLs in the user's default browser.
package browser

import (
	"os/exec"
	"runtime"
)

// Open launches url with the platform's opener. The command is started, not
// waited on; callers treat failures as non-fatal.
func Open(url string) error {
	var name string
	args := []string{url}
	switch runtime.GOOS {
	case "darwin":
		name = "open"
	case "windows":
		name = "rundll32"
		args = []string{"url.dll,FileProtocolHandler", url}
	default:
		name = "xdg-open"
	}
	return exec.Command(name, args...).Start()
}
