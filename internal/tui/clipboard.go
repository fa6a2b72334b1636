package tui

import (
	"encoding/json"
	"errors"
	"os/exec"
	"runtime"
	"strings"

	"postboard/internal/model"
)

// clipboardCandidates lists copy commands for the current OS, most preferred first.
func clipboardCandidates() [][]string {
	switch runtime.GOOS {
	case "darwin":
		return [][]string{{"pbcopy"}}
	case "windows":
		return [][]string{{"cmd", "/c", "clip"}, {"powershell", "-NoProfile", "-Command", "Set-Clipboard"}}
	default:
		// Wayland first, then X11.
		return [][]string{{"wl-copy"}, {"xclip", "-selection", "clipboard"}, {"xsel", "--clipboard", "--input"}}
	}
}

func copyToClipboard(s string) error {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	var lastErr error = errors.New("no clipboard command available")
	for _, argv := range clipboardCandidates() {
		if _, err := exec.LookPath(argv[0]); err != nil {
			continue
		}
		cmd := exec.Command(argv[0], argv[1:]...)
		cmd.Stdin = strings.NewReader(s)
		if err := cmd.Run(); err != nil {
			lastErr = errors.New(argv[0] + ": " + err.Error())
			continue
		}
		return nil
	}
	return lastErr
}

// postClipboardText is what "y" copies: the post as indented JSON.
func postClipboardText(p model.Post) string {
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return p.Title
	}
	return string(b)
}
