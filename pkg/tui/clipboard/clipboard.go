// Package clipboard copies product text to the system clipboard.
package clipboard

import (
	"encoding/base64"
	"os/exec"
	"strings"
	"sync"

	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	cblog "github.com/charmbracelet/log"
)

var (
	// customCopyCmd is the configured clipboard copy command (set from config)
	customCopyCmd string
	customCopyMu  sync.RWMutex

	// writeAll is swapped in tests.
	writeAll = clipboard.WriteAll
)

// SetCopyCommand configures a custom clipboard copy command.
// The command receives text via stdin. Examples: "pbcopy", "xclip -selection clipboard"
// Pass an empty string to use auto-detection.
func SetCopyCommand(cmd string) {
	customCopyMu.Lock()
	defer customCopyMu.Unlock()
	customCopyCmd = cmd
}

// GetCopyCommand returns the current custom copy command, or empty string if using auto-detect.
func GetCopyCommand() string {
	customCopyMu.RLock()
	defer customCopyMu.RUnlock()
	return customCopyCmd
}

// CopyMsg is sent after a clipboard copy operation completes.
type CopyMsg struct {
	Success bool
	Text    string
	// Method is "native" or "osc52". OSC 52 has no acknowledgment, so Success
	// is optimistic for it.
	Method string
}

// CopyCmd returns a tea.Cmd that copies text to clipboard, trying the native
// clipboard first and falling back to an OSC 52 escape sequence.
func CopyCmd(text string) tea.Cmd {
	if text == "" {
		return func() tea.Msg {
			return CopyMsg{Success: false}
		}
	}

	if err := copyNative(text); err == nil {
		cblog.With("component", "clipboard").Info("Copied to clipboard via native method", "len", len(text))
		return func() tea.Msg {
			return CopyMsg{Success: true, Text: text, Method: "native"}
		}
	}

	cblog.With("component", "clipboard").Info("Native clipboard failed, trying OSC 52")
	return tea.Batch(
		tea.Printf("%s", osc52(text)),
		func() tea.Msg {
			return CopyMsg{Success: true, Text: text, Method: "osc52"}
		},
	)
}

// osc52 builds ESC ] 52 ; c ; <base64> BEL
func osc52(text string) string {
	return "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\x07"
}

// copyNative uses a custom command if configured, otherwise the system
// clipboard via atotto/clipboard.
func copyNative(text string) error {
	if customCmd := GetCopyCommand(); customCmd != "" {
		parts := strings.Fields(customCmd)
		if len(parts) == 0 {
			return exec.ErrNotFound
		}
		cmd := exec.Command(parts[0], parts[1:]...)
		cmd.Stdin = strings.NewReader(text)
		return cmd.Run()
	}
	if clipboard.Unsupported {
		return exec.ErrNotFound
	}
	return writeAll(text)
}
