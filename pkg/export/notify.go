package export

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// CopiedMessage acknowledges a clipboard copy.
const CopiedMessage = "The .gitignore content has been copied to your clipboard."

// SavedMessage is the acknowledgement for a file written to path.
func SavedMessage(path string) string {
	return fmt.Sprintf("Your .gitignore file has been saved to %s.", path)
}

// Notifier shows short messages to the user.
type Notifier interface {
	Success(msg string)
	Warn(msg string)
}

// ConsoleNotifier prints to a writer, stderr by default.
type ConsoleNotifier struct {
	Out io.Writer
}

var (
	successMark = color.New(color.FgGreen, color.Bold).SprintFunc()
	warnMark    = color.New(color.FgYellow, color.Bold).SprintFunc()
)

func (n ConsoleNotifier) out() io.Writer {
	if n.Out == nil {
		return os.Stderr
	}
	return n.Out
}

// Success prints msg with a check mark.
func (n ConsoleNotifier) Success(msg string) {
	fmt.Fprintf(n.out(), "%s %s\n", successMark("✓"), msg)
}

// Warn prints msg with a warning mark.
func (n ConsoleNotifier) Warn(msg string) {
	fmt.Fprintf(n.out(), "%s %s\n", warnMark("!"), msg)
}

// ConfigureColor turns colored output on or off for the whole process.
func ConfigureColor(enabled bool) {
	color.NoColor = !enabled
}
