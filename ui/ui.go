package ui

import (
	"encoding/json"
	"io"
)

// Severity classifies the visual weight of a piece of inline text.
type Severity uint8

const (
	SeverityInfo    Severity = iota // plain
	SeveritySuccess                 // green
	SeverityWarn                    // yellow
	SeverityError                   // red
)

// StyledText pairs a plain string with a Severity annotation. It marshals to
// JSON as the plain text only.
type StyledText struct {
	Text     string
	Severity Severity
}

func (s StyledText) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Text)
}

// UI is everything the svgie commands print besides the identicon itself.
//
// Status lines, tables and prompts go through UI so that:
//   - the CLI uses TerminalUI, writing to stderr and keeping stdout clean
//     for the SVG document
//   - tests use RecordingUI, which captures calls and serves scripted answers
type UI interface {
	// Style returns t coloured according to its Severity, or the plain text
	// when colours are disabled.
	Style(t StyledText) string

	Info(format string, args ...any)
	Success(format string, args ...any)
	Warn(format string, args ...any)

	// Error writes a failure in red. It does not exit.
	Error(format string, args ...any)

	// Section writes a separator centred around title.
	Section(title string)

	// KeyValue renders an aligned label/value block.
	KeyValue(rows [][2]string)

	// Table renders a bordered table with an optional header row.
	Table(headers []string, rows [][]string)

	// Spinner starts a progress spinner and returns the function that stops it.
	Spinner(msg string) func()

	// Confirm asks a yes/no question. An empty answer picks defaultYes.
	Confirm(prompt string, defaultYes bool) bool

	// Indent returns a child UI one level deeper sharing the same streams.
	Indent() UI

	// Writer returns an io.Writer that indents every line it receives.
	Writer() io.Writer
}
