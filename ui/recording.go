package ui

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Entry is one captured UI call. Depth is the Indent level it was made at.
type Entry struct {
	Method string
	Value  string
	Depth  int
}

type transcript struct {
	log     []Entry
	script  []string
	written bytes.Buffer
}

// RecordingUI captures every call instead of printing it. Confirm consumes
// the answers passed to NewRecordingUI in order and panics once they run out.
type RecordingUI struct {
	t     *transcript
	depth int
}

func NewRecordingUI(answers ...string) *RecordingUI {
	return &RecordingUI{t: &transcript{script: answers}}
}

func (r *RecordingUI) add(method, format string, args ...any) {
	r.t.log = append(r.t.log, Entry{Method: method, Value: fmt.Sprintf(format, args...), Depth: r.depth})
}

// Style drops the severity; recordings are plain text.
func (r *RecordingUI) Style(t StyledText) string { return t.Text }

func (r *RecordingUI) Info(format string, args ...any)    { r.add("Info", format, args...) }
func (r *RecordingUI) Success(format string, args ...any) { r.add("Success", format, args...) }
func (r *RecordingUI) Warn(format string, args ...any)    { r.add("Warn", format, args...) }
func (r *RecordingUI) Error(format string, args ...any)   { r.add("Error", format, args...) }
func (r *RecordingUI) Section(title string)               { r.add("Section", "%s", title) }

// KeyValue records one "label: value" entry per row.
func (r *RecordingUI) KeyValue(rows [][2]string) {
	for _, kv := range rows {
		r.add("KeyValue", "%s: %s", kv[0], kv[1])
	}
}

// Table records the header, when given, and each row with tab separated cells.
func (r *RecordingUI) Table(headers []string, rows [][]string) {
	if headers != nil {
		r.add("TableHeader", "%s", strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		r.add("TableRow", "%s", strings.Join(row, "\t"))
	}
}

func (r *RecordingUI) Spinner(msg string) func() {
	r.add("Spinner", "%s", msg)
	return func() {}
}

func (r *RecordingUI) Confirm(prompt string, defaultYes bool) bool {
	r.add("Confirm", "%s", prompt)
	if len(r.t.script) == 0 {
		panic(fmt.Sprintf("RecordingUI: unscripted Confirm(%q)", prompt))
	}
	answer := strings.ToLower(strings.TrimSpace(r.t.script[0]))
	r.t.script = r.t.script[1:]
	if answer == "" {
		return defaultYes
	}
	return yesNo[answer]
}

func (r *RecordingUI) Indent() UI {
	return &RecordingUI{t: r.t, depth: r.depth + 1}
}

// Writer collects raw writes; see Output.
func (r *RecordingUI) Writer() io.Writer { return &r.t.written }

func (r *RecordingUI) Entries() []Entry { return r.t.log }

// Values returns the recorded values of one method in call order.
func (r *RecordingUI) Values(method string) []string {
	var values []string
	for _, e := range r.t.log {
		if e.Method == method {
			values = append(values, e.Value)
		}
	}
	return values
}

func (r *RecordingUI) InfoMessages() []string  { return r.Values("Info") }
func (r *RecordingUI) ErrorMessages() []string { return r.Values("Error") }
func (r *RecordingUI) TableRows() []string     { return r.Values("TableRow") }

// HasMessage is a case insensitive substring search over all entries.
func (r *RecordingUI) HasMessage(substr string) bool {
	needle := strings.ToLower(substr)
	for _, e := range r.t.log {
		if strings.Contains(strings.ToLower(e.Value), needle) {
			return true
		}
	}
	return false
}

func (r *RecordingUI) Output() string { return r.t.written.String() }
