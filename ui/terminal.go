package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/logrusorgru/aurora"
	runewidth "github.com/mattn/go-runewidth"
	indent "github.com/openconfig/goyang/pkg/indent"
	"golang.org/x/term"
)

const (
	indentUnit   = "  "
	sectionWidth = 50
	promptPrefix = "> "
)

// TerminalUI writes to a terminal stream, coloured when that stream is a tty.
type TerminalUI struct {
	indentLevel int
	out         io.Writer
	in          *bufio.Reader
	au          aurora.Aurora
	tty         bool
}

// NewTerminalUI creates a TerminalUI writing to out and reading answers from in.
func NewTerminalUI(out io.Writer, in io.Reader) *TerminalUI {
	tty := isTerminal(out)
	return &TerminalUI{
		out: out,
		in:  bufio.NewReader(in),
		au:  aurora.NewAurora(tty),
		tty: tty,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (u *TerminalUI) prefix() string {
	return strings.Repeat(indentUnit, u.indentLevel)
}

func (u *TerminalUI) writeLine(line string) {
	fmt.Fprintf(u.out, "%s%s\n", u.prefix(), line)
}

func (u *TerminalUI) Style(t StyledText) string {
	paint, found := map[Severity]func(any) aurora.Value{
		SeveritySuccess: u.au.Green,
		SeverityWarn:    u.au.Yellow,
		SeverityError:   u.au.Red,
	}[t.Severity]
	if !found {
		return t.Text
	}
	return paint(t.Text).String()
}

func (u *TerminalUI) say(severity Severity, format string, args []any) {
	u.writeLine(u.Style(StyledText{Text: fmt.Sprintf(format, args...), Severity: severity}))
}

func (u *TerminalUI) Info(format string, args ...any)    { u.say(SeverityInfo, format, args) }
func (u *TerminalUI) Success(format string, args ...any) { u.say(SeveritySuccess, format, args) }
func (u *TerminalUI) Warn(format string, args ...any)    { u.say(SeverityWarn, format, args) }
func (u *TerminalUI) Error(format string, args ...any)   { u.say(SeverityError, format, args) }

// Section prints a blank line, then the title padded with '=' to
// sectionWidth, then another blank line:
//
//	=============== Results (in milliseconds) ===============
func (u *TerminalUI) Section(title string) {
	label := " " + title + " "
	fill := max(sectionWidth-len(label), 6)
	banner := strings.Repeat("=", fill/2) + label + strings.Repeat("=", fill-fill/2)
	fmt.Fprintln(u.out)
	u.writeLine(u.au.Bold(banner).String())
	fmt.Fprintln(u.out)
}

// readAnswer shows the prompt marker and reads one line. At end of input it
// returns whatever was typed and false.
func (u *TerminalUI) readAnswer() (string, bool) {
	fmt.Fprint(u.out, u.prefix()+promptPrefix)
	text, err := u.in.ReadString('\n')
	return strings.TrimRight(text, "\r\n"), err == nil
}

var yesNo = map[string]bool{"y": true, "yes": true, "n": false, "no": false}

// Confirm keeps asking until it gets y, yes, n, no or an empty line.
func (u *TerminalUI) Confirm(prompt string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	u.Info("%s %s", prompt, hint)
	for {
		raw, more := u.readAnswer()
		answer := strings.ToLower(strings.TrimSpace(raw))
		if answer == "" {
			return defaultYes
		}
		if yes, known := yesNo[answer]; known {
			return yes
		}
		if !more {
			return defaultYes
		}
		u.Error("please enter y or n")
	}
}

func (u *TerminalUI) KeyValue(rows [][2]string) {
	label := column{}
	for _, r := range rows {
		label.width = max(label.width, visibleWidth(r[0]))
	}
	for _, r := range rows {
		u.writeLine(label.fit(r[0]) + "  " + r[1])
	}
}

// Table renders a bordered table. Widths ignore ANSI colour codes so styled
// cells still line up. Columns whose body cells are all numbers, such as
// benchmark timings, are right-aligned.
func (u *TerminalUI) Table(headers []string, rows [][]string) {
	cols := layoutColumns(headers, rows)
	if len(cols) == 0 {
		return
	}

	paint := func(s string) string { return s }
	if u.tty {
		faint := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		paint = func(s string) string { return faint.Render(s) }
	}
	rule := func(left, cross, right string) string {
		segments := make([]string, len(cols))
		for i, c := range cols {
			segments[i] = strings.Repeat("─", c.width+2)
		}
		return paint(left + strings.Join(segments, cross) + right)
	}
	line := func(cells []string) string {
		var b strings.Builder
		b.WriteString(paint("│"))
		for i, c := range cols {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(" " + c.fit(cell) + " ")
			b.WriteString(paint("│"))
		}
		return b.String()
	}

	out := []string{rule("┌", "┬", "┐")}
	if len(headers) > 0 {
		out = append(out, line(headers), rule("├", "┼", "┤"))
	}
	for _, row := range rows {
		out = append(out, line(row))
	}
	out = append(out, rule("└", "┴", "┘"))
	for _, l := range out {
		u.writeLine(l)
	}
}

type column struct {
	width   int
	numeric bool
}

func visibleWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

func (c column) fit(s string) string {
	gap := c.width - visibleWidth(s)
	if gap <= 0 {
		return s
	}
	if c.numeric {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

func layoutColumns(headers []string, rows [][]string) []column {
	n := len(headers)
	for _, r := range rows {
		n = max(n, len(r))
	}
	cols := make([]column, n)
	for i := range cols {
		cols[i].numeric = len(rows) > 0
	}
	measure := func(i int, cell string) {
		cols[i].width = max(cols[i].width, visibleWidth(cell))
	}
	for i, h := range headers {
		measure(i, h)
	}
	for _, r := range rows {
		for i, cell := range r {
			measure(i, cell)
			if _, err := strconv.ParseFloat(ansi.Strip(cell), 64); err != nil {
				cols[i].numeric = false
			}
		}
	}
	return cols
}

// Spinner animates only on a terminal. Elsewhere it prints msg once.
func (u *TerminalUI) Spinner(msg string) func() {
	if !u.tty {
		u.writeLine(msg)
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 80*time.Millisecond, spinner.WithWriter(u.out))
	s.Suffix = " " + msg
	s.Start()
	return func() {
		s.Stop()
		// the spinner leaves the cursor on the cleared line
		fmt.Fprintf(u.out, "\n")
	}
}

func (u *TerminalUI) Indent() UI {
	return &TerminalUI{
		indentLevel: u.indentLevel + 1,
		out:         u.out,
		in:          u.in,
		au:          u.au,
		tty:         u.tty,
	}
}

func (u *TerminalUI) Writer() io.Writer {
	if u.indentLevel == 0 {
		return u.out
	}
	return indent.NewWriter(u.out, u.prefix())
}
