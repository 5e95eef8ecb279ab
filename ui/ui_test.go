package ui_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svgies/svgie/ui"
)

func TestTerminalUIPlainOutput(t *testing.T) {
	var out bytes.Buffer
	u := ui.NewTerminalUI(&out, strings.NewReader(""))

	u.Info("hello %s", "world")
	u.Error("bad %d", 1)
	u.Indent().Warn("nested")

	assert.Equal(t, "hello world\nbad 1\n  nested\n", out.String())
}

func TestTerminalUITable(t *testing.T) {
	var out bytes.Buffer
	u := ui.NewTerminalUI(&out, strings.NewReader(""))

	u.Table([]string{"Chain", "Avg"}, [][]string{
		{"evm", "0.012"},
		{"bitcoin", "0.1"},
	})

	want := strings.Join([]string{
		"┌─────────┬───────┐",
		"│ Chain   │   Avg │",
		"├─────────┼───────┤",
		"│ evm     │ 0.012 │",
		"│ bitcoin │   0.1 │",
		"└─────────┴───────┘",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestTerminalUITableRaggedRows(t *testing.T) {
	var out bytes.Buffer
	u := ui.NewTerminalUI(&out, strings.NewReader(""))

	u.Indent().Table(nil, [][]string{{"solana", "yes", "<="}, {"evm"}})

	want := strings.Join([]string{
		"  ┌────────┬─────┬────┐",
		"  │ solana │ yes │ <= │",
		"  │ evm    │     │    │",
		"  └────────┴─────┴────┘",
		"",
	}, "\n")
	assert.Equal(t, want, out.String())
}

func TestTerminalUIKeyValue(t *testing.T) {
	var out bytes.Buffer
	u := ui.NewTerminalUI(&out, strings.NewReader(""))
	u.KeyValue([][2]string{{"Chain", "evm"}, {"Matches", "evm"}})
	assert.Equal(t, "Chain    evm\nMatches  evm\n", out.String())
}

func TestTerminalUIConfirm(t *testing.T) {
	var out bytes.Buffer
	u := ui.NewTerminalUI(&out, strings.NewReader("maybe\ny\n\n"))

	assert.True(t, u.Confirm("Overwrite?", false))
	assert.Contains(t, out.String(), "Overwrite? [y/N]")
	assert.Contains(t, out.String(), "please enter y or n")

	assert.True(t, u.Confirm("Again?", true))
	// input exhausted
	assert.False(t, u.Confirm("Once more?", false))
}

func TestTerminalUISpinnerWithoutTerminal(t *testing.T) {
	var out bytes.Buffer
	u := ui.NewTerminalUI(&out, strings.NewReader(""))
	stop := u.Spinner("working")
	stop()
	assert.Equal(t, "working\n", out.String())
}

func TestTerminalUIWriterIndents(t *testing.T) {
	var out bytes.Buffer
	u := ui.NewTerminalUI(&out, strings.NewReader(""))
	_, err := u.Indent().Writer().Write([]byte("a\nb\n"))
	require.NoError(t, err)
	assert.Equal(t, "  a\n  b\n", out.String())
}

func TestRecordingUI(t *testing.T) {
	r := ui.NewRecordingUI("yes", "")
	r.Info("one")
	r.Indent().Error("two")
	r.Table([]string{"a", "b"}, [][]string{{"1", "2"}})

	assert.True(t, r.Confirm("ok?", false))
	assert.True(t, r.Confirm("ok?", true))
	assert.Panics(t, func() { r.Confirm("ok?", true) })

	assert.Equal(t, []string{"one"}, r.InfoMessages())
	assert.Equal(t, []string{"two"}, r.ErrorMessages())
	assert.Equal(t, []string{"1\t2"}, r.TableRows())
	assert.True(t, r.HasMessage("TWO"))
	assert.Equal(t, 1, r.Entries()[1].Depth)
	assert.Equal(t, []string{"a\tb"}, r.Values("TableHeader"))
	assert.Equal(t, "plain", r.Style(ui.StyledText{Text: "plain", Severity: ui.SeverityError}))
}

func TestStyledTextJSON(t *testing.T) {
	b, err := json.Marshal(ui.StyledText{Text: "evm", Severity: ui.SeveritySuccess})
	require.NoError(t, err)
	assert.Equal(t, `"evm"`, string(b))
}
