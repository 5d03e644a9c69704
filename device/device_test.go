package device

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleReadLine(t *testing.T) {
	out := &bytes.Buffer{}
	console := NewConsole(strings.NewReader("P1001\r\ncafe\u0301"), out, termenv.WithProfile(termenv.Ascii))

	line, err := console.ReadLine("User ID: ")
	require.NoError(t, err)
	assert.Equal(t, "P1001", line)

	line, err = console.ReadLine("")
	require.NoError(t, err)
	assert.Equal(t, "caf\u00e9", line)

	_, err = console.ReadLine("Password: ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "User ID: Password: ", out.String())
}

func TestConsoleWriteLines(t *testing.T) {
	out := &bytes.Buffer{}
	console := NewConsole(strings.NewReader(""), out, termenv.WithProfile(termenv.Ascii)).NoClear()

	require.NoError(t, console.WriteLines("one", "two"))
	require.NoError(t, console.Clear())
	assert.Equal(t, "one\ntwo\n\n", out.String())
	assert.Equal(t, termenv.Ascii, console.Profile())
}

func TestConsoleClear(t *testing.T) {
	out := &bytes.Buffer{}
	console := NewConsole(strings.NewReader(""), out, termenv.WithProfile(termenv.Ascii))
	require.NoError(t, console.Clear())
	assert.Contains(t, out.String(), "\x1b[2J")
}

func TestRecorder(t *testing.T) {
	r := NewRecorder("1", "2")
	require.NoError(t, r.WriteLines("first"))
	require.NoError(t, r.Clear())
	require.NoError(t, r.WriteLines("second"))

	line, err := r.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "1", line)
	assert.Equal(t, []string{"second", "> 1"}, r.Screen(0))
	assert.Equal(t, []string{"first"}, r.Screen(1))
	assert.Equal(t, 1, r.Pending())
	assert.True(t, r.Contains("first"))

	require.NoError(t, r.Close())
	_, err = r.ReadLine("> ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestLogged(t *testing.T) {
	r := NewRecorder("yes")
	dev := Logged(r)
	line, err := dev.ReadLine("Confirm: ")
	require.NoError(t, err)
	assert.Equal(t, "yes", line)
	assert.Equal(t, []string{"Confirm: "}, r.Prompts)
}
