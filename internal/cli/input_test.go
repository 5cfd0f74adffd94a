package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_ReadsLine(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("Orders\n"))

	got, err := GetSimpleText(reader, "Table name", &out)
	require.NoError(t, err)
	assert.Equal(t, "Orders", got)
	assert.Equal(t, "Table name\n> ", out.String())
}

func TestGetSimpleText_TrimsWhitespace(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("  Orders  \n"))

	got, err := GetSimpleText(reader, "Table name", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "Orders", got)
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("Orders"))

	got, err := GetSimpleText(reader, "Table name", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "Orders", got)
}

func TestGetSimpleText_EOFWithNoInput(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(reader, "Table name", io.Discard)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetPassword_UsesTerminalReader(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("secret"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	got, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, "secret", got)
	assert.Equal(t, "Enter password: \n", out.String())
}

func TestGetPassword_ReadError(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return nil, errors.New("not a terminal") }
	t.Cleanup(func() { readPassword = orig })

	_, err := GetPassword(io.Discard)
	require.Error(t, err)
}
