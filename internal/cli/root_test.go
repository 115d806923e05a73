package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmd := NewRootCommand()

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["analyze"])
	assert.True(t, names["validate"])
}

func TestRootCommand_InvalidFormatRejected(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"validate", "--format", "xml", filepath.Join("testdata", "defs", "valid")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestRootCommand_AllFormatsAccepted(t *testing.T) {
	for _, format := range ValidFormats {
		buf := &bytes.Buffer{}
		cmd := NewRootCommand()
		cmd.SetOut(buf)
		cmd.SetErr(buf)
		cmd.SetArgs([]string{"validate", "--format", format, filepath.Join("testdata", "defs", "valid")})

		err := cmd.Execute()
		require.NoError(t, err, "format %s", format)
		assert.NotEmpty(t, buf.String())
	}
}

func TestRootCommand_FormatDefaultsToText(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"validate", filepath.Join("testdata", "defs", "valid")})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "all patterns well-formed")
}

func TestIsValidFormat(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))
	assert.True(t, isValidFormat("yaml"))
	assert.False(t, isValidFormat("xml"))
	assert.False(t, isValidFormat(""))
}
