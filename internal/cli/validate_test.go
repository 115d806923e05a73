package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runValidateCommand(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: format}
	cmd := NewValidateCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestValidate_ValidDefinitionsText(t *testing.T) {
	out, err := runValidateCommand(t, "text", filepath.Join("testdata", "defs", "valid"))
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "validate_text", []byte(out))
}

func TestValidate_ValidDefinitionsJSON(t *testing.T) {
	out, err := runValidateCommand(t, "json", filepath.Join("testdata", "defs", "valid"))
	require.NoError(t, err)

	var report ValidateReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Valid)
	require.Len(t, report.Patterns, 2)
	for _, pv := range report.Patterns {
		assert.True(t, pv.IsWellFormed)
		assert.Empty(t, pv.Warnings)
	}
}

func TestValidate_NonExistentDirectory(t *testing.T) {
	out, err := runValidateCommand(t, "text", "/nonexistent/directory/path")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, ErrCodeNotFound)
	assert.Contains(t, out, "not found")
}

func TestValidate_EmptyDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	out, err := runValidateCommand(t, "text", tmpDir)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, ErrCodeNoFiles)
	assert.Contains(t, out, "no CUE files found")
}

func TestValidate_CompileErrorIsCommandError(t *testing.T) {
	// A definition the compiler rejects is a load failure (exit 2), not a
	// validation failure (exit 1): it never produced a pattern to validate.
	out, err := runValidateCommand(t, "text", filepath.Join("testdata", "defs", "badcompile"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, ErrCodeCompile)
}

func TestFormatValidateReport_MalformedPattern(t *testing.T) {
	report := &ValidateReport{
		Source: "defs",
		Valid:  false,
		Patterns: []PatternValidation{
			{Name: "ok_one", IsWellFormed: true},
			{
				Name:         "bad_one",
				IsWellFormed: false,
				Warnings:     []string{"pattern.elements[0]: alternation has no branches"},
			},
		},
	}

	out := formatValidateReport(report)
	assert.Contains(t, out, "pattern ok_one: ok")
	assert.Contains(t, out, "pattern bad_one: malformed")
	assert.Contains(t, out, "warning: pattern.elements[0]: alternation has no branches")
	assert.Contains(t, out, "validation failed")
}
