package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefinitions_Valid(t *testing.T) {
	result, err := LoadDefinitions(filepath.Join("testdata", "defs", "valid"))
	require.NoError(t, err)

	assert.Equal(t, 1, result.FileCount)
	require.Len(t, result.Definitions, 2)
	assert.Equal(t, "knows_chain", result.Definitions[0].Name)
	assert.Equal(t, "either_rel", result.Definitions[1].Name)
}

func TestLoadDefinitions_NotFound(t *testing.T) {
	_, err := LoadDefinitions("/nonexistent/directory/path")
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
}

func TestLoadDefinitions_NotADirectory(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "file.cue")
	require.NoError(t, os.WriteFile(tmpFile, []byte("pattern: {}"), 0644))

	_, err := LoadDefinitions(tmpFile)
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
}

func TestLoadDefinitions_NoCUEFiles(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "readme.txt"), []byte("not cue"), 0644))

	_, err := LoadDefinitions(tmpDir)
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok)
	assert.Equal(t, ErrCodeNoFiles, loadErr.Code)
}

func TestLoadDefinitions_CompileErrorCarriesPosition(t *testing.T) {
	_, err := LoadDefinitions(filepath.Join("testdata", "defs", "badcompile"))
	require.Error(t, err)

	loadErr, ok := err.(*LoadError)
	require.True(t, ok)
	assert.Equal(t, ErrCodeCompile, loadErr.Code)
	assert.Contains(t, loadErr.Message, "non-negative")
}

func TestFindCUEFiles_RecursesSubdirectories(t *testing.T) {
	tmpDir := t.TempDir()
	sub := filepath.Join(tmpDir, "nested")
	require.NoError(t, os.MkdirAll(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a.cue"), []byte("x: 1"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "b.cue"), []byte("y: 2"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "ignored.json"), []byte("{}"), 0644))

	files, err := FindCUEFiles(tmpDir)
	require.NoError(t, err)
	assert.Len(t, files, 2)
}
