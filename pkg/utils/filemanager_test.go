package utils

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverStatements(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.csv", "b.xlsx", "c.pdf", "d.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "archive"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "archive", "old.csv"), []byte("x"), 0644))

	files, err := DiscoverStatements(dir)
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	assert.Equal(t, []string{"a.csv", "b.xlsx", "d.txt"}, names,
		"non-statement files and subdirectories are skipped")
}

func TestArchiveInput(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "archive")
	path := filepath.Join(dir, "stmt.csv")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	require.NoError(t, ArchiveInput(path, archive))
	assert.NoFileExists(t, path)
	assert.FileExists(t, filepath.Join(archive, "stmt.csv"))
}

func TestArchiveInputAvoidsCollision(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "archive")
	require.NoError(t, os.MkdirAll(archive, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(archive, "stmt.csv"), []byte("old"), 0644))

	path := filepath.Join(dir, "stmt.csv")
	require.NoError(t, os.WriteFile(path, []byte("new"), 0644))

	require.NoError(t, ArchiveInput(path, archive))

	entries, err := os.ReadDir(archive)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "existing archive entry is not overwritten")
}

func TestCopyToArchive(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "archive")
	path := filepath.Join(dir, "out.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("payload"), 0644))

	require.NoError(t, CopyToArchive(path, archive))

	assert.FileExists(t, path, "source is left in place")
	copied, err := os.ReadFile(filepath.Join(archive, "out.xlsx"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(copied))
}

func TestOutputFileName(t *testing.T) {
	name := OutputFileName("{source}_{timestamp}_normalized.xlsx", "ASCAP Domestic")
	assert.True(t, strings.HasPrefix(name, "ascap_domestic_"))
	assert.True(t, strings.HasSuffix(name, "_normalized.xlsx"))

	plain := OutputFileName("fixed.xlsx", "BMI")
	assert.Equal(t, "fixed.xlsx", plain)

	unknown := OutputFileName("{source}.xlsx", "")
	assert.Equal(t, "unknown.xlsx", unknown)

	unique := OutputFileName("{uuid}.xlsx", "BMI")
	assert.NotEqual(t, unique, OutputFileName("{uuid}.xlsx", "BMI"))
}

func TestWriteErrorLog(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteErrorLog(dir, "stmt.csv", errors.New("parse failed")))
	require.NoError(t, WriteErrorLog(dir, "other.csv", errors.New("boom")))

	data, err := os.ReadFile(filepath.Join(dir, "errors.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "stmt.csv: parse failed")
	assert.Contains(t, string(data), "other.csv: boom")
}
