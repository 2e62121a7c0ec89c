package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EncoreMusictech/encore-live-sub008/internal/lexicon"
	"github.com/EncoreMusictech/encore-live-sub008/internal/mapper"
)

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadMainConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cfg, err := LoadMainConfig(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "input", cfg.InputDir)
	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, filepath.Join("input", "archive"), cfg.InputArchiveDir)
	assert.Equal(t, "configs", cfg.ConfigsDir)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 4, cfg.MaxConcurrency)
	assert.Equal(t, ",", cfg.CSV.Delimiter)

	// Directories are created as part of validation.
	assert.DirExists(t, filepath.Join(dir, "input"))
	assert.DirExists(t, filepath.Join(dir, "output"))
}

func TestLoadMainConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"input_dir: statements\nlog_level: DEBUG\nmax_concurrency: 2\ncsv_settings:\n  delimiter: \"|\"\n"), 0644))

	cfg, err := LoadMainConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "statements", cfg.InputDir)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, 2, cfg.MaxConcurrency)
	assert.Equal(t, "|", cfg.CSV.Delimiter)
	assert.Equal(t, filepath.Join("statements", "archive"), cfg.InputArchiveDir)
}

func TestLoadMainConfigRejectsBadLogLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: LOUD\n"), 0644))

	_, err := LoadMainConfig(path)
	assert.Error(t, err)
}

func TestLoadSourceMappings(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bmi.yaml"), []byte(`source_name: BMI
filename_patterns:
  - "bmi_*"
mapping_rules:
  WORK TITLE: Custom Title
  GROSS: [Amount A, Amount B]
  NOT A FIELD: Ignored
`), 0644))

	mappings, patterns, err := LoadSourceMappings(dir)
	require.NoError(t, err)

	bmi := mappings[lexicon.SourceBMI]
	require.NotNil(t, bmi)
	assert.Equal(t, lexicon.Columns{"Custom Title"}, bmi[lexicon.FieldWorkTitle], "scalar rule becomes a single candidate")
	assert.Equal(t, lexicon.Columns{"Amount A", "Amount B"}, bmi[lexicon.FieldGross])
	assert.Len(t, bmi, 2, "unknown field names are dropped")

	assert.Equal(t, []string{"bmi_*"}, patterns[lexicon.SourceBMI])
}

func TestLoadSourceMappingsMissingDir(t *testing.T) {
	mappings, patterns, err := LoadSourceMappings(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, mappings)
	assert.Empty(t, patterns)
}

func TestLoadSourceMappingsUnknownSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "prs.yaml"),
		[]byte("source_name: PRS\n"), 0644))

	_, _, err := LoadSourceMappings(dir)
	assert.Error(t, err)
}

func TestSaveSourceMappingRoundTrip(t *testing.T) {
	dir := t.TempDir()

	saved := mapper.FieldMapping{
		lexicon.FieldWorkTitle: {"Col A", "Col B"},
		lexicon.FieldGross:     {"Col C"},
	}
	require.NoError(t, SaveSourceMapping(dir, lexicon.SourceASCAPDomestic, saved))

	assert.FileExists(t, filepath.Join(dir, "ascap_domestic.yaml"))

	mappings, _, err := LoadSourceMappings(dir)
	require.NoError(t, err)

	loaded := mappings[lexicon.SourceASCAPDomestic]
	require.NotNil(t, loaded)
	assert.Equal(t, lexicon.Columns{"Col A", "Col B"}, loaded[lexicon.FieldWorkTitle])
	assert.Equal(t, lexicon.Columns{"Col C"}, loaded[lexicon.FieldGross])
}

func TestSaveSourceMappingPreservesPatterns(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bmi.yaml"), []byte(`source_name: BMI
filename_patterns: ["bmi_*"]
`), 0644))

	require.NoError(t, SaveSourceMapping(dir, lexicon.SourceBMI,
		mapper.FieldMapping{lexicon.FieldWorkTitle: {"Col A"}}))

	_, patterns, err := LoadSourceMappings(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"bmi_*"}, patterns[lexicon.SourceBMI])
}
