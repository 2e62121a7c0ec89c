// =============================================================================
// Encore Royalty Core - Configuration Management
// =============================================================================
//
// Two layers of YAML configuration:
//
//   1. Main config (config.yaml): directories, logging, concurrency and
//      statement parsing defaults.
//   2. Per-source mapping configs (configs/<source>.yaml): filename
//      patterns and custom column mappings that override the built-in
//      defaults for that source.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/EncoreMusictech/encore-live-sub008/internal/lexicon"
	"github.com/EncoreMusictech/encore-live-sub008/internal/mapper"
	"github.com/EncoreMusictech/encore-live-sub008/internal/statement"
)

// =============================================================================
// MAIN CONFIGURATION
// =============================================================================

// MainConfig holds application-level settings loaded from config.yaml.
type MainConfig struct {
	// InputDir is watched for incoming statement files
	InputDir string `yaml:"input_dir"`

	// OutputDir receives normalized workbooks and CWR exports
	OutputDir string `yaml:"output_dir"`

	// InputArchiveDir receives processed statement files
	InputArchiveDir string `yaml:"input_archive_dir"`

	// OutputArchiveDir receives copies of generated outputs
	OutputArchiveDir string `yaml:"output_archive_dir"`

	// ConfigsDir holds per-source mapping configs
	ConfigsDir string `yaml:"configs_dir"`

	// LogLevel: DEBUG, INFO, WARN, ERROR
	LogLevel string `yaml:"log_level"`

	// OutputNameFormat supports {source}, {timestamp} and {uuid} placeholders
	OutputNameFormat string `yaml:"output_name_format"`

	// MaxConcurrency caps parallel statement processing
	MaxConcurrency int `yaml:"max_concurrency"`

	// ContinueOnError keeps a batch running after individual failures
	ContinueOnError bool `yaml:"continue_on_error"`

	// CSV holds default statement parsing settings
	CSV statement.Settings `yaml:"csv_settings"`
}

// LoadMainConfig reads config.yaml, applies defaults and creates any
// missing directories. A missing file is not an error; defaults apply.
func LoadMainConfig(path string) (*MainConfig, error) {
	cfg := &MainConfig{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *MainConfig) applyDefaults() {
	if c.InputDir == "" {
		c.InputDir = "input"
	}
	if c.OutputDir == "" {
		c.OutputDir = "output"
	}
	if c.InputArchiveDir == "" {
		c.InputArchiveDir = filepath.Join(c.InputDir, "archive")
	}
	if c.OutputArchiveDir == "" {
		c.OutputArchiveDir = filepath.Join(c.OutputDir, "archive")
	}
	if c.ConfigsDir == "" {
		c.ConfigsDir = "configs"
	}
	if c.LogLevel == "" {
		c.LogLevel = "INFO"
	}
	if c.OutputNameFormat == "" {
		c.OutputNameFormat = "{source}_{timestamp}_normalized.xlsx"
	}
	if c.MaxConcurrency <= 0 {
		c.MaxConcurrency = 4
	}
	c.CSV.ApplyDefaults()
}

func (c *MainConfig) validate() error {
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return fmt.Errorf("invalid log_level %q (expected DEBUG, INFO, WARN or ERROR)", c.LogLevel)
	}

	for _, dir := range []string{c.InputDir, c.OutputDir, c.InputArchiveDir, c.OutputArchiveDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// =============================================================================
// PER-SOURCE MAPPING CONFIGURATION
// =============================================================================

// ColumnList unmarshals either a single YAML scalar or a sequence, so
// configs can write:
//
//	WORK TITLE: Title Name
//
// or
//
//	WORK TITLE: [Title Name, Work Title]
type ColumnList []string

func (c *ColumnList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single string
		if err := value.Decode(&single); err != nil {
			return err
		}
		*c = ColumnList{single}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := value.Decode(&many); err != nil {
			return err
		}
		*c = ColumnList(many)
		return nil
	default:
		return fmt.Errorf("mapping_rules values must be a string or list of strings")
	}
}

// SourceMappingConfig is the on-disk shape of configs/<source>.yaml.
type SourceMappingConfig struct {
	// SourceName must parse to a known revenue source
	SourceName string `yaml:"source_name"`

	// FilenamePatterns are case-insensitive globs matched against
	// incoming file names during source detection
	FilenamePatterns []string `yaml:"filename_patterns"`

	// MappingRules map standard field names to candidate columns
	MappingRules map[string]ColumnList `yaml:"mapping_rules"`
}

// LoadSourceMappings reads every YAML file in dir and returns the custom
// mapping layer plus filename detection patterns, keyed by source. Files
// naming an unknown source are skipped with an error entry; unknown field
// names within a file are silently dropped.
func LoadSourceMappings(dir string) (map[lexicon.Source]mapper.FieldMapping, map[lexicon.Source][]string, error) {
	mappings := make(map[lexicon.Source]mapper.FieldMapping)
	patterns := make(map[lexicon.Source][]string)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return mappings, patterns, nil
		}
		return nil, nil, fmt.Errorf("failed to read configs directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !isYAMLFile(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
		}

		var cfg SourceMappingConfig
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}

		source := lexicon.ParseSource(cfg.SourceName)
		if source == lexicon.SourceUnknown {
			return nil, nil, fmt.Errorf("%s: unknown source_name %q", path, cfg.SourceName)
		}

		fieldMapping := make(mapper.FieldMapping)
		for name, columns := range cfg.MappingRules {
			field, ok := lexicon.ParseField(name)
			if !ok {
				continue
			}
			fieldMapping[field] = lexicon.Columns(columns)
		}

		if len(fieldMapping) > 0 {
			mappings[source] = fieldMapping
		}
		if len(cfg.FilenamePatterns) > 0 {
			patterns[source] = append(patterns[source], cfg.FilenamePatterns...)
		}
	}

	return mappings, patterns, nil
}

// SaveSourceMapping writes a custom mapping back to configs/<source>.yaml,
// preserving any filename patterns already on disk.
func SaveSourceMapping(dir string, source lexicon.Source, mapping mapper.FieldMapping) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create configs directory: %w", err)
	}

	path := filepath.Join(dir, configFileName(source))

	cfg := SourceMappingConfig{SourceName: string(source)}
	if data, err := os.ReadFile(path); err == nil {
		var existing SourceMappingConfig
		if err := yaml.Unmarshal(data, &existing); err == nil {
			cfg.FilenamePatterns = existing.FilenamePatterns
		}
	}

	cfg.MappingRules = make(map[string]ColumnList, len(mapping))
	for field, columns := range mapping {
		cfg.MappingRules[string(field)] = ColumnList(columns)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// configFileName produces a filesystem-safe file name for a source, e.g.
// "ASCAP DOMESTIC" -> "ascap_domestic.yaml".
func configFileName(source lexicon.Source) string {
	name := strings.ToLower(string(source))
	name = strings.ReplaceAll(name, " ", "_")
	return name + ".yaml"
}

func isYAMLFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
