// =============================================================================
// Encore Royalty Core - Statement Processing Pipeline
// =============================================================================
//
// The pipeline drives a statement file end to end:
//
//   1. Parse (CSV/XLSX) into a raw statement batch
//   2. Detect the revenue source (filename patterns, header fingerprint)
//   3. Map raw rows onto the standard field set
//   4. Write the normalized workbook
//   5. Archive the input and copy the output to the archive
//
// Batches run concurrently, capped by max_concurrency.
//
// =============================================================================

package pipeline

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/EncoreMusictech/encore-live-sub008/internal/config"
	"github.com/EncoreMusictech/encore-live-sub008/internal/lexicon"
	"github.com/EncoreMusictech/encore-live-sub008/internal/mapper"
	"github.com/EncoreMusictech/encore-live-sub008/internal/statement"
	"github.com/EncoreMusictech/encore-live-sub008/internal/types"
	"github.com/EncoreMusictech/encore-live-sub008/pkg/utils"
)

// =============================================================================
// TYPES
// =============================================================================

// Result captures the outcome of processing a single statement file.
type Result struct {
	FilePath   string
	OutputFile string
	Source     lexicon.Source
	Success    bool
	Error      error
	Stats      Stats
}

// Stats holds per-file processing counters.
type Stats struct {
	RowsProcessed    int
	RecordsMapped    int
	UnmappedColumns  int
	ValidationErrors int
	ProcessingTime   time.Duration
}

// Options adjust a pipeline run.
type Options struct {
	// SourceOverride skips detection when set
	SourceOverride lexicon.Source

	// UserMappings is the per-import mapping layer
	UserMappings mapper.FieldMapping

	// DryRun parses and maps but writes and archives nothing
	DryRun bool
}

// Pipeline processes royalty statements according to a loaded config.
type Pipeline struct {
	cfg *config.MainConfig

	// custom is the persisted mapping layer; each processed file gets its
	// own Mapper built from it, since Mapper instances are not safe to
	// share across concurrent imports.
	custom   map[lexicon.Source]mapper.FieldMapping
	patterns map[lexicon.Source][]string
	logger   types.Logger
}

// =============================================================================
// CONSTRUCTION
// =============================================================================

// New builds a pipeline from the main config, loading per-source mapping
// configs from the configs directory.
func New(cfg *config.MainConfig, logger types.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = types.NopLogger{}
	}

	custom, patterns, err := config.LoadSourceMappings(cfg.ConfigsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load source mappings: %w", err)
	}

	return &Pipeline{
		cfg:      cfg,
		custom:   custom,
		patterns: patterns,
		logger:   logger,
	}, nil
}

// Mapper builds a fresh mapper over the persisted custom layer, for
// inspection commands and per-file processing.
func (p *Pipeline) Mapper() *mapper.Mapper {
	m := mapper.New(p.custom)
	m.SetLogger(p.logger)
	return m
}

// =============================================================================
// BATCH PROCESSING
// =============================================================================

// Run discovers statements in the input directory and processes them
// concurrently. Per-file failures do not stop the batch when
// continue_on_error is set.
func (p *Pipeline) Run(opts Options) ([]Result, error) {
	files, err := utils.DiscoverStatements(p.cfg.InputDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		p.logger.Info("No statement files found in %s", p.cfg.InputDir)
		return nil, nil
	}

	p.logger.Info("Processing %d statement file(s)", len(files))

	results := make([]Result, len(files))
	semaphore := make(chan struct{}, p.cfg.MaxConcurrency)
	var wg sync.WaitGroup

	for i, file := range files {
		wg.Add(1)
		go func(i int, file string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results[i] = p.ProcessFile(file, opts)
		}(i, file)
	}

	wg.Wait()

	for _, result := range results {
		if result.Error != nil && !p.cfg.ContinueOnError {
			return results, result.Error
		}
	}
	return results, nil
}

// =============================================================================
// SINGLE FILE PROCESSING
// =============================================================================

// ProcessFile runs one statement through the full pipeline.
func (p *Pipeline) ProcessFile(path string, opts Options) Result {
	start := time.Now()
	result := Result{FilePath: path}

	fail := func(err error) Result {
		result.Error = err
		result.Stats.ProcessingTime = time.Since(start)
		p.logger.Error("%s: %v", filepath.Base(path), err)
		if logErr := utils.WriteErrorLog(p.cfg.OutputDir, filepath.Base(path), err); logErr != nil {
			p.logger.Warn("failed to record error log entry: %v", logErr)
		}
		return result
	}

	stmt, err := statement.Parse(path, p.cfg.CSV)
	if err != nil {
		return fail(err)
	}
	result.Stats.RowsProcessed = len(stmt.Rows)

	source := opts.SourceOverride
	if source == lexicon.SourceUnknown {
		source = statement.DetectSource(stmt.Headers, path, p.patterns)
	}
	result.Source = source

	if source == lexicon.SourceUnknown {
		p.logger.Warn("%s: revenue source not detected, using user mappings only", filepath.Base(path))
	} else {
		p.logger.Info("%s: detected source %s", filepath.Base(path), source)
	}

	mapResult := p.Mapper().MapData(*stmt, string(source), opts.UserMappings)
	result.Stats.RecordsMapped = len(mapResult.MappedData)
	result.Stats.UnmappedColumns = len(mapResult.UnmappedFields)
	result.Stats.ValidationErrors = len(mapResult.ValidationErrors)

	for _, msg := range mapResult.ValidationErrors {
		p.logger.Warn("%s: %s", filepath.Base(path), msg)
	}

	if opts.DryRun {
		result.Success = true
		result.Stats.ProcessingTime = time.Since(start)
		return result
	}

	outputName := utils.OutputFileName(p.cfg.OutputNameFormat, string(source))
	outputPath := filepath.Join(p.cfg.OutputDir, outputName)

	if err := WriteCanonicalWorkbook(outputPath, mapResult); err != nil {
		return fail(err)
	}
	result.OutputFile = outputPath

	if err := utils.CopyToArchive(outputPath, p.cfg.OutputArchiveDir); err != nil {
		p.logger.Warn("%s: %v", filepath.Base(path), err)
	}
	if err := utils.ArchiveInput(path, p.cfg.InputArchiveDir); err != nil {
		p.logger.Warn("%s: %v", filepath.Base(path), err)
	}

	result.Success = true
	result.Stats.ProcessingTime = time.Since(start)
	p.logger.Info("%s: mapped %d of %d row(s) -> %s",
		filepath.Base(path), result.Stats.RecordsMapped, result.Stats.RowsProcessed, outputName)
	return result
}
