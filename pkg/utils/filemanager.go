// =============================================================================
// Encore Royalty Core - File Management Utilities
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// statementExtensions are the file types accepted as royalty statements.
var statementExtensions = map[string]bool{
	".csv":  true,
	".txt":  true,
	".xlsx": true,
	".xlsm": true,
}

// DiscoverStatements returns statement files directly inside dir, sorted
// by name. Subdirectories (including the archive) are not descended into.
func DiscoverStatements(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if statementExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	return files, nil
}

// ArchiveInput moves a processed statement into the archive directory,
// appending a timestamp if a file with the same name already exists.
func ArchiveInput(path string, archiveDir string) error {
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	dest := filepath.Join(archiveDir, filepath.Base(path))
	if _, err := os.Stat(dest); err == nil {
		ext := filepath.Ext(dest)
		base := strings.TrimSuffix(filepath.Base(dest), ext)
		dest = filepath.Join(archiveDir, fmt.Sprintf("%s_%s%s", base, time.Now().Format("20060102_150405"), ext))
	}

	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("failed to archive %s: %w", path, err)
	}
	return nil
}

// CopyToArchive copies a generated output file into the output archive.
func CopyToArchive(path string, archiveDir string) error {
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer src.Close()

	dest := filepath.Join(archiveDir, filepath.Base(path))
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("failed to copy to archive: %w", err)
	}
	return nil
}

// OutputFileName expands an output name template. Supported placeholders:
// {source}, {timestamp}, {uuid}.
func OutputFileName(format string, source string) string {
	name := format
	name = strings.ReplaceAll(name, "{source}", sanitizeName(source))
	name = strings.ReplaceAll(name, "{timestamp}", time.Now().Format("20060102_150405"))
	name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())
	return name
}

// WriteErrorLog appends a processing failure to errors.log in dir.
func WriteErrorLog(dir string, file string, procErr error) error {
	logPath := filepath.Join(dir, "errors.log")
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open error log: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] %s: %v\n", time.Now().Format(time.RFC3339), file, procErr)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("failed to write error log: %w", err)
	}
	return nil
}

// sanitizeName makes a source name filesystem-safe.
func sanitizeName(name string) string {
	if name == "" {
		return "unknown"
	}
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "_")
	return name
}
