// Package ingestion discovers feedback files in the source folder and
// classifies them into survey categories.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// IsAggregateFile reports whether name looks like a previously written report,
// i.e. contains the aggregated file prefix ignoring case.
func IsAggregateFile(name, aggregatedPrefix string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(aggregatedPrefix))
}

// ScanFolder lists the candidate feedback files directly inside folder, in
// lexical order. Sub-directories, hidden files and previous reports are left
// out; no extension filter is applied. Entries that cannot be inspected, such
// as dangling symlinks, are skipped with a warning on logger.
func ScanFolder(folder, aggregatedPrefix string, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read source folder %s: %w", folder, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if IsAggregateFile(name, aggregatedPrefix) {
			continue
		}

		path := filepath.Join(folder, name)
		// Stat follows symlinks so linked directories are skipped too.
		info, err := os.Stat(path)
		if err != nil {
			logger.Warn("file cannot be inspected and will be skipped",
				zap.String("file", name),
				zap.Error(err))
			continue
		}
		if info.IsDir() {
			logger.Debug("skipping sub-directory", zap.String("file", name))
			continue
		}
		files = append(files, path)
	}

	return files, nil
}
