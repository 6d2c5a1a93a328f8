package validator

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileResult pairs a validation report with the file it was produced for.
type FileResult struct {
	File string `json:"file"`
	Result
}

// ValidateFile validates a serialized bundle on disk. A file that cannot be
// read is an I/O error; a file that cannot be parsed is an invalid report.
func ValidateFile(path string, opts Options) (FileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileResult{File: path}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return FileResult{File: path, Result: ValidateJSON(data, opts)}, nil
}

// ValidateDirectory validates every .json file in a directory, optionally
// recursing into subdirectories. Files are processed in sorted path order so
// reports diff cleanly across runs. The boolean result is true only when
// every file validated.
func ValidateDirectory(dir string, opts Options, recursive bool) ([]FileResult, bool, error) {
	var paths []string

	if recursive {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".json") {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, false, fmt.Errorf("failed to walk %s: %w", dir, err)
		}
	} else {
		matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
		if err != nil {
			return nil, false, fmt.Errorf("failed to list %s: %w", dir, err)
		}
		paths = matches
	}

	sort.Strings(paths)

	allValid := true
	results := make([]FileResult, 0, len(paths))
	for _, path := range paths {
		result, err := ValidateFile(path, opts)
		if err != nil {
			return results, false, err
		}
		results = append(results, result)
		if !result.Valid {
			allValid = false
		}
	}

	return results, allValid, nil
}
