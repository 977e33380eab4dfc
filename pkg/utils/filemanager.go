// =============================================================================
// Sales Totals - File Manager Utility
// =============================================================================
//
// This module provides the file system plumbing for a run:
//   - Store file discovery (recursive)
//   - Output directory management
//
// DISCOVERY RULES:
//   - The stores directory must exist; a missing root aborts the run
//   - Every regular file below the root whose extension matches is returned
//   - Order is the traversal order, callers must not rely on it being sorted
//
// =============================================================================

package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrStoresNotFound is returned (wrapped) when the stores directory does not exist.
var ErrStoresNotFound = errors.New("stores directory not found")

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file system access for a run.
type FileManager struct {
	// StoresDir is the root scanned for store files.
	StoresDir string

	// OutputDir is the directory receiving the totals log and the report.
	OutputDir string
}

// NewFileManager creates a new FileManager for the given directories.
func NewFileManager(storesDir, outputDir string) *FileManager {
	return &FileManager{
		StoresDir: storesDir,
		OutputDir: outputDir,
	}
}

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureOutputDir creates the output directory if it doesn't exist.
// Calling it on an existing directory is a no-op.
func (fm *FileManager) EnsureOutputDir() error {
	if err := os.MkdirAll(fm.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", fm.OutputDir, err)
	}
	return nil
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverSalesFiles scans the stores directory recursively.
//
// PARAMETERS:
//   - extension: The file extension to match, including the dot (e.g., ".json").
//                Matching is exact and case-sensitive.
//
// RETURNS:
//   - A slice of file paths, empty (not nil error) when nothing matches.
//   - An error wrapping ErrStoresNotFound if the root is missing, or any
//     other error raised while walking the tree.
func (fm *FileManager) DiscoverSalesFiles(extension string) ([]string, error) {
	info, err := os.Stat(fm.StoresDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrStoresNotFound, fm.StoresDir)
		}
		return nil, fmt.Errorf("failed to access stores directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("stores path %s is not a directory", fm.StoresDir)
	}

	files := []string{}

	err = filepath.Walk(fm.StoresDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		if filepath.Ext(path) == extension {
			files = append(files, path)
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk stores directory: %w", err)
	}

	return files, nil
}
