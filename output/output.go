// Package output holds rendered files in memory and writes them out only once
// a run has rendered everything, so a failing run leaves no partial output.
package output

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/teranos/packgen/errors"
)

// File is one rendered output file. Path is relative to the destination directory.
type File struct {
	Path    string
	Content string
}

// Write creates dir if needed and writes every file into it.
func Write(dir string, files []File) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "failed to create output directory %s", dir)
	}

	for _, f := range files {
		path := filepath.Join(dir, f.Path)
		if err := os.WriteFile(path, []byte(f.Content), 0644); err != nil {
			return errors.Wrapf(err, "failed to write %s", path)
		}
	}

	return nil
}

// Status classifies a file in a comparison.
type Status string

const (
	Missing  Status = "missing"
	Modified Status = "modified"
)

// Difference is one generated file that does not match what is on disk.
type Difference struct {
	Path   string
	Status Status
}

// CompareResult reports whether the files on disk match a fresh rendering.
type CompareResult struct {
	UpToDate    bool
	Differences []Difference
}

// Compare checks files against the contents of dir without writing anything.
// Files in dir that are not part of files are ignored.
func Compare(dir string, files []File) (*CompareResult, error) {
	result := &CompareResult{UpToDate: true}

	for _, f := range files {
		path := filepath.Join(dir, f.Path)
		existing, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			result.Differences = append(result.Differences, Difference{Path: f.Path, Status: Missing})
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}
		if !bytes.Equal(existing, []byte(f.Content)) {
			result.Differences = append(result.Differences, Difference{Path: f.Path, Status: Modified})
		}
	}

	sort.Slice(result.Differences, func(i, j int) bool {
		return result.Differences[i].Path < result.Differences[j].Path
	})
	result.UpToDate = len(result.Differences) == 0

	return result, nil
}
