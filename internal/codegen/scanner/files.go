package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Extension is the file extension every input file must have. The match is
// case-sensitive.
const Extension = ".riv"

// FindCandidateFiles lists the asset files for path. A directory yields the
// matching files directly inside it, sorted by name; a file path with the
// right extension is returned on its own.
func FindCandidateFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrNoInputFound, err)
	}
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if hasExtension(path) {
			return []string{path}, nil
		}
		return nil, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !hasExtension(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(path, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func hasExtension(path string) bool {
	return filepath.Ext(path) == Extension
}
