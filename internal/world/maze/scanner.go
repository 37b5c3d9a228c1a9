package maze

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is a maze file discovered on disk.
type Entry struct {
	Name string // Maze name from the file, or the file name if it doesn't parse
	Path string
	Err  error // Non-nil when the file exists but is not a valid maze
}

// Scan lists the YAML maze files in dir. Hidden files and subdirectories are skipped.
// Files that fail to parse are still listed with Err set so callers can report them.
func Scan(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read maze directory: %w", err)
	}

	var entries []Entry
	for _, de := range dirEntries {
		if de.IsDir() || strings.HasPrefix(de.Name(), ".") {
			continue
		}

		ext := strings.ToLower(filepath.Ext(de.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, de.Name())
		entry := Entry{Name: strings.TrimSuffix(de.Name(), filepath.Ext(de.Name())), Path: path}

		def, err := LoadFile(path)
		if err != nil {
			entry.Err = err
		} else if def.Name != "" {
			entry.Name = def.Name
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}
