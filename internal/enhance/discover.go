package enhance

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Discover walks inputDir, collects files whose extensions appear in exts
// (lowercase, with leading dot), and returns the paths sorted
// lexicographically for deterministic processing order. The configured
// output directory is pruned so prior runs' outputs are never re-enhanced.
func Discover(inputDir, outputDir string, exts map[string]bool) ([]string, error) {
	absOut := ""
	if outputDir != "" {
		if a, err := filepath.Abs(outputDir); err == nil {
			absOut = a
		}
	}

	var files []string
	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if absOut != "" {
				if a, aerr := filepath.Abs(path); aerr == nil && a == absOut {
					return filepath.SkipDir
				}
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if exts[ext] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
