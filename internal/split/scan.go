// Package split halves video files that exceed a size limit: two
// stream-copy segments replace the original, which is archived beside them.
package split

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Scan walks targetDir and returns files with matching extensions whose
// size exceeds limitBytes, sorted for deterministic order. Directories
// named archiveSubdir are pruned so already-archived originals are never
// split again.
func Scan(targetDir, archiveSubdir string, exts map[string]bool, limitBytes int64) ([]string, error) {
	var files []string
	err := filepath.WalkDir(targetDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == archiveSubdir && path != targetDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !exts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		if fi.Size() > limitBytes {
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
