package mover

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/kestrelmedia/tubekit/internal/config"
	"github.com/kestrelmedia/tubekit/internal/display"
	"github.com/kestrelmedia/tubekit/internal/logging"
)

// MoveStats tracks what one packaging run moved.
type MoveStats struct {
	Videos     int
	DataFiles  int
	TotalBytes int64
	DestDir    string
}

// Run packages the source directory into a dated range folder under the
// destination root. The clock is injected so the folder date is testable.
//
// Unlike the enhancement batch, any filesystem error aborts the run
// immediately: a half-moved working directory is worse than a late one.
func Run(cfg *config.Config, log *logging.Logger, now time.Time) (MoveStats, error) {
	var stats MoveStats
	m := &cfg.Mover

	files, err := listFiles(m.SourceDir)
	if err != nil {
		return stats, fmt.Errorf("scan source: %w", err)
	}
	if len(files) == 0 {
		log.Info("Source %s is empty, nothing to move", m.SourceDir)
		return stats, nil
	}

	analysisPath := filepath.Join(m.SourceDir, m.AnalysisJSON)
	vr, err := ReadViewRange(analysisPath)
	if err != nil {
		return stats, err
	}
	log.Info("View range: %s (%d files to move)", vr.Label(), len(files))

	destDir := filepath.Join(m.DestRoot, FolderName(now, m.DateFormat, vr))
	stats.DestDir = destDir

	if _, err := os.Stat(destDir); err == nil {
		if m.OnExisting == config.ExistingFail {
			return stats, fmt.Errorf("destination %s already exists", destDir)
		}
		log.Warn("Destination %s exists, merging", destDir)
	}

	videoDir := filepath.Join(destDir, m.VideoSubdir)
	dataDir := filepath.Join(destDir, m.DataSubdir)

	if cfg.DryRun {
		log.Info("[DRY] Would move %d files into %s", len(files), destDir)
		return stats, nil
	}

	for _, d := range []string{videoDir, dataDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return stats, fmt.Errorf("create %s: %w", d, err)
		}
	}

	videoExts := config.ExtensionSet(m.Extensions)
	for _, src := range files {
		rel, err := filepath.Rel(m.SourceDir, src)
		if err != nil {
			return stats, err
		}

		// Name clashes (flattened videos, or any merge into an existing
		// destination) get a numbered suffix instead of overwriting.
		var dst string
		isVideo := false
		switch {
		case src == analysisPath:
			dst = uniquePath(filepath.Join(dataDir, filepath.Base(src)))
		case videoExts[strings.ToLower(filepath.Ext(src))]:
			dst = uniquePath(filepath.Join(videoDir, filepath.Base(src)))
			isVideo = true
		default:
			dst = filepath.Join(dataDir, rel)
			if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
				return stats, fmt.Errorf("create %s: %w", filepath.Dir(dst), err)
			}
			dst = uniquePath(dst)
		}

		var size int64
		if fi, err := os.Stat(src); err == nil {
			size = fi.Size()
		}
		if err := moveFile(src, dst); err != nil {
			return stats, fmt.Errorf("move %s: %w", rel, err)
		}
		log.Debug(cfg.Verbose, "Moved %s -> %s", rel, dst)

		stats.TotalBytes += size
		if isVideo {
			stats.Videos++
		} else {
			stats.DataFiles++
		}
	}

	if m.ClearSource {
		if err := removeEmptiedDirs(m.SourceDir); err != nil {
			return stats, fmt.Errorf("clear source: %w", err)
		}
	}

	log.Success("Moved %d videos and %d data files (%s) to %s",
		stats.Videos, stats.DataFiles, display.FormatBytes(stats.TotalBytes), destDir)
	return stats, nil
}

// listFiles returns every regular file under root, sorted for deterministic
// move order.
func listFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
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

// uniquePath returns path if unused, otherwise the first "_dupN" variant
// that does not exist on disk. Needed when merging into an existing
// destination or when flattened videos share a basename.
func uniquePath(path string) string {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return path
	}
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_dup%d%s", stem, n, ext)
		if _, err := os.Stat(candidate); errors.Is(err, fs.ErrNotExist) {
			return candidate
		}
	}
}

// moveFile renames src to dst, falling back to copy-and-remove when the
// two sit on different filesystems.
func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	var linkErr *os.LinkError
	if errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		if copyErr := copyFile(src, dst); copyErr != nil {
			return copyErr
		}
		return os.Remove(src)
	}
	return err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fi.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}

// removeEmptiedDirs deletes now-empty subdirectories under root, deepest
// first. The root itself stays so the next session has a place to land.
func removeEmptiedDirs(root string) error {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Deepest paths sort last; remove in reverse.
	sort.Strings(dirs)
	for i := len(dirs) - 1; i >= 0; i-- {
		if err := os.Remove(dirs[i]); err != nil {
			// Not empty means a file failed to move earlier; surface it.
			return err
		}
	}
	return nil
}
