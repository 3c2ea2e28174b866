package split

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kestrelmedia/tubekit/internal/config"
	"github.com/kestrelmedia/tubekit/internal/display"
	"github.com/kestrelmedia/tubekit/internal/ffmpeg"
	"github.com/kestrelmedia/tubekit/internal/logging"
	"github.com/kestrelmedia/tubekit/internal/naming"
	"github.com/kestrelmedia/tubekit/internal/probe"
)

// RunStats tracks aggregate counters across a split run.
type RunStats struct {
	Total  int
	Split  int
	Failed int
}

// Run finds oversized videos under the configured directory and splits
// each at its midpoint into two stream-copied halves. The original is
// moved into the archive subdirectory beside it. Failures are per-file;
// the run continues.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats
	s := &cfg.Split

	limitBytes := int64(s.SizeLimitMB) * 1024 * 1024
	files, err := Scan(s.TargetDir, s.ArchiveSubdir, config.ExtensionSet(s.Extensions), limitBytes)
	if err != nil {
		log.Error("Scan failed: %v", err)
		return stats
	}

	stats.Total = len(files)
	if stats.Total == 0 {
		log.Info("No files over %d MB in %s", s.SizeLimitMB, s.TargetDir)
		return stats
	}
	log.Info("Found %d files over %d MB", stats.Total, s.SizeLimitMB)

	for _, path := range files {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		if err := splitFile(ctx, cfg, log, path); err != nil {
			log.Error("Split failed for %s: %v", filepath.Base(path), err)
			stats.Failed++
			continue
		}
		stats.Split++
	}

	log.Info("Done: %d split, %d failed", stats.Split, stats.Failed)
	return stats
}

// splitFile cuts one file at duration/2 into part1/part2 and archives the
// original. Partial segments are removed if either extraction fails.
func splitFile(ctx context.Context, cfg *config.Config, log *logging.Logger, path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	log.Info("Splitting %s (%s)", filepath.Base(path), display.FormatBytes(fi.Size()))

	pr, err := probe.Probe(ctx, path)
	if err != nil {
		return fmt.Errorf("probe: %w", err)
	}
	dur := pr.Format.Duration
	if dur <= 0 {
		return fmt.Errorf("no duration reported for %s", path)
	}
	half := dur / 2

	part1, part2 := naming.PartPaths(path)

	if cfg.DryRun {
		log.Success("[DRY] Would split at %.1fs into %s + %s",
			half, filepath.Base(part1), filepath.Base(part2))
		return nil
	}

	segments := []struct {
		out      string
		start    float64
		duration float64
	}{
		{part1, 0, half},
		{part2, half, 0},
	}
	for _, seg := range segments {
		args := ffmpeg.BuildSegmentArgs(path, seg.out, seg.start, seg.duration)
		result := ffmpeg.Execute(ctx, args, cfg.Verbose)
		if result.Err != nil {
			// Leave no partial halves behind.
			os.Remove(part1)
			os.Remove(part2)
			return fmt.Errorf("extract %s: %w", filepath.Base(seg.out), result.Err)
		}
	}

	archiveDir := filepath.Join(filepath.Dir(path), cfg.Split.ArchiveSubdir)
	if err := os.MkdirAll(archiveDir, 0o755); err != nil {
		return err
	}
	if err := os.Rename(path, filepath.Join(archiveDir, filepath.Base(path))); err != nil {
		return fmt.Errorf("archive original: %w", err)
	}

	log.Success("Split at %.1fs into %s + %s", half, filepath.Base(part1), filepath.Base(part2))
	return nil
}
