// Package enhance orchestrates the batch enhancement run: discover inputs,
// encode each through the fixed filter chain, and report a summary.
package enhance

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kestrelmedia/tubekit/internal/config"
	"github.com/kestrelmedia/tubekit/internal/display"
	"github.com/kestrelmedia/tubekit/internal/ffmpeg"
	"github.com/kestrelmedia/tubekit/internal/logging"
	"github.com/kestrelmedia/tubekit/internal/naming"
	"github.com/kestrelmedia/tubekit/internal/probe"
)

const minFileSize = 1000

// Run is the top-level batch entry point. It discovers files, enhances each
// sequentially, and returns aggregate stats. A failure on one file is logged
// and counted; the batch always continues to the next file.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats
	e := &cfg.Enhance

	files, err := Discover(e.InputDir, e.OutputDir, config.ExtensionSet(e.Extensions))
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return stats
	}

	stats.Total = len(files)
	resolver := naming.NewCollisionResolver()

	logBatchHeader(cfg, log, &stats)

	if stats.Total == 0 {
		log.Warn("No video files found in %s", e.InputDir)
		return stats
	}

	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		log.Error("Cannot create output directory: %v", err)
		return stats
	}

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		processFile(ctx, cfg, log, path, &stats, resolver)
	}

	logSummary(cfg, log, &stats)
	return stats
}

// processFile handles one video file: validate → probe → name → encode.
func processFile(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	path string,
	stats *RunStats,
	resolver *naming.CollisionResolver,
) {
	e := &cfg.Enhance
	basename := filepath.Base(path)
	log.Info("[%d/%d] %s", stats.Current, stats.Total, basename)

	// --- Validate ---
	fi, err := os.Stat(path)
	if err != nil {
		log.Error("File not found: %s", path)
		stats.Failed++
		fmt.Println()
		return
	}
	if fi.Size() < minFileSize {
		log.Error("File too small (possibly corrupt): %s", path)
		stats.Failed++
		fmt.Println()
		return
	}

	// --- Probe ---
	pr, err := probe.Probe(ctx, path)
	if err != nil {
		log.Error("Cannot probe file (possibly corrupt): %v", err)
		stats.Failed++
		fmt.Println()
		return
	}
	if pr.PrimaryVideo == nil {
		log.Warn("No video stream found, skipping")
		stats.Skipped++
		fmt.Println()
		return
	}

	bitrateKbps := pr.VideoBitRate() / 1000
	log.Info("  Source: %s | %s | %s",
		pr.Resolution(), display.FormatBitrateLabel(bitrateKbps), pr.PrimaryVideo.Codec)

	// --- Resolve output path ---
	outputPath := naming.OutputPath(path, e.OutputDir, e.OutputSuffix, e.OutputFormat)
	outputPath = resolver.Resolve(path, outputPath)

	// --- Skip-existing check ---
	if e.SkipExisting {
		if _, err := os.Stat(outputPath); err == nil {
			log.Warn("Skip (exists): %s", filepath.Base(outputPath))
			stats.Skipped++
			fmt.Println()
			return
		}
	}

	log.Info("  -> %s", filepath.Base(outputPath))

	// --- Dry-run ---
	if cfg.DryRun {
		log.Success("[DRY] Would enhance to %dx%d", e.TargetWidth, e.TargetHeight)
		stats.Enhanced++
		fmt.Println()
		return
	}

	// --- Execute ---
	start := time.Now()
	args := ffmpeg.BuildEnhanceArgs(cfg, path, outputPath)
	log.Debug(cfg.Verbose, "ffmpeg args: %s", strings.Join(args[1:], " "))

	result := ffmpeg.Execute(ctx, args, cfg.Verbose)
	if result.Err != nil {
		log.Error("Enhance failed: %v", result.Err)
		logStderr(log, result.Stderr)
		// Do not leave a partial encode behind.
		os.Remove(outputPath)
		stats.Failed++
		fmt.Println()
		return
	}

	// --- Update stats ---
	elapsed := time.Since(start)
	inSize := fi.Size()
	var outSize int64
	if outInfo, err := os.Stat(outputPath); err == nil {
		outSize = outInfo.Size()
	}

	ratio := int64(100)
	if inSize > 0 {
		ratio = outSize * 100 / inSize
	}

	stats.TotalInputBytes += inSize
	stats.TotalOutputBytes += outSize
	stats.Enhanced++

	if outPr, err := probe.Probe(ctx, outputPath); err == nil {
		log.Debug(cfg.Verbose, "Output: %s | %s",
			outPr.Resolution(), display.FormatBitrateLabel(outPr.VideoBitRate()/1000))
	}

	log.Success("Enhanced in %ds (%d%% of original size)", int(elapsed.Seconds()), ratio)
	fmt.Println()
}

func logStderr(log *logging.Logger, stderr string) {
	if stderr == "" {
		return
	}
	log.Error("Last ffmpeg output:")
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	start := 0
	if len(lines) > 20 {
		start = len(lines) - 20
	}
	for _, l := range lines[start:] {
		log.Error("  %s", l)
	}
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	e := &cfg.Enhance
	log.Info("Found %d files", stats.Total)
	log.Info("Target: %dx%d (%s scaling)", e.TargetWidth, e.TargetHeight, e.ScaleAlgorithm)
	log.Info("Sharpen: unsharp %dx%d, amount %g", e.SharpenLumaX, e.SharpenLumaY, e.SharpenAmount)
	if e.Denoise {
		log.Info("Denoise: hqdn3d luma %g, chroma %g", e.DenoiseLuma, e.DenoiseChroma)
	} else {
		log.Info("Denoise: off")
	}
	log.Info("Codec: %s (preset %s, CRF %d), audio %s @ %s",
		e.VideoCodec, e.Preset, e.CRF, e.AudioCodec, e.AudioBitrate)
	if e.MaxBitrateKbps > 0 {
		log.Info("Bitrate ceiling: %d kbps", e.MaxBitrateKbps)
	}
	if cfg.DryRun {
		log.Info("Mode: dry run (no files will be written)")
	}
	fmt.Println()
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	fmt.Println(display.RenderTable(
		[]string{"Result", "Count"},
		[][]string{
			{"Enhanced", fmt.Sprintf("%d", stats.Enhanced)},
			{"Skipped", fmt.Sprintf("%d", stats.Skipped)},
			{"Failed", fmt.Sprintf("%d", stats.Failed)},
		},
		[]display.Alignment{display.AlignLeft, display.AlignRight},
	))

	if cfg.DryRun {
		log.Info("Size change: n/a (dry run)")
		return
	}
	if stats.Enhanced == 0 {
		return
	}

	log.Info("Input total: %s, output total: %s (%s)",
		display.FormatBytes(stats.TotalInputBytes),
		display.FormatBytes(stats.TotalOutputBytes),
		display.FormatBytesWithSign(stats.SizeDelta()))
}
