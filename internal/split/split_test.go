package split

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/kestrelmedia/tubekit/internal/config"
	"github.com/kestrelmedia/tubekit/internal/logging"
)

func writeBytes(t *testing.T, path string, n int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, make([]byte, n), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestScan_SizeThreshold(t *testing.T) {
	dir := t.TempDir()
	exts := config.ExtensionSet(config.Default().Split.Extensions)

	writeBytes(t, filepath.Join(dir, "big.mp4"), 2048)
	writeBytes(t, filepath.Join(dir, "small.mp4"), 512)
	writeBytes(t, filepath.Join(dir, "big.txt"), 4096)
	writeBytes(t, filepath.Join(dir, "nested", "big.mkv"), 4096)

	files, err := Scan(dir, "originals-oversize", exts, 1024)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2: %v", len(files), files)
	}
	for _, f := range files {
		if filepath.Ext(f) == ".txt" {
			t.Errorf("non-video file matched: %s", f)
		}
	}
}

func TestScan_SkipsArchiveDir(t *testing.T) {
	dir := t.TempDir()
	exts := config.ExtensionSet(config.Default().Split.Extensions)

	writeBytes(t, filepath.Join(dir, "originals-oversize", "old.mp4"), 4096)
	writeBytes(t, filepath.Join(dir, "fresh.mp4"), 4096)

	files, err := Scan(dir, "originals-oversize", exts, 1024)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(files) != 1 || filepath.Base(files[0]) != "fresh.mp4" {
		t.Errorf("archived originals must be skipped, got %v", files)
	}
}

func TestRun_SplitsOversizedFile(t *testing.T) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not available")
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		t.Skip("ffprobe not available")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "long.mp4")

	// 4 seconds of test video; well past a 0 MB limit.
	gen := exec.Command("ffmpeg",
		"-f", "lavfi", "-i", "testsrc=duration=4:size=320x240:rate=24",
		"-c:v", "libx264", "-pix_fmt", "yuv420p",
		"-y", path,
	)
	gen.Stderr = os.Stderr
	if err := gen.Run(); err != nil {
		t.Fatalf("generate: %v", err)
	}

	cfg := config.Default()
	cfg.Split.TargetDir = dir
	cfg.Logging.Color = config.ColorNever

	// The generated file is far below any sane MB limit, so exercise
	// splitFile directly rather than going through Scan.
	log, err := logging.NewLogger("")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer log.Close()

	if err := splitFile(context.Background(), &cfg, log, path); err != nil {
		t.Fatalf("splitFile: %v", err)
	}

	for _, name := range []string{"long_part1.mp4", "long_part2.mp4"} {
		fi, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("missing segment %s: %v", name, err)
			continue
		}
		if fi.Size() == 0 {
			t.Errorf("segment %s is empty", name)
		}
	}

	// Original archived, not deleted.
	if _, err := os.Stat(filepath.Join(dir, "originals-oversize", "long.mp4")); err != nil {
		t.Errorf("original not archived: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("original still at source path")
	}
}

func TestRun_DryRun(t *testing.T) {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		t.Skip("ffprobe not available")
	}
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not available")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "clip.mp4")
	gen := exec.Command("ffmpeg",
		"-f", "lavfi", "-i", "testsrc=duration=2:size=320x240:rate=24",
		"-c:v", "libx264", "-pix_fmt", "yuv420p",
		"-y", path,
	)
	gen.Stderr = os.Stderr
	if err := gen.Run(); err != nil {
		t.Fatalf("generate: %v", err)
	}

	cfg := config.Default()
	cfg.DryRun = true
	cfg.Logging.Color = config.ColorNever

	log, err := logging.NewLogger("")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	defer log.Close()

	if err := splitFile(context.Background(), &cfg, log, path); err != nil {
		t.Fatalf("splitFile (dry): %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "clip_part1.mp4")); !os.IsNotExist(err) {
		t.Error("dry run wrote a segment")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("dry run moved the original: %v", err)
	}
}
