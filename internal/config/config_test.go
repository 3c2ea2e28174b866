package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tubekit.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoad_ParsesSections(t *testing.T) {
	path := writeConfig(t, `
[enhance]
input_dir = "/data/in/"
output_dir = "/data/out"
target_width = 2560
target_height = 1440
denoise = true
extensions = ["MP4", "mkv"]
output_format = "mp4"

[mover]
source_dir = "/data/staging"
dest_root = "/data/archive"
date_format = "%Y-%m-%d"
on_existing = "fail"

[split]
size_limit_mb = 500

[logging]
color = "never"
`)

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Errorf("resolved=%q exists=%v", resolved, exists)
	}

	if cfg.Enhance.InputDir != "/data/in" {
		t.Errorf("InputDir = %q, want trailing slash stripped", cfg.Enhance.InputDir)
	}
	if cfg.Enhance.TargetWidth != 2560 || cfg.Enhance.TargetHeight != 1440 {
		t.Errorf("target = %dx%d", cfg.Enhance.TargetWidth, cfg.Enhance.TargetHeight)
	}
	if !cfg.Enhance.Denoise {
		t.Error("Denoise not set")
	}
	// Extensions are lowercased and dot-prefixed.
	want := []string{".mp4", ".mkv"}
	if len(cfg.Enhance.Extensions) != len(want) {
		t.Fatalf("extensions = %v", cfg.Enhance.Extensions)
	}
	for i, e := range want {
		if cfg.Enhance.Extensions[i] != e {
			t.Errorf("extensions[%d] = %q, want %q", i, cfg.Enhance.Extensions[i], e)
		}
	}
	if cfg.Enhance.OutputFormat != ".mp4" {
		t.Errorf("OutputFormat = %q, want dot-prefixed", cfg.Enhance.OutputFormat)
	}

	// Unset fields keep their defaults.
	if cfg.Enhance.ScaleAlgorithm != "lanczos" || cfg.Enhance.CRF != 18 {
		t.Errorf("defaults not preserved: algo=%q crf=%d", cfg.Enhance.ScaleAlgorithm, cfg.Enhance.CRF)
	}
	if cfg.Mover.DateFormat != "%Y-%m-%d" {
		t.Errorf("DateFormat = %q", cfg.Mover.DateFormat)
	}
	if cfg.Mover.OnExisting != ExistingFail {
		t.Errorf("OnExisting = %q", cfg.Mover.OnExisting)
	}
	if cfg.Split.SizeLimitMB != 500 {
		t.Errorf("SizeLimitMB = %d", cfg.Split.SizeLimitMB)
	}
	if cfg.Logging.Color != ColorNever {
		t.Errorf("Color = %q", cfg.Logging.Color)
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantSub string
	}{
		{"crf out of range", "[enhance]\ncrf = 99\n", "crf"},
		{"negative max bitrate", "[enhance]\nmax_bitrate_kbps = -1\n", "max_bitrate_kbps"},
		{"even sharpen matrix", "[enhance]\nsharpen_luma_x = 4\n", "sharpen_luma_x"},
		{"unknown scale algorithm", "[enhance]\nscale_algorithm = \"cubic\"\n", "scale_algorithm"},
		{"bad audio bitrate", "[enhance]\naudio_bitrate = \"lots\"\n", "audio_bitrate"},
		{"bad on_existing", "[mover]\non_existing = \"ask\"\n", "on_existing"},
		{"same subdirs", "[mover]\nvideo_subdir = \"X\"\ndata_subdir = \"X\"\n", "must differ"},
		{"empty date format", "[mover]\ndate_format = \" \"\n", "date_format"},
		{"zero size limit", "[split]\nsize_limit_mb = 0\n", "size_limit_mb"},
		{"bad color", "[logging]\ncolor = \"sometimes\"\n", "color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, _, _, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	_, _, _, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestAudioBitrateNormalization(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"192", "192k"},
		{"192k", "192k"},
		{"256K", "256k"},
		{"128kbps", "128k"},
	}
	for _, tt := range tests {
		got, err := normalizeAudioBitrate(tt.in)
		if err != nil {
			t.Errorf("normalizeAudioBitrate(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("normalizeAudioBitrate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// The embedded sample must always load cleanly; it is the documented
// starting point for new users.
func TestSampleConfigLoads(t *testing.T) {
	path := writeConfig(t, SampleConfig())
	if _, _, _, err := Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
}
