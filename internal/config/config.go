// Package config holds runtime configuration for all three tubekit tools:
// defaults, TOML settings-file loading, normalization, and validation.
// Each binary reads the same file and uses its own section.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// ExistingPolicy controls what the mover does when the dated destination
// folder already exists.
type ExistingPolicy string

const (
	ExistingMerge ExistingPolicy = "merge" // Reuse the folder, add to it (default).
	ExistingFail  ExistingPolicy = "fail"  // Abort with an error.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Enhance configures the batch video enhancer. The fields map 1:1 to the
// fixed ffmpeg filter chain and encoder settings; see ffmpeg.FilterChain.
type Enhance struct {
	InputDir  string `toml:"input_dir"`
	OutputDir string `toml:"output_dir"`

	// Scale filter. Output is always exactly TargetWidth x TargetHeight;
	// inputs with a different aspect ratio are stretched, not letterboxed.
	TargetWidth    int    `toml:"target_width"`
	TargetHeight   int    `toml:"target_height"`
	ScaleAlgorithm string `toml:"scale_algorithm"` // Default: "lanczos".

	// Unsharp filter.
	SharpenAmount float64 `toml:"sharpen_amount"` // Default: 1.0.
	SharpenLumaX  int     `toml:"sharpen_luma_x"` // Matrix size, default: 5.
	SharpenLumaY  int     `toml:"sharpen_luma_y"` // Matrix size, default: 5.

	// Optional hqdn3d filter.
	Denoise       bool    `toml:"denoise"`
	DenoiseLuma   float64 `toml:"denoise_luma"`   // Default: 4.0.
	DenoiseChroma float64 `toml:"denoise_chroma"` // Default: 3.0.

	// Encoder settings.
	VideoCodec     string `toml:"video_codec"`      // Default: "libx264".
	Preset         string `toml:"preset"`           // Default: "slow".
	CRF            int    `toml:"crf"`              // Default: 18.
	MaxBitrateKbps int    `toml:"max_bitrate_kbps"` // 0 = unconstrained.
	AudioCodec     string `toml:"audio_codec"`      // Default: "aac".
	AudioBitrate   string `toml:"audio_bitrate"`    // Default: "192k".

	// Discovery and naming.
	Extensions   []string `toml:"extensions"`
	OutputSuffix string   `toml:"output_suffix"` // Default: "_enhanced".
	OutputFormat string   `toml:"output_format"` // Output extension; "" keeps the source's.
	SkipExisting bool     `toml:"skip_existing"` // Default: true.
}

// Mover configures the analysis-data mover.
type Mover struct {
	SourceDir string `toml:"source_dir"`
	DestRoot  string `toml:"dest_root"`

	// DateFormat is a strftime pattern for the destination folder prefix
	// (e.g. "%y%m%d" produces "251217" on 2025-12-17).
	DateFormat string `toml:"date_format"`

	AnalysisJSON string `toml:"analysis_json"` // Default: "analysis_results.json".
	VideoSubdir  string `toml:"video_subdir"`  // Default: "Video".
	DataSubdir   string `toml:"data_subdir"`   // Default: "DATA".

	Extensions  []string       `toml:"extensions"`
	ClearSource bool           `toml:"clear_source"` // Remove emptied source subdirs. Default: true.
	OnExisting  ExistingPolicy `toml:"on_existing"`  // Default: "merge".
}

// Split configures the oversized-video splitter.
type Split struct {
	TargetDir     string   `toml:"target_dir"`
	SizeLimitMB   int      `toml:"size_limit_mb"`  // Default: 200.
	ArchiveSubdir string   `toml:"archive_subdir"` // Default: "originals-oversize".
	Extensions    []string `toml:"extensions"`
}

// Logging configures console colors and the optional log-file sink.
type Logging struct {
	File  string    `toml:"file"`  // Append-mode log file; "" disables.
	Color ColorMode `toml:"color"` // Default: "auto".
}

// Config is the full settings file. Runtime-only options set from CLI
// flags (never from TOML) carry `toml:"-"`.
type Config struct {
	Enhance Enhance `toml:"enhance"`
	Mover   Mover   `toml:"mover"`
	Split   Split   `toml:"split"`
	Logging Logging `toml:"logging"`

	DryRun  bool `toml:"-"`
	Verbose bool `toml:"-"`
}

// SampleConfig returns the embedded annotated sample settings file.
func SampleConfig() string { return sampleConfig }

// DefaultConfigPath returns the per-user settings file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/tubekit/config.toml")
}

// Load locates and parses the settings file, then normalizes and validates
// the result. When no file exists at any candidate location the defaults
// are returned (resolvedPath names the preferred location, exists=false).
//
// Resolution order: explicit path > ~/.config/tubekit/config.toml >
// ./tubekit.toml.
func Load(path string) (cfg *Config, resolvedPath string, exists bool, err error) {
	c := Default()

	resolvedPath, exists, err = resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		if err := toml.NewDecoder(file).Decode(&c); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	if err := c.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := c.Validate(); err != nil {
		return nil, "", false, err
	}
	return &c, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", false, fmt.Errorf("config file not found: %s", expanded)
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	userPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(userPath); err == nil && !info.IsDir() {
		return userPath, true, nil
	}

	projectPath, err := filepath.Abs("tubekit.toml")
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return userPath, false, nil
}

// normalize expands ~ in paths, trims trailing slashes, and canonicalizes
// extension lists to lowercase dot-prefixed form.
func (c *Config) normalize() error {
	paths := []*string{
		&c.Enhance.InputDir, &c.Enhance.OutputDir,
		&c.Mover.SourceDir, &c.Mover.DestRoot,
		&c.Split.TargetDir,
		&c.Logging.File,
	}
	for _, p := range paths {
		if *p == "" {
			continue
		}
		expanded, err := expandPath(*p)
		if err != nil {
			return err
		}
		*p = normalizeDirArg(expanded)
	}

	c.Enhance.Extensions = normalizeExtensions(c.Enhance.Extensions)
	c.Mover.Extensions = normalizeExtensions(c.Mover.Extensions)
	c.Split.Extensions = normalizeExtensions(c.Split.Extensions)

	if c.Enhance.OutputFormat != "" && !strings.HasPrefix(c.Enhance.OutputFormat, ".") {
		c.Enhance.OutputFormat = "." + c.Enhance.OutputFormat
	}
	return nil
}

// normalizeDirArg strips trailing separators from a directory path. The
// filesystem root is returned unchanged so we don't produce an empty string.
func normalizeDirArg(path string) string {
	if path == string(filepath.Separator) {
		return path
	}
	return strings.TrimRight(path, string(filepath.Separator))
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}

// ExtensionSet converts a normalized extension list into a lookup set.
func ExtensionSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, e := range exts {
		set[e] = true
	}
	return set
}

func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand %q: %w", path, err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
