package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Scale algorithms accepted by ffmpeg's scale filter "flags" option.
var knownScaleAlgorithms = map[string]bool{
	"fast_bilinear": true,
	"bilinear":      true,
	"bicubic":       true,
	"neighbor":      true,
	"area":          true,
	"bicublin":      true,
	"gauss":         true,
	"sinc":          true,
	"lanczos":       true,
	"spline":        true,
}

// Validate checks cross-field constraints on the whole file. Only values
// that would make every run fail are rejected here; whether a directory
// actually exists is checked by each tool at startup.
func (c *Config) Validate() error {
	if err := c.Enhance.validate(); err != nil {
		return fmt.Errorf("[enhance]: %w", err)
	}
	if err := c.Mover.validate(); err != nil {
		return fmt.Errorf("[mover]: %w", err)
	}
	if err := c.Split.validate(); err != nil {
		return fmt.Errorf("[split]: %w", err)
	}
	switch c.Logging.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("[logging]: invalid color %q (use auto, always, or never)", c.Logging.Color)
	}
	return nil
}

func (e *Enhance) validate() error {
	if e.TargetWidth <= 0 || e.TargetHeight <= 0 {
		return errors.New("target_width and target_height must be positive")
	}
	if !knownScaleAlgorithms[e.ScaleAlgorithm] {
		return fmt.Errorf("unknown scale_algorithm %q", e.ScaleAlgorithm)
	}
	if e.SharpenLumaX < 3 || e.SharpenLumaX > 23 || e.SharpenLumaX%2 == 0 {
		return fmt.Errorf("sharpen_luma_x must be an odd value in 3..23, got %d", e.SharpenLumaX)
	}
	if e.SharpenLumaY < 3 || e.SharpenLumaY > 23 || e.SharpenLumaY%2 == 0 {
		return fmt.Errorf("sharpen_luma_y must be an odd value in 3..23, got %d", e.SharpenLumaY)
	}
	if e.CRF < 0 || e.CRF > 51 {
		return fmt.Errorf("crf must be in 0..51, got %d", e.CRF)
	}
	if e.MaxBitrateKbps < 0 {
		return fmt.Errorf("max_bitrate_kbps must not be negative, got %d", e.MaxBitrateKbps)
	}
	normalized, err := normalizeAudioBitrate(e.AudioBitrate)
	if err != nil {
		return err
	}
	e.AudioBitrate = normalized
	if len(e.Extensions) == 0 {
		return errors.New("extensions must not be empty")
	}
	if e.OutputSuffix == "" {
		return errors.New("output_suffix must not be empty")
	}
	return nil
}

func (m *Mover) validate() error {
	if strings.TrimSpace(m.DateFormat) == "" {
		return errors.New("date_format must not be empty")
	}
	if m.AnalysisJSON == "" {
		return errors.New("analysis_json must not be empty")
	}
	if m.VideoSubdir == "" || m.DataSubdir == "" {
		return errors.New("video_subdir and data_subdir must not be empty")
	}
	if m.VideoSubdir == m.DataSubdir {
		return errors.New("video_subdir and data_subdir must differ")
	}
	switch m.OnExisting {
	case ExistingMerge, ExistingFail:
	default:
		return fmt.Errorf("invalid on_existing %q (use merge or fail)", m.OnExisting)
	}
	return nil
}

func (s *Split) validate() error {
	if s.SizeLimitMB <= 0 {
		return fmt.Errorf("size_limit_mb must be positive, got %d", s.SizeLimitMB)
	}
	if s.ArchiveSubdir == "" {
		return errors.New("archive_subdir must not be empty")
	}
	return nil
}

// normalizeAudioBitrate validates and canonicalizes bitrate input.
// Accepted forms: "192", "192k", "192K", "192kbps". Output is "<n>k".
func normalizeAudioBitrate(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "", errors.New("audio_bitrate must not be empty")
	}
	if strings.HasSuffix(s, "kbps") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "kbps"))
	} else if strings.HasSuffix(s, "k") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "k"))
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return "", fmt.Errorf("invalid audio_bitrate %q (use positive Kbps value, e.g. 192k)", raw)
	}
	return fmt.Sprintf("%dk", n), nil
}
