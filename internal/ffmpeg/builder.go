// Package ffmpeg builds and executes ffmpeg commands: the enhancement
// encode (fixed scale/sharpen/denoise filter chain) and the stream-copy
// segment extraction used when splitting oversized files.
package ffmpeg

import (
	"fmt"
	"strconv"

	"github.com/kestrelmedia/tubekit/internal/config"
)

// FilterChain renders the -vf value for an enhancement encode. Order is
// fixed: scale, then unsharp, then hqdn3d when denoising is enabled.
func FilterChain(e *config.Enhance) string {
	chain := fmt.Sprintf("scale=%d:%d:flags=%s", e.TargetWidth, e.TargetHeight, e.ScaleAlgorithm)

	chain += fmt.Sprintf(",unsharp=%d:%d:%s:%d:%d:0",
		e.SharpenLumaX, e.SharpenLumaY,
		formatFloat(e.SharpenAmount),
		e.SharpenLumaX, e.SharpenLumaY,
	)

	if e.Denoise {
		l := formatFloat(e.DenoiseLuma)
		c := formatFloat(e.DenoiseChroma)
		chain += fmt.Sprintf(",hqdn3d=%s:%s:%s:%s", l, c, l, c)
	}

	return chain
}

// BuildEnhanceArgs constructs the complete ffmpeg argument slice for one
// enhancement encode.
func BuildEnhanceArgs(cfg *config.Config, input, output string) []string {
	e := &cfg.Enhance
	args := make([]string, 0, 32)

	// --- Preamble ---
	args = append(args, "ffmpeg", "-hide_banner", "-nostdin", "-y")

	// Loglevel: info when verbose, otherwise error.
	if cfg.Verbose {
		args = append(args, "-loglevel", "info", "-stats", "-stats_period", "1")
	} else {
		args = append(args, "-loglevel", "error")
	}

	// --- Input and filter chain ---
	args = append(args, "-i", input, "-vf", FilterChain(e))

	// --- Video codec ---
	args = append(args,
		"-c:v", e.VideoCodec,
		"-preset", e.Preset,
		"-crf", strconv.Itoa(e.CRF),
	)

	// Bitrate ceiling; bufsize follows the usual 2x convention.
	if e.MaxBitrateKbps > 0 {
		args = append(args,
			"-maxrate", fmt.Sprintf("%dk", e.MaxBitrateKbps),
			"-bufsize", fmt.Sprintf("%dk", 2*e.MaxBitrateKbps),
		)
	}

	// --- Audio ---
	args = append(args, "-c:a", e.AudioCodec, "-b:a", e.AudioBitrate)

	// --- Output ---
	args = append(args, output)

	return args
}

// BuildSegmentArgs constructs a stream-copy extraction of one segment of
// input. A positive start seeks before reading; a positive duration caps
// the segment length. Used by the splitter, which cuts at the midpoint.
func BuildSegmentArgs(input, output string, start, duration float64) []string {
	args := make([]string, 0, 16)
	args = append(args, "ffmpeg", "-hide_banner", "-nostdin", "-y", "-loglevel", "error")
	args = append(args, "-i", input)
	if start > 0 {
		args = append(args, "-ss", formatFloat(start))
	}
	if duration > 0 {
		args = append(args, "-t", formatFloat(duration))
	}
	args = append(args, "-c", "copy", output)
	return args
}

// formatFloat renders a float the way ffmpeg filter args expect: no
// exponent, no trailing zeros ("1.0" becomes "1", "312.75" stays as is).
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
