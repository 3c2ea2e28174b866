// Package check provides system diagnostics (--check mode) and pre-run
// dependency validation (CheckDeps) for ffmpeg and ffprobe.
package check

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/kestrelmedia/tubekit/internal/config"
)

// Sentinel errors returned by CheckDeps when a required tool or encoder is missing.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound = errors.New("ffprobe not found on PATH")
	ErrEncodeFailed    = errors.New("test encode with configured video codec failed")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the interactive --check flow: prints ffmpeg/ffprobe
// availability and test-encodes with the configured video and audio
// codecs. Informational only, it does not stop on failure.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== System Check ===")

	checkTool(log, "ffmpeg")
	checkTool(log, "ffprobe")
	checkVideoCodec(cfg, log)
	checkAudioCodec(cfg, log)
	checkFilters(log)
}

// checkTool verifies the binary is on PATH and logs its version string.
func checkTool(log Logger, name string) {
	if _, err := exec.LookPath(name); err != nil {
		log.Error("%s not found", name)
		return
	}
	out, err := exec.Command(name, "-version").Output()
	if err != nil {
		log.Warn("%s found but -version failed: %v", name, err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("%s: %s", name, firstLine)
}

// checkVideoCodec runs a minimal encode with the configured codec.
func checkVideoCodec(cfg *config.Config, log Logger) {
	codec := cfg.Enhance.VideoCodec
	log.Info("Testing video codec %s...", codec)
	if runSilent("ffmpeg", videoTestArgs(codec)...) {
		log.Success("%s works", codec)
	} else {
		log.Error("%s test encode failed", codec)
	}
}

// checkAudioCodec runs a minimal encode with the configured audio codec.
func checkAudioCodec(cfg *config.Config, log Logger) {
	codec := cfg.Enhance.AudioCodec
	log.Info("Testing audio codec %s...", codec)
	if runSilent("ffmpeg",
		"-hide_banner", "-nostdin",
		"-f", "lavfi", "-i", "sine=frequency=1000:duration=0.1",
		"-c:a", codec, "-f", "null", "-",
	) {
		log.Success("%s works", codec)
	} else {
		log.Error("%s test failed", codec)
	}
}

// checkFilters verifies the enhancement filters are compiled in.
func checkFilters(log Logger) {
	out, err := exec.Command("ffmpeg", "-hide_banner", "-filters").Output()
	if err != nil {
		log.Warn("Could not list filters: %v", err)
		return
	}
	filters := string(out)
	for _, f := range []string{"scale", "unsharp", "hqdn3d"} {
		if strings.Contains(filters, " "+f+" ") {
			log.Success("filter %s available", f)
		} else {
			log.Error("filter %s missing", f)
		}
	}
}

// CheckDeps is the pre-run validation: it verifies that ffmpeg and ffprobe
// are on PATH and that the configured video codec passes a quick test
// encode. Returns a sentinel error on failure.
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	if !runSilent("ffmpeg", videoTestArgs(cfg.Enhance.VideoCodec)...) {
		return ErrEncodeFailed
	}
	return nil
}

// --- internal helpers ---

// videoTestArgs returns the ffmpeg arguments for a minimal test encode with
// the given codec. Shared by RunCheck and CheckDeps.
func videoTestArgs(codec string) []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=256x256:d=0.1",
		"-c:v", codec,
		"-f", "null", "-",
	}
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
