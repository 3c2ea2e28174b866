package ffmpeg

import (
	"slices"
	"strings"
	"testing"

	"github.com/kestrelmedia/tubekit/internal/config"
)

func TestFilterChain_WithDenoise(t *testing.T) {
	cfg := config.Default()
	cfg.Enhance.Denoise = true
	got := FilterChain(&cfg.Enhance)
	want := "scale=1920:1080:flags=lanczos,unsharp=5:5:1:5:5:0,hqdn3d=4:3:4:3"
	if got != want {
		t.Errorf("FilterChain = %q, want %q", got, want)
	}
}

func TestFilterChain_DefaultOmitsDenoise(t *testing.T) {
	cfg := config.Default()
	got := FilterChain(&cfg.Enhance)
	if strings.Contains(got, "hqdn3d") {
		t.Errorf("denoise defaults to off but chain contains hqdn3d: %q", got)
	}
	if !strings.HasPrefix(got, "scale=1920:1080:flags=lanczos,unsharp=") {
		t.Errorf("unexpected chain: %q", got)
	}
}

func TestFilterChain_FractionalAmounts(t *testing.T) {
	cfg := config.Default()
	cfg.Enhance.Denoise = true
	cfg.Enhance.SharpenAmount = 1.25
	cfg.Enhance.DenoiseLuma = 2.5
	cfg.Enhance.DenoiseChroma = 1.5
	got := FilterChain(&cfg.Enhance)
	if !strings.Contains(got, "unsharp=5:5:1.25:5:5:0") {
		t.Errorf("sharpen amount not rendered: %q", got)
	}
	if !strings.Contains(got, "hqdn3d=2.5:1.5:2.5:1.5") {
		t.Errorf("denoise strengths not rendered: %q", got)
	}
}

func TestBuildEnhanceArgs(t *testing.T) {
	cfg := config.Default()
	cfg.Enhance.MaxBitrateKbps = 8000
	args := BuildEnhanceArgs(&cfg, "in.mp4", "out/in_enhanced.mp4")

	if args[0] != "ffmpeg" {
		t.Fatalf("args[0] = %q", args[0])
	}
	if args[len(args)-1] != "out/in_enhanced.mp4" {
		t.Errorf("output must be the final argument, got %q", args[len(args)-1])
	}

	// Flag/value pairs that must be present.
	pairs := map[string]string{
		"-i":       "in.mp4",
		"-c:v":     "libx264",
		"-preset":  "slow",
		"-crf":     "18",
		"-maxrate": "8000k",
		"-bufsize": "16000k",
		"-c:a":     "aac",
		"-b:a":     "192k",
	}
	for flag, want := range pairs {
		i := slices.Index(args, flag)
		if i < 0 || i+1 >= len(args) {
			t.Errorf("missing %s", flag)
			continue
		}
		if args[i+1] != want {
			t.Errorf("%s = %q, want %q", flag, args[i+1], want)
		}
	}

	if !slices.Contains(args, "-y") {
		t.Error("missing -y (overwrite)")
	}
	if slices.Contains(args, "-stats") {
		t.Error("-stats should only appear in verbose mode")
	}
}

func TestBuildEnhanceArgs_NoMaxrate(t *testing.T) {
	cfg := config.Default()
	cfg.Enhance.MaxBitrateKbps = 0
	args := BuildEnhanceArgs(&cfg, "in.mp4", "out.mp4")
	if slices.Contains(args, "-maxrate") || slices.Contains(args, "-bufsize") {
		t.Errorf("maxrate disabled but args contain it: %v", args)
	}
}

func TestBuildSegmentArgs(t *testing.T) {
	first := BuildSegmentArgs("big.mkv", "big_part1.mkv", 0, 317.25)
	if slices.Contains(first, "-ss") {
		t.Errorf("first segment should not seek: %v", first)
	}
	i := slices.Index(first, "-t")
	if i < 0 || first[i+1] != "317.25" {
		t.Errorf("first segment duration missing: %v", first)
	}

	second := BuildSegmentArgs("big.mkv", "big_part2.mkv", 317.25, 0)
	i = slices.Index(second, "-ss")
	if i < 0 || second[i+1] != "317.25" {
		t.Errorf("second segment start missing: %v", second)
	}
	if slices.Contains(second, "-t") {
		t.Errorf("second segment should run to EOF: %v", second)
	}

	for _, args := range [][]string{first, second} {
		ci := slices.Index(args, "-c")
		if ci < 0 || args[ci+1] != "copy" {
			t.Errorf("segment must stream-copy: %v", args)
		}
	}
}
