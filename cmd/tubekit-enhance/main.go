// Command tubekit-enhance batch-enhances videos through a fixed ffmpeg
// filter chain (scale, sharpen, optional denoise) into a flat output
// directory.
package main

import (
	"context"
	"fmt"

	"github.com/kestrelmedia/tubekit/internal/cli"
	"github.com/kestrelmedia/tubekit/internal/config"
	"github.com/kestrelmedia/tubekit/internal/enhance"
	"github.com/kestrelmedia/tubekit/internal/logging"
)

// version is injected at build time via -ldflags.
var version = "1.0.0-dev"

func main() {
	cmd := cli.NewRoot(cli.App{
		Name:        "tubekit-enhance",
		Short:       "Batch video enhancement via ffmpeg",
		Version:     version,
		NeedsFfmpeg: true,
	}, run)
	cli.Execute(cmd)
}

func run(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	if cfg.Enhance.InputDir == "" {
		return fmt.Errorf("enhance.input_dir is not configured")
	}
	if cfg.Enhance.OutputDir == "" {
		return fmt.Errorf("enhance.output_dir is not configured")
	}

	stats := enhance.Run(ctx, cfg, log)
	if stats.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", stats.Failed, stats.Total)
	}
	return nil
}
