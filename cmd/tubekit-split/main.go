// Command tubekit-split halves videos that exceed the configured size
// limit via two stream-copy passes, archiving the originals.
package main

import (
	"context"
	"fmt"

	"github.com/kestrelmedia/tubekit/internal/cli"
	"github.com/kestrelmedia/tubekit/internal/config"
	"github.com/kestrelmedia/tubekit/internal/logging"
	"github.com/kestrelmedia/tubekit/internal/split"
)

// version is injected at build time via -ldflags.
var version = "1.0.0-dev"

func main() {
	cmd := cli.NewRoot(cli.App{
		Name:        "tubekit-split",
		Short:       "Split oversized videos into two stream-copied halves",
		Version:     version,
		NeedsFfmpeg: true,
	}, run)
	cli.Execute(cmd)
}

func run(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	if cfg.Split.TargetDir == "" {
		return fmt.Errorf("split.target_dir is not configured")
	}

	stats := split.Run(ctx, cfg, log)
	if stats.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", stats.Failed, stats.Total)
	}
	return nil
}
