// Command tubekit-mover packages a finished working directory into a
// dated, view-range-labelled folder under the destination root.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/kestrelmedia/tubekit/internal/cli"
	"github.com/kestrelmedia/tubekit/internal/config"
	"github.com/kestrelmedia/tubekit/internal/logging"
	"github.com/kestrelmedia/tubekit/internal/mover"
)

// version is injected at build time via -ldflags.
var version = "1.0.0-dev"

func main() {
	cmd := cli.NewRoot(cli.App{
		Name:    "tubekit-mover",
		Short:   "Move analyzed videos and data into a dated range folder",
		Version: version,
	}, run)
	cli.Execute(cmd)
}

func run(_ context.Context, cfg *config.Config, log *logging.Logger) error {
	if cfg.Mover.SourceDir == "" {
		return fmt.Errorf("mover.source_dir is not configured")
	}
	if cfg.Mover.DestRoot == "" {
		return fmt.Errorf("mover.dest_root is not configured")
	}

	_, err := mover.Run(cfg, log, time.Now())
	return err
}
