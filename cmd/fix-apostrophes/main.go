// Command fix-apostrophes replaces "â€™" mojibake with straight apostrophes
// and writes the result to processed_<input>.
package main

import (
	"context"
	"flag"
	"os"

	entrypoint "github.com/louisbranch/fix-apostrophes/internal/platform/cmd"
	"github.com/louisbranch/fix-apostrophes/internal/platform/config"
	"github.com/louisbranch/fix-apostrophes/internal/tools/apostrophes"
)

func main() {
	cfg, err := apostrophes.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	logger, err := config.InitLogger(cfg.LogLevel)
	if err != nil {
		config.Exitf("init logger: %v", err)
	}

	err = entrypoint.RunWithTelemetry(context.Background(), entrypoint.ServiceFixApostrophes,
		entrypoint.RunOptions{Logger: logger},
		func(ctx context.Context) error {
			return apostrophes.Run(ctx, cfg, os.Stdout, logger)
		})
	_ = logger.Sync()
	if err != nil {
		config.Exitf("fix apostrophes: %v", err)
	}
}
