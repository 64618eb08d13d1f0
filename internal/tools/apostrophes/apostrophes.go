// Package apostrophes implements the fix-apostrophes command.
package apostrophes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	entrypoint "github.com/louisbranch/fix-apostrophes/internal/platform/cmd"
	apperrors "github.com/louisbranch/fix-apostrophes/internal/platform/errors"
	"github.com/louisbranch/fix-apostrophes/internal/textfix"
	"go.uber.org/zap"
)

// MissingInputMessage is printed when no input file is given.
const MissingInputMessage = "No input file provided."

// Config holds fix-apostrophes command configuration.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	InputPath string
	// HasInput is set when a positional argument was given, even an empty one.
	HasInput bool
}

// ParseConfig parses environment and flags into a Config. The first
// positional argument is the input file; any others are ignored. A file name
// starting with '-' must follow "--".
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "diagnostic log level on stderr (debug|info|warn|error); use -- before a file name starting with '-'")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.HasInput = fs.NArg() > 0
	cfg.InputPath = fs.Arg(0)
	return cfg, nil
}

// Run rewrites cfg.InputPath and prints the output file name to out.
// Without an input file it prints MissingInputMessage and returns nil.
func Run(ctx context.Context, cfg Config, out io.Writer, logger *zap.Logger) error {
	if out == nil {
		return errors.New("output is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if !cfg.HasInput {
		_, err := fmt.Fprintln(out, MissingInputMessage)
		return err
	}

	res, err := textfix.FixFile(ctx, cfg.InputPath)
	if err != nil {
		code := apperrors.GetCode(err)
		logger.Debug("fix apostrophes failed",
			zap.String("input", cfg.InputPath),
			zap.String("code", string(code)),
			zap.Bool("input_error", code.IsInput()),
			zap.Error(err),
		)
		return err
	}
	logger.Info("fixed apostrophes",
		zap.String("input", res.InputPath),
		zap.String("output", res.OutputPath),
		zap.Int("lines", res.Lines),
		zap.Int("replacements", res.Replacements),
	)

	_, err = fmt.Fprintln(out, res.OutputPath)
	return err
}
