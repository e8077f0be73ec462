package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage            = errors.New("expected exactly two arguments: input and output")
	ErrInvalidFlags     = errors.New("invalid flags")
	ErrMissingInput     = errors.New("input file not found")
	ErrInputIsDirectory = errors.New("input is a directory")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteHTML        = errors.New("failed to write HTML file")
)

// MissingInputError reports an input path that does not exist.
// Its message is the user-facing diagnostic "Missing <path>".
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return "Missing " + e.Path
}

func (e *MissingInputError) Unwrap() error {
	return ErrMissingInput
}

// conversionJob is one input/output pair with its resolved settings.
type conversionJob struct {
	inputPath  string
	outputPath string
	engine     md2html.Engine
	standalone bool
	title      string
}

// loadConfig returns the config named by --config, or the defaults.
func loadConfig(flags *cliFlags) (*config.Config, error) {
	if flags.config == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(flags.config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// logLevel resolves the effective log level. CLI flags win over config.
func logLevel(flags *cliFlags, cfg *config.Config) string {
	switch {
	case flags.verbose:
		return config.LevelDebug
	case flags.quiet:
		return config.LevelError
	}
	return cfg.Log.Level
}

// buildJob merges CLI flags into config values (CLI wins) for one conversion.
// positional holds exactly the input and output paths.
func buildJob(positional []string, flags *cliFlags, cfg *config.Config) (*conversionJob, error) {
	engineName := cfg.Engine
	if flags.engine != "" {
		engineName = flags.engine
	}
	engine, err := md2html.ParseEngine(engineName)
	if err != nil {
		return nil, err
	}

	job := &conversionJob{
		inputPath:  positional[0],
		outputPath: positional[1],
		engine:     engine,
		standalone: cfg.Output.Standalone,
		title:      cfg.Output.Title,
	}
	if flags.standaloneSet {
		job.standalone = flags.standalone
	}
	if flags.title != "" {
		job.title = flags.title
	}
	return job, nil
}

// checkInput verifies the input path names an existing regular file.
func checkInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &MissingInputError{Path: path}
		}
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrInputIsDirectory, path)
	}
	return nil
}

// convertFile reads the whole input, converts it and writes the whole output.
// Nothing is written unless conversion succeeds.
func convertFile(ctx context.Context, job *conversionJob, logger *log.Logger, env *Environment) error {
	if err := checkInput(job.inputPath); err != nil {
		return err
	}

	content, err := os.ReadFile(job.inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	logger.Debug("input read", "path", job.inputPath, "bytes", len(content))

	conv, err := md2html.NewConverter(
		md2html.WithEngine(job.engine),
		md2html.WithStandalone(job.standalone),
	)
	if err != nil {
		return err
	}

	start := env.Now()
	result, err := conv.Convert(ctx, md2html.Input{
		Markdown:   string(content),
		Title:      job.title,
		SourceName: job.inputPath,
	})
	if err != nil {
		return err
	}
	logger.Debug("converted",
		"engine", result.Engine,
		"bytes", len(result.HTML),
		"duration", env.Now().Sub(start))

	if err := fileutil.WriteFileAtomic(job.outputPath, result.HTML); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteHTML, err)
	}
	logger.Info("created", "path", job.outputPath)

	return nil
}

// formatError renders err for the error stream, appending hints where one applies.
// configName is the --config value, used to suggest where a config file belongs.
func formatError(err error, configName string) string {
	var missing *MissingInputError
	switch {
	case errors.As(err, &missing):
		return missing.Error()
	case errors.Is(err, ErrUsage):
		return usageLine
	case errors.Is(err, config.ErrConfigNotFound):
		return err.Error() + hints.ForConfigNotFound(configSearchPaths(configName))
	case errors.Is(err, md2html.ErrInvalidEngine):
		return err.Error() + hints.ForEngine(md2html.Engines())
	case errors.Is(err, ErrInputIsDirectory):
		return err.Error() + hints.ForInputIsDirectory()
	case errors.Is(err, ErrWriteHTML):
		return err.Error() + hints.ForOutputDirectory()
	}
	return err.Error()
}

// configSearchPaths returns the lookup paths for a config name, or nil when
// the value is already a path.
func configSearchPaths(name string) []string {
	if name == "" || fileutil.IsFilePath(name) {
		return nil
	}
	return config.SearchPaths(name)
}
