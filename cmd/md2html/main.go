package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alnah/go-md2html/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain runs the CLI with the given arguments (including the program
// name) and returns the process exit code. Diagnostics go to env.Stderr.
func runMain(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseFlags(args[1:])
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		fmt.Fprintln(env.Stderr, usageLine)
		return exitCodeFor(err)
	}

	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
		return ExitSuccess
	}

	if err := run(ctx, positional, flags, env); err != nil {
		fmt.Fprintln(env.Stderr, formatError(err, flags.config))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// run validates arguments, resolves configuration and converts one file.
func run(ctx context.Context, positional []string, flags *cliFlags, env *Environment) error {
	if len(positional) != 2 {
		return ErrUsage
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	logger, err := logging.New(env.Stderr, logLevel(flags, cfg))
	if err != nil {
		return err
	}
	logger.Debug("config resolved", "engine", cfg.Engine, "standalone", cfg.Output.Standalone)

	if env.SetMaxProcs != nil {
		env.SetMaxProcs(logger.Debugf)
	}

	job, err := buildJob(positional, flags, cfg)
	if err != nil {
		return err
	}

	return convertFile(ctx, job, logger, env)
}
