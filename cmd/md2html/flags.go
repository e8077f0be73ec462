package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all command-line flags.
type cliFlags struct {
	config     string
	quiet      bool
	verbose    bool
	standalone bool
	title      string
	engine     string
	help       bool
	version    bool

	// standaloneSet records an explicit --standalone, so that
	// --standalone=false can override a config file.
	standaloneSet bool
}

// parseFlags parses command-line flags (without the program name) and
// returns the remaining positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	f := &cliFlags{}
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logging")
	fs.BoolVar(&f.standalone, "standalone", false, "wrap output in a complete HTML5 document")
	fs.StringVar(&f.title, "title", "", "standalone document title")
	fs.StringVar(&f.engine, "engine", "", "conversion engine: dialect, commonmark")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
	fs.BoolVar(&f.version, "version", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	if f.quiet && f.verbose {
		return nil, nil, fmt.Errorf("%w: --quiet and --verbose cannot be combined", ErrInvalidFlags)
	}

	f.standaloneSet = fs.Changed("standalone")
	return f, fs.Args(), nil
}
