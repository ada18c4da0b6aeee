// Package commands implements the docsconf command line.
package commands

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/spf13/afero"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/sunwei/docs-playground/common/loggers"
	"github.com/sunwei/docs-playground/deps"
	"github.com/sunwei/docs-playground/docsconf"
	"github.com/sunwei/docs-playground/helpers"
	"github.com/sunwei/docs-playground/hugofs"
)

// Exit codes.
const (
	exitOK          = 0
	exitError       = 1
	exitConfigError = 2
)

// GlobalOptions are shared by all commands.
type GlobalOptions struct {
	Source  string   `short:"s" long:"source" default:"." description:"documentation project dir"`
	Config  string   `short:"c" long:"config" description:"config file, relative to the project dir (default conf.toml|yaml|yml|json|xml)"`
	Set     []string `long:"set" value-name:"KEY=VALUE" description:"override a setting, may be repeated"`
	Verbose bool     `short:"v" long:"verbose" description:"verbose output"`
	Debug   bool     `long:"debug" description:"debug output"`
}

// Options is the root for the CLI.
type Options struct {
	GlobalOptions

	Check   *checkCmd   `command:"check" description:"Load and validate the documentation config"`
	Print   *printCmd   `command:"print" description:"Print the effective documentation config"`
	Sources *sourcesCmd `command:"sources" description:"List the documentation source files"`
	Hash    *hashCmd    `command:"hash" description:"Print a fingerprint of the effective config"`
}

// commandeer carries what the commands need.
type commandeer struct {
	opts *GlobalOptions
	fs   afero.Fs
	out  io.Writer
	log  loggers.Logger
}

func (c *commandeer) newDeps() (*deps.Deps, error) {
	overrides := make(map[string]any)
	for _, kv := range c.opts.Set {
		k, v, err := helpers.ParseKeyValue(kv)
		if err != nil {
			return nil, err
		}
		overrides[k] = v
	}

	wd := c.opts.Source
	if !filepath.IsAbs(wd) {
		abs, err := filepath.Abs(wd)
		if err != nil {
			return nil, err
		}
		wd = abs
	}

	return deps.New(deps.DepsCfg{
		Logger:         c.log,
		Fs:             hugofs.NewFrom(c.fs, wd),
		ConfigFilename: c.opts.Config,
		Overrides:      overrides,
	})
}

// Execute runs the command line in args against fs and returns the
// process exit code. A config that fails validation exits with 2.
func Execute(args []string, fs afero.Fs, stdout, stderr io.Writer) int {
	opts := &Options{}
	c := &commandeer{opts: &opts.GlobalOptions, fs: fs, out: stdout}

	opts.Check = &checkCmd{c: c}
	opts.Print = &printCmd{c: c}
	opts.Sources = &sourcesCmd{c: c}
	opts.Hash = &hashCmd{c: c}

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "docsconf"
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		c.log = newLogger(opts.GlobalOptions, stderr)
		if command == nil {
			return nil
		}
		return command.Execute(args)
	}

	if _, err := parser.ParseArgs(args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, ferr.Message)
			return exitOK
		}
		fmt.Fprintln(stderr, "Error:", err)
		if docsconf.IsConfigError(err) {
			return exitConfigError
		}
		return exitError
	}

	return exitOK
}

func newLogger(opts GlobalOptions, w io.Writer) loggers.Logger {
	threshold := jww.LevelWarn
	switch {
	case opts.Debug:
		threshold = jww.LevelDebug
	case opts.Verbose:
		threshold = jww.LevelInfo
	}
	return loggers.NewBasicLoggerForWriter(threshold, w)
}
