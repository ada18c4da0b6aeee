package deps

import (
	"fmt"

	"github.com/sunwei/docs-playground/common/loggers"
	"github.com/sunwei/docs-playground/docsconf"
	"github.com/sunwei/docs-playground/hugofs"
	"github.com/sunwei/docs-playground/source"
)

// Deps holds dependencies used by many.
// There will be normally only one instance of deps in play
// at a given time, i.e. one per documentation build.
type Deps struct {
	// The logger to use.
	Log loggers.Logger `json:"-"`

	// The file systems to use.
	Fs *hugofs.Fs `json:"-"`

	// The configuration to use.
	Conf docsconf.DocumentationConfig

	// The config files read, if any.
	ConfigFiles []string

	// The SourceSpec to use
	SourceSpec *source.SourceSpec `json:"-"`
}

// DepsCfg contains configuration options that can be used to configure
// the documentation tooling on a global level, i.e. logging etc.
// Nil values will be given default values.
type DepsCfg struct {
	// The Logger to use.
	Logger loggers.Logger

	// The file systems to use
	Fs *hugofs.Fs

	// The config file to use, see docsconf.ConfigSourceDescriptor.
	ConfigFilename string

	// Settings applied on top of the config file.
	Overrides map[string]any
}

// New loads the documentation config and initializes a Deps struct.
// Defaults are set for nil values.
func New(cfg DepsCfg) (*Deps, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = loggers.NewErrorLogger()
	}

	fs := cfg.Fs
	if fs == nil {
		// Default to the production file system.
		fs = hugofs.NewDefault("")
	}

	conf, configFiles, err := docsconf.LoadConfig(docsconf.ConfigSourceDescriptor{
		Fs:         fs.Source,
		Filename:   cfg.ConfigFilename,
		WorkingDir: fs.WorkingDir,
		Overrides:  cfg.Overrides,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	sp, err := source.NewSourceSpec(conf, fs.WorkingDirReadOnly, logger)
	if err != nil {
		return nil, fmt.Errorf("create SourceSpec: %w", err)
	}

	return &Deps{
		Log:         logger,
		Fs:          fs,
		Conf:        conf,
		ConfigFiles: configFiles,
		SourceSpec:  sp,
	}, nil
}

// SourceFiles lists the documentation sources in the working dir.
// File names are relative to Fs.WorkingDirReadOnly.
func (d *Deps) SourceFiles() ([]source.File, error) {
	base := "."
	if d.Fs.WorkingDir != "" {
		base = "/"
	}
	return d.SourceSpec.NewFilesystem(base).Files()
}
