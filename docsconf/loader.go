package docsconf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/sunwei/docs-playground/common/loggers"
	"github.com/sunwei/docs-playground/common/maps"
	"github.com/sunwei/docs-playground/config"
)

// DefaultConfigNames are the config files looked for in the working dir
// when no filename is given, in order of preference.
var DefaultConfigNames = []string{"conf.toml", "conf.yaml", "conf.yml", "conf.json", "conf.xml"}

// ConfigSourceDescriptor describes where to find the config (e.g. conf.toml etc.).
type ConfigSourceDescriptor struct {
	Fs afero.Fs

	// Path to the config file to use, e.g. /my/project/conf.toml.
	// Relative paths are resolved against WorkingDir.
	// If not set, DefaultConfigNames are tried in WorkingDir, and if none
	// exists the built-in settings from Load are used as-is.
	Filename string

	// The project's working dir.
	WorkingDir string

	// Overrides are applied on top of the file settings, e.g. from the
	// command line.
	Overrides maps.Params

	Logger loggers.Logger
}

type configLoader struct {
	cfg    config.Provider
	logger loggers.Logger
	ConfigSourceDescriptor
}

// LoadConfig reads the documentation config described by d, fills in the
// built-in settings for everything the file leaves out, applies overrides
// and validates the result. It returns the config and the config files read.
// A config that fails validation is reported as a *ConfigError.
func LoadConfig(d ConfigSourceDescriptor) (DocumentationConfig, []string, error) {
	if d.Fs == nil {
		d.Fs = afero.NewOsFs()
	}

	l := configLoader{
		ConfigSourceDescriptor: d,
		cfg:                    config.New(),
		logger:                 d.Logger,
	}
	if l.logger == nil {
		l.logger = loggers.NewErrorLogger()
	}

	var configFiles []string

	filename, err := l.resolveFilename()
	if err != nil {
		return DocumentationConfig{}, nil, err
	}

	if filename != "" {
		if err := l.loadConfig(filename); err != nil {
			return DocumentationConfig{}, nil, err
		}
		configFiles = append(configFiles, filename)
		l.logger.Info().Printf("Using config file %q", filename)
	} else {
		l.logger.Info().Println("No config file found, using built-in settings")
	}

	l.applyConfigDefaults()

	cfg := l.cfg
	if len(d.Overrides) > 0 {
		layer := config.New()
		layer.Set("", d.Overrides)
		cfg = config.NewCompositeConfig(l.cfg, layer)
	}

	conf, unused, err := decode(cfg)
	if err != nil {
		return conf, configFiles, err
	}
	for _, key := range unused {
		if filename == "" {
			l.logger.Warn().Printf("Unknown setting %q ignored", key)
		} else {
			l.logger.Warn().Printf("Unknown setting %q in %q ignored", key, filename)
		}
	}

	if err := conf.Validate(); err != nil {
		var cerr *ConfigError
		if errors.As(err, &cerr) {
			cerr.Filename = filename
		}
		return conf, configFiles, err
	}

	return conf, configFiles, nil
}

func (l configLoader) resolveFilename() (string, error) {
	if l.Filename != "" {
		filename := l.Filename
		if !filepath.IsAbs(filename) {
			filename = filepath.Join(l.WorkingDir, filename)
		}
		if !config.IsValidConfigFilename(filename) {
			return "", fmt.Errorf("%q is not a supported config file, use one of %v", filename, config.ValidConfigFileExtensions)
		}
		return filename, nil
	}

	for _, name := range DefaultConfigNames {
		filename := filepath.Join(l.WorkingDir, name)
		exists, err := afero.Exists(l.Fs, filename)
		if err != nil && !os.IsNotExist(err) {
			return "", err
		}
		if exists {
			return filename, nil
		}
	}

	return "", nil
}

func (l configLoader) loadConfig(filename string) error {
	p, err := config.FromFile(l.Fs, filename)
	if err != nil {
		return err
	}

	// Set overwrites keys of the same name, recursively.
	l.cfg.Set("", p.Get(""))

	return nil
}

func (l configLoader) applyConfigDefaults() {
	defaults := Load().ToParams()
	for _, k := range Keys {
		if !l.cfg.IsSet(k) {
			l.logger.Debug().Printf("Using built-in %s", k)
		}
	}
	l.cfg.SetDefaults(defaults)
}
