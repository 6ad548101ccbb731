// Package config loads the optional drift.yaml that tunes the runtime's
// debug mode and logging.
package config

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/instance/pkg/core"
	"github.com/go-drift/instance/pkg/errors"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "drift.yaml"

// Config represents the optional drift.yaml configuration.
type Config struct {
	App   AppConfig   `yaml:"app"`
	Debug DebugConfig `yaml:"debug"`
	Log   LogConfig   `yaml:"log"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// DebugConfig controls core debug mode. Enabled defaults to true.
type DebugConfig struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// LogConfig controls the zerolog logger and the error handler.
type LogConfig struct {
	// Level is a zerolog level name. Defaults to "info".
	Level string `yaml:"level,omitempty"`
	// Verbose adds stack traces to logged errors.
	Verbose bool `yaml:"verbose,omitempty"`
	// Console selects human-readable output. Defaults to true; false
	// writes JSON lines.
	Console *bool `yaml:"console,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Debug      bool
	Level      zerolog.Level
	Verbose    bool
	Console    bool
}

// LoadOptional reads drift.yaml from dir if present. A missing file yields
// an empty Config.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, configError("config.LoadOptional", fmt.Errorf("failed to read %s: %w", FileName, err))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, configError("config.LoadOptional", fmt.Errorf("failed to parse %s: %w", FileName, err))
	}

	return &cfg, nil
}

// Resolve loads drift.yaml (if present) and fills in defaults. The app name
// falls back to the last element of the module path in dir's go.mod, then
// to the directory name.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	level := zerolog.InfoLevel
	if name := strings.TrimSpace(cfg.Log.Level); name != "" {
		level, err = zerolog.ParseLevel(strings.ToLower(name))
		if err != nil {
			return nil, configError("config.Resolve", fmt.Errorf("log.level: %w", err))
		}
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		Debug:      boolOr(cfg.Debug.Enabled, true),
		Level:      level,
		Verbose:    cfg.Log.Verbose,
		Console:    boolOr(cfg.Log.Console, true),
	}, nil
}

// NewLogger builds the application logger described by r, writing to out
// (os.Stderr when nil), and installs it as the global zerolog logger.
func NewLogger(r *Resolved, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}
	if r.Console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05.000"}
	}
	logger := zerolog.New(out).Level(r.Level).With().Timestamp().Str("app", r.AppName).Logger()
	log.Logger = logger
	return logger
}

// Apply configures the runtime from r: debug mode, the global logger and an
// errors.LogHandler that writes through it.
func Apply(r *Resolved, out io.Writer) zerolog.Logger {
	core.SetDebugMode(r.Debug)
	logger := NewLogger(r, out)
	errors.SetHandler(&errors.LogHandler{Verbose: r.Verbose, Logger: &logger})
	logger.Debug().
		Bool("debug", r.Debug).
		Bool("verbose", r.Verbose).
		Str("module", r.ModulePath).
		Msg("runtime configured")
	return logger
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", configError("config.Resolve", fmt.Errorf("failed to read go.mod: %w", err))
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", configError("config.Resolve", fmt.Errorf("could not determine module path from go.mod"))
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		if prefix, _, ok := module.SplitPathVersion(modulePath); ok {
			parts := strings.Split(prefix, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "drift_app"
	}
	return base
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func configError(op string, err error) *errors.DriftError {
	return &errors.DriftError{Op: op, Kind: errors.KindConfig, Err: err}
}
