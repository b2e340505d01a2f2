// Package config handles the data directory, file paths and settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"todolist/internal/logging"
)

const (
	// AppName is the application directory name.
	AppName = "todolist"

	// FileName is the optional settings file inside the data directory.
	FileName = "config.yaml"

	// EnvPrefix prefixes environment overrides (TODOLIST_LIMITS_MAX_TASKS).
	EnvPrefix = "TODOLIST"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the data directory path.
	Dir string `mapstructure:"-"`

	// Debug enables debug logging.
	Debug bool `mapstructure:"-"`

	// Quiet suppresses informational output.
	Quiet bool `mapstructure:"-"`

	Files   FilesConfig   `mapstructure:"files"`
	Limits  LimitsConfig  `mapstructure:"limits"`
	Logging LoggingConfig `mapstructure:"logging"`
	UI      UIConfig      `mapstructure:"ui"`
}

// FilesConfig names the backing files. Relative names resolve inside Dir.
type FilesConfig struct {
	Tasks    string `mapstructure:"tasks"`
	Notes    string `mapstructure:"notes"`
	Password string `mapstructure:"password"`
}

// LimitsConfig caps the number of records each store accepts.
type LimitsConfig struct {
	MaxTasks int `mapstructure:"max_tasks"`
	MaxNotes int `mapstructure:"max_notes"`
}

// LoggingConfig controls the JSON debug log.
type LoggingConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Level   string `mapstructure:"level"`
}

// UIConfig controls console presentation.
type UIConfig struct {
	Color       bool `mapstructure:"color"`
	ClearScreen bool `mapstructure:"clear_screen"`
}

// Default returns the built-in settings for dir.
func Default(dir string) *Config {
	return &Config{
		Dir: dir,
		Files: FilesConfig{
			Tasks:    "tasks.txt",
			Notes:    "notes.txt",
			Password: "password.txt",
		},
		Limits: LimitsConfig{
			MaxTasks: 100,
			MaxNotes: 1000,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   logging.LevelInfo,
		},
		UI: UIConfig{
			Color:       true,
			ClearScreen: true,
		},
	}
}

// New creates a Config for the default or specified data directory and
// loads settings from {dir}/config.yaml and TODOLIST_* environment
// variables. A missing config.yaml is not an error.
// If configDir is empty, uses XDG_CONFIG_HOME/todolist or $HOME/.config/todolist.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}

	v := viper.New()
	setDefaults(v, Default(dir))
	v.SetConfigFile(filepath.Join(dir, FileName))
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !isMissingConfig(err) {
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	cfg := Default(dir)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	cfg.Dir = dir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers default values with viper so environment
// overrides bind and Unmarshal sees every key.
func setDefaults(v *viper.Viper, defaults *Config) {
	v.SetDefault("files.tasks", defaults.Files.Tasks)
	v.SetDefault("files.notes", defaults.Files.Notes)
	v.SetDefault("files.password", defaults.Files.Password)

	v.SetDefault("limits.max_tasks", defaults.Limits.MaxTasks)
	v.SetDefault("limits.max_notes", defaults.Limits.MaxNotes)

	v.SetDefault("logging.enabled", defaults.Logging.Enabled)
	v.SetDefault("logging.level", defaults.Logging.Level)

	v.SetDefault("ui.color", defaults.UI.Color)
	v.SetDefault("ui.clear_screen", defaults.UI.ClearScreen)
}

func isMissingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)
}

// Validate checks every setting and reports all problems together.
func (c *Config) Validate() error {
	var problems []string
	if c.Limits.MaxTasks < 1 {
		problems = append(problems, fmt.Sprintf("limits.max_tasks must be at least 1 (got %d)", c.Limits.MaxTasks))
	}
	if c.Limits.MaxNotes < 1 {
		problems = append(problems, fmt.Sprintf("limits.max_notes must be at least 1 (got %d)", c.Limits.MaxNotes))
	}
	if strings.TrimSpace(c.Files.Tasks) == "" {
		problems = append(problems, "files.tasks must not be empty")
	}
	if strings.TrimSpace(c.Files.Notes) == "" {
		problems = append(problems, "files.notes must not be empty")
	}
	if strings.TrimSpace(c.Files.Password) == "" {
		problems = append(problems, "files.password must not be empty")
	}
	if !logging.IsValidLevel(c.Logging.Level) {
		problems = append(problems, fmt.Sprintf("logging.level must be one of DEBUG, INFO, WARN, ERROR (got %q)", c.Logging.Level))
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}

// DefaultConfigDir returns the default data directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Dir, name)
}

// TasksPath returns the path to the task file.
func (c *Config) TasksPath() string {
	return c.resolve(c.Files.Tasks)
}

// NotesPath returns the path to the note file.
func (c *Config) NotesPath() string {
	return c.resolve(c.Files.Notes)
}

// PasswordPath returns the path to the password file.
func (c *Config) PasswordPath() string {
	return c.resolve(c.Files.Password)
}

// EnsureDir creates the data directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// LoggingEnabled reports whether the debug log should be written.
func (c *Config) LoggingEnabled() bool {
	return c.Debug || c.Logging.Enabled
}

// LogLevel returns the effective log level; --debug forces DEBUG.
func (c *Config) LogLevel() string {
	if c.Debug {
		return logging.LevelDebug
	}
	return c.Logging.Level
}
