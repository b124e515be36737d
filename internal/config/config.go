package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	vberrors "github.com/vango-dev/vbind/internal/errors"
)

const (
	// ConfigName is the configuration file name without extension.
	ConfigName = "vbind"

	// ConfigFileName is the configuration file looked up in the working directory.
	ConfigFileName = ConfigName + ".yaml"

	// EnvPrefix prefixes environment overrides, e.g. VBIND_LOG_LEVEL.
	EnvPrefix = "VBIND"

	// DefaultRoot is the default root selector.
	DefaultRoot = "body"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// DefaultMetricsNamespace is the default Prometheus namespace.
	DefaultMetricsNamespace = "vbind"
)

// Config is the CLI configuration.
type Config struct {
	// Template is the HTML template to bind.
	Template string `mapstructure:"template"`

	// Script is the YAML script with data, methods and steps.
	Script string `mapstructure:"script"`

	// Root selects the node to bind within the template.
	Root string `mapstructure:"root"`

	// Log contains logging configuration.
	Log LogConfig `mapstructure:"log"`

	// Render contains HTML output configuration.
	Render RenderConfig `mapstructure:"render"`

	// Metrics contains metrics configuration.
	Metrics MetricsConfig `mapstructure:"metrics"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
}

// RenderConfig configures HTML output.
type RenderConfig struct {
	// Pretty indents the output.
	Pretty bool `mapstructure:"pretty"`

	// StripAnnotations drops binding annotations from the output.
	StripAnnotations bool `mapstructure:"strip_annotations"`
}

// MetricsConfig configures the metrics dump.
type MetricsConfig struct {
	// Enabled prints engine metrics after a run.
	Enabled bool `mapstructure:"enabled"`

	// Namespace is the Prometheus namespace.
	Namespace string `mapstructure:"namespace"`
}

// flagKeys maps CLI flag names to configuration keys.
var flagKeys = map[string]string{
	"template":          "template",
	"script":            "script",
	"root":              "root",
	"log-level":         "log.level",
	"pretty":            "render.pretty",
	"strip-annotations": "render.strip_annotations",
	"metrics":           "metrics.enabled",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("template", "")
	v.SetDefault("script", "")
	v.SetDefault("root", DefaultRoot)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("render.pretty", false)
	v.SetDefault("render.strip_annotations", false)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.namespace", DefaultMetricsNamespace)

	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// New returns a configuration with defaults applied.
func New() *Config {
	cfg, _ := decode(newViper())
	return cfg
}

// Load reads configuration from path, the environment, and flags.
//
// An empty path looks for vbind.yaml in the working directory and carries on
// with defaults if there is none. An explicit path must exist. Flags that
// were set on the command line win over everything else; flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(ConfigName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, vberrors.New("C002").Wrap(err).
				WithDetail(fmt.Sprintf("Failed to read %s: %v", displayPath(path), err))
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, vberrors.New("C001").Wrap(err)
				}
			}
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, vberrors.New("C002").Wrap(err)
	}
	cfg.configPath = v.ConfigFileUsed()
	return cfg, nil
}

func decode(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return &c, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

func displayPath(path string) string {
	if path == "" {
		return ConfigFileName
	}
	return path
}

// Validate checks if the configuration is complete.
func (c *Config) Validate() error {
	if c.Template == "" {
		return vberrors.New("C001").
			WithDetail("No template configured").
			WithSuggestion("Pass --template or set template in " + ConfigFileName)
	}
	if strings.TrimSpace(c.Root) == "" {
		return vberrors.New("C001").
			WithDetail("Root selector is empty")
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return vberrors.New("C001").
			WithDetail(err.Error()).
			WithSuggestion("Use one of debug, info, warn, error")
	}
	return nil
}

// Path returns the path where the config was loaded from, or "".
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file, or "".
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// TemplatePath returns the template path resolved against the config directory.
func (c *Config) TemplatePath() string {
	return c.resolve(c.Template)
}

// ScriptPath returns the script path resolved against the config directory,
// or "" if no script is configured.
func (c *Config) ScriptPath() string {
	return c.resolve(c.Script)
}

func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || c.Dir() == "" {
		return p
	}
	return filepath.Join(c.Dir(), p)
}

// LogLevel returns the configured slog level. Invalid levels map to info.
func (c *Config) LogLevel() slog.Level {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

// Exists reports whether a config file exists in dir.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}
