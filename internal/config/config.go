package config

import (
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vango-dev/htmlcomponent/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "htmlc.json"

	// DefaultPort is the default compile server port.
	DefaultPort = 8089

	// DefaultHost is the default compile server host.
	DefaultHost = "localhost"

	// DefaultOutput writes compiled markup to stdout.
	DefaultOutput = "-"

	// DefaultLogLevel is the default slog level name.
	DefaultLogLevel = "info"

	// DefaultMaxBodyBytes limits request bodies accepted by the server.
	DefaultMaxBodyBytes = 1 << 20

	// DefaultReadTimeout is the server read timeout.
	DefaultReadTimeout = "10s"

	// DefaultContentType is sent with published markup.
	DefaultContentType = "text/html; charset=utf-8"
)

// Config represents the complete htmlc.json configuration.
type Config struct {
	// Output is where compiled markup goes: "-" for stdout, a file path,
	// or s3://bucket/key.
	Output string `json:"output,omitempty"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `json:"logLevel,omitempty"`

	// Server contains compile server configuration.
	Server ServerConfig `json:"server,omitempty"`

	// S3 contains defaults for publishing to S3.
	S3 S3Config `json:"s3,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains compile server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// Metrics exposes /metrics when set.
	Metrics bool `json:"metrics,omitempty"`

	// MaxBodyBytes limits the size of a posted document.
	MaxBodyBytes int64 `json:"maxBodyBytes,omitempty"`

	// ReadTimeout is a duration string such as "10s".
	ReadTimeout string `json:"readTimeout,omitempty"`
}

// S3Config contains S3 publishing settings.
type S3Config struct {
	Bucket      string `json:"bucket,omitempty"`
	Prefix      string `json:"prefix,omitempty"`
	Region      string `json:"region,omitempty"`
	Endpoint    string `json:"endpoint,omitempty"`
	ContentType string `json:"contentType,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Output:   DefaultOutput,
		LogLevel: DefaultLogLevel,
		Server: ServerConfig{
			Host:         DefaultHost,
			Port:         DefaultPort,
			MaxBodyBytes: DefaultMaxBodyBytes,
			ReadTimeout:  DefaultReadTimeout,
		},
		S3: S3Config{
			ContentType: DefaultContentType,
		},
	}
}

// Load reads htmlc.json from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodeConfigNotFound).
				WithDetail("No htmlc.json found in " + filepath.Dir(path))
		}
		return nil, errors.New(errors.CodeConfigParse).Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, parseError(path, data, err)
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseError reports a JSON error at its line and column in path.
func parseError(path string, data []byte, err error) error {
	e := errors.New(errors.CodeConfigParse).
		WithDetail("Failed to parse htmlc.json: " + err.Error()).
		WithSuggestion("Check that htmlc.json is valid JSON")

	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case stderrors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case stderrors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return e
	}
	line, col := errors.Position(data, offset)
	return e.WithLocation(path, line, col)
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New(errors.CodeConfigWrite).Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New(errors.CodeConfigWrite).WithDetail(path).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.MaxBodyBytes <= 0 {
		c.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.Server.ReadTimeout == "" {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.S3.ContentType == "" {
		c.S3.ContentType = DefaultContentType
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New(errors.CodeConfigPort).
			WithDetailf("Port must be between 0 and 65535, got %d", c.Server.Port)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := time.ParseDuration(c.Server.ReadTimeout); err != nil {
		return errors.New(errors.CodeConfigParse).
			WithDetailf("server.readTimeout %q is not a duration", c.Server.ReadTimeout)
	}
	return nil
}

// Address returns the host:port the server listens on.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// ReadTimeout returns the parsed server read timeout, or the default.
func (c *Config) ReadTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ReadTimeout)
	if err != nil {
		d, _ = time.ParseDuration(DefaultReadTimeout)
	}
	return d
}

// Level returns the configured slog level. Invalid names give info.
func (c *Config) Level() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, errors.New(errors.CodeConfigLevel).
		WithDetailf("%q is not one of debug, info, warn, error", name)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up from startDir to the first directory holding
// htmlc.json.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New(errors.CodeConfigNotFound).
				WithDetail("No htmlc.json found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads the nearest htmlc.json above the working
// directory. Without one it returns defaults.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		if errors.CodeOf(err) == errors.CodeConfigNotFound {
			return New(), nil
		}
		return nil, err
	}
	return Load(root)
}
