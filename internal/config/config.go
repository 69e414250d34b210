// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the session role goes to the
// configured durable store.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	apperrors "boxoffice/cli/internal/errors"
	"boxoffice/cli/internal/xdg"

	"gopkg.in/yaml.v3"
)

// Store backends understood by store.Open.
const (
	BackendMemory  = "memory"
	BackendFile    = "file"
	BackendKeyring = "keyring"
	BackendRedis   = "redis"
)

// FileName is the config file name inside the XDG config dir.
const FileName = "config.yaml"

// Config holds non-sensitive CLI settings.
type Config struct {
	LogLevel string      `yaml:"log_level"`
	Store    StoreConfig `yaml:"store"`
}

// StoreConfig selects and configures the durable key-value store.
type StoreConfig struct {
	Backend   string      `yaml:"backend"`
	Namespace string      `yaml:"namespace"`
	File      string      `yaml:"file"`
	Redis     RedisConfig `yaml:"redis"`
}

// RedisConfig holds connection settings for the redis backend.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogLevel: "info",
		Store: StoreConfig{
			Backend:   BackendFile,
			Namespace: xdg.AppName,
			Redis:     RedisConfig{Addr: "localhost:6379"},
		},
	}
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads configuration from path, or from Path() when path is empty.
// A missing file yields defaults. BOXOFFICE_* environment variables are
// applied on top of whatever the file provides. The result is not validated;
// callers apply their own overrides first and then call Validate.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		p, err := Path()
		if err != nil {
			return c, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		data = []byte(expandEnvVars(string(data)))
		if err := yaml.Unmarshal(data, &c); err != nil {
			return c, apperrors.Wrap(apperrors.InvalidConfig, "parse "+path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return c, fmt.Errorf("reading config file: %w", err)
	}

	if err := applyEnv(&c); err != nil {
		return c, err
	}
	applyDefaults(&c)
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(path string, c Config) error {
	if path == "" {
		p, err := Path()
		if err != nil {
			return err
		}
		path = p
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// Validate reports configuration values no component can use.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendFile, BackendKeyring, BackendRedis:
	default:
		return apperrors.New(apperrors.InvalidConfig, fmt.Sprintf("unknown store backend %q", c.Store.Backend))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return apperrors.New(apperrors.InvalidConfig, fmt.Sprintf("unknown log level %q", c.LogLevel))
	}
	if c.Store.Backend == BackendRedis && c.Store.Redis.Addr == "" {
		return apperrors.New(apperrors.InvalidConfig, "redis backend requires store.redis.addr")
	}
	return nil
}

func applyEnv(c *Config) error {
	if v := os.Getenv("BOXOFFICE_STORE"); v != "" {
		c.Store.Backend = v
	}
	if v := os.Getenv("BOXOFFICE_REDIS_ADDR"); v != "" {
		c.Store.Redis.Addr = v
	}
	if v := os.Getenv("BOXOFFICE_REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return apperrors.Wrap(apperrors.InvalidConfig, "BOXOFFICE_REDIS_DB", err)
		}
		c.Store.Redis.DB = db
	}
	if v := os.Getenv("BOXOFFICE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

func applyDefaults(c *Config) {
	d := Default()
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.Store.Backend == "" {
		c.Store.Backend = d.Store.Backend
	}
	if c.Store.Namespace == "" {
		c.Store.Namespace = d.Store.Namespace
	}
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars expands ${VAR} patterns in the string.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})
}
