package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Configuration struct {
	Storage  StorageConfig  `yaml:"storage"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	App      AppConfig      `yaml:"app"`
}

type StorageConfig struct {
	AssetPath  string `yaml:"asset_path"`
	BundlePath string `yaml:"bundle_path"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"`
	Concurrency     int           `yaml:"concurrency"`
	RequestConfig   RequestConfig `yaml:"request"`
	LogConfig       LogConfig     `yaml:"log"`
	CleanConfig     CleanConfig   `yaml:"clean"`
	// RevisionRetries bounds the attempts of a soft delete that loses a
	// revision race.
	RevisionRetries int           `yaml:"revision_retries"`
}

type RequestConfig struct {
	// SizeLimit is the maximum request body in megabytes.
	SizeLimit int `yaml:"size_limit"`
}

type LogConfig struct {
	Format     string `yaml:"format"`
	Level      string `yaml:"level"`
	Output     string `yaml:"output"`
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Compress   bool   `yaml:"compress"`
}

type CleanConfig struct {
	Schedule string `yaml:"schedule"`
}

type DatabaseConfig struct {
	// Driver is either "sqlite" or "postgres".
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
	Path   string `yaml:"path"`
}

type AuthConfig struct {
	Secret      string `yaml:"secret"`
	Issuer      string `yaml:"issuer"`
	Audience    string `yaml:"audience"`
	OTTLifetime int    `yaml:"ott_lifetime"`
}

type AppConfig struct {
	BaseURL       string `yaml:"base_url"`
	AppBaseURL    string `yaml:"app_base_url"`
	LinkingScheme string `yaml:"linking_scheme"`
}

// LoadConfiguration reads the YAML file at configurationFilePath, overlays
// TGCS_ environment variables (optionally from a .env file) and fills in
// defaults. A missing file is not an error.
func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var config Configuration
	data, err := os.ReadFile(configurationFilePath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configurationFilePath, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}

	if err := config.applyEnvironment(); err != nil {
		return nil, err
	}
	config.applyDefaults()
	return &config, nil
}

func (c *Configuration) applyEnvironment() error {
	overrides := map[string]*string{
		"TGCS_DATABASE":       &c.Database.Path,
		"TGCS_DATABASE_DSN":   &c.Database.DSN,
		"TGCS_DATABASE_TYPE":  &c.Database.Driver,
		"TGCS_ASSET_DIR":      &c.Storage.AssetPath,
		"TGCS_BUNDLE_DIR":     &c.Storage.BundlePath,
		"TGCS_AUTH_SECRET":    &c.Auth.Secret,
		"TGCS_AUTH_ISSUER":    &c.Auth.Issuer,
		"TGCS_AUTH_AUDIENCE":  &c.Auth.Audience,
		"TGCS_BASE_URL":       &c.App.BaseURL,
		"TGCS_APP_BASE_URL":   &c.App.AppBaseURL,
		"TGCS_LINKING_SCHEME": &c.App.LinkingScheme,
	}
	for key, target := range overrides {
		if v, ok := os.LookupEnv(key); ok {
			*target = v
		}
	}
	if v, ok := os.LookupEnv("TGCS_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid TGCS_PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	return nil
}

func (c *Configuration) applyDefaults() {
	if c.Storage.AssetPath == "" {
		c.Storage.AssetPath = "./data/assets"
	}
	if c.Storage.BundlePath == "" {
		c.Storage.BundlePath = "./data/bundles"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Server.Concurrency == 0 {
		c.Server.Concurrency = 256
	}
	if c.Server.RequestConfig.SizeLimit == 0 {
		c.Server.RequestConfig.SizeLimit = 100
	}
	if c.Server.LogConfig.Format == "" {
		c.Server.LogConfig.Format = "text"
	}
	if c.Server.LogConfig.Level == "" {
		c.Server.LogConfig.Level = "info"
	}
	if c.Server.LogConfig.Output == "" {
		c.Server.LogConfig.Output = "stdout"
	}
	if c.Server.LogConfig.File == "" {
		c.Server.LogConfig.File = "./data/trailguide.log"
	}
	if c.Server.LogConfig.MaxSize == 0 {
		c.Server.LogConfig.MaxSize = 50
	}
	if c.Server.CleanConfig.Schedule == "" {
		c.Server.CleanConfig.Schedule = "@daily"
	}
	if c.Server.RevisionRetries == 0 {
		c.Server.RevisionRetries = 3
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Path == "" {
		c.Database.Path = "./data/db.sqlite3"
	}
	if c.Auth.OTTLifetime == 0 {
		c.Auth.OTTLifetime = 60
	}
	if c.App.BaseURL == "" {
		c.App.BaseURL = fmt.Sprintf("http://localhost:%d", c.Server.Port)
	}
	if c.App.AppBaseURL == "" {
		c.App.AppBaseURL = c.App.BaseURL
	}
	if c.App.LinkingScheme == "" {
		c.App.LinkingScheme = "trailguide"
	}
}

// MaxContentLength is the request body limit in bytes.
func (c *Configuration) MaxContentLength() int {
	return c.Server.RequestConfig.SizeLimit * 1024 * 1024
}

// PublicConfig is the subset of the configuration shipped to app clients.
func (c *Configuration) PublicConfig() map[string]interface{} {
	return map[string]interface{}{
		"AUTH_AUDIENCE":      c.Auth.Audience,
		"AUTH_ISSUER":        c.Auth.Issuer,
		"BASE_URL":           c.App.BaseURL,
		"MAX_CONTENT_LENGTH": c.MaxContentLength(),
		"LINKING_SCHEME":     c.App.LinkingScheme,
	}
}
