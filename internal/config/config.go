package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	siteerrors "github.com/petitemaison/epouvante/internal/errors"
)

const (
	// ConfigName is the config file base name, without extension.
	ConfigName = "epouvante"

	// EnvPrefix prefixes environment overrides (EPOUVANTE_SERVER_PORT).
	EnvPrefix = "EPOUVANTE"

	// DefaultPort is the default HTTP port.
	DefaultPort = 3000

	// DefaultHost is the default listen host.
	DefaultHost = "0.0.0.0"

	// DefaultTitle is the page title used when none is configured.
	DefaultTitle = "La Petite Maison de l'Épouvante"

	// StoreMemory and StoreBolt name the subscriber store backends.
	StoreMemory = "memory"
	StoreBolt   = "bolt"
)

// Config is the complete site configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Site       SiteConfig       `mapstructure:"site"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Newsletter NewsletterConfig `mapstructure:"newsletter"`
	Static     StaticConfig     `mapstructure:"static"`
	Log        LogConfig        `mapstructure:"log"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Publish    PublishConfig    `mapstructure:"publish"`

	// configPath is the file the config was read from, if any.
	configPath string
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"min=0,max=65535"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=0"`
}

// SiteConfig holds page-level metadata.
type SiteConfig struct {
	Title       string `mapstructure:"title" validate:"required"`
	Description string `mapstructure:"description"`
	Lang        string `mapstructure:"lang" validate:"required,min=2,max=12"`
	BaseURL     string `mapstructure:"base_url" validate:"omitempty,url"`
}

// CatalogConfig points at the content catalog.
// An empty Path selects the built-in catalog.
type CatalogConfig struct {
	Path  string `mapstructure:"path"`
	Watch bool   `mapstructure:"watch"`
}

// NewsletterConfig selects the subscriber store.
type NewsletterConfig struct {
	Store    string `mapstructure:"store" validate:"oneof=memory bolt"`
	BoltPath string `mapstructure:"bolt_path" validate:"required_if=Store bolt"`
}

// StaticConfig configures static file serving.
type StaticConfig struct {
	Dir      string `mapstructure:"dir"`
	Prefix   string `mapstructure:"prefix" validate:"startswith=/"`
	Manifest string `mapstructure:"manifest"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"startswith=/"`
}

// PublishConfig configures S3 publishing of the exported site.
type PublishConfig struct {
	Bucket string `mapstructure:"bucket"`
	Prefix string `mapstructure:"prefix"`
	Region string `mapstructure:"region"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			ShutdownTimeout: 10 * time.Second,
		},
		Site: SiteConfig{
			Title:       DefaultTitle,
			Description: "Boutique, fanzine et communauté pour les passionnés d'horreur.",
			Lang:        "fr",
		},
		Newsletter: NewsletterConfig{
			Store: StoreMemory,
		},
		Static: StaticConfig{
			Dir:    "public",
			Prefix: "/static/",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Load reads configuration from dir. The config file is optional; without
// one, defaults and environment overrides apply.
func Load(dir string) (*Config, error) {
	v := newViper()
	v.SetConfigName(ConfigName)
	v.AddConfigPath(dir)
	return load(v, false)
}

// LoadFile reads configuration from an explicit file path, which must exist.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	return load(v, true)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, New())
	return v
}

// setDefaults registers every key with viper. AutomaticEnv only consults
// the environment for keys viper already knows about.
func setDefaults(v *viper.Viper, c *Config) {
	v.SetDefault("server.host", c.Server.Host)
	v.SetDefault("server.port", c.Server.Port)
	v.SetDefault("server.shutdown_timeout", c.Server.ShutdownTimeout)
	v.SetDefault("site.title", c.Site.Title)
	v.SetDefault("site.description", c.Site.Description)
	v.SetDefault("site.lang", c.Site.Lang)
	v.SetDefault("site.base_url", c.Site.BaseURL)
	v.SetDefault("catalog.path", c.Catalog.Path)
	v.SetDefault("catalog.watch", c.Catalog.Watch)
	v.SetDefault("newsletter.store", c.Newsletter.Store)
	v.SetDefault("newsletter.bolt_path", c.Newsletter.BoltPath)
	v.SetDefault("static.dir", c.Static.Dir)
	v.SetDefault("static.prefix", c.Static.Prefix)
	v.SetDefault("static.manifest", c.Static.Manifest)
	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.format", c.Log.Format)
	v.SetDefault("metrics.enabled", c.Metrics.Enabled)
	v.SetDefault("metrics.path", c.Metrics.Path)
	v.SetDefault("publish.bucket", c.Publish.Bucket)
	v.SetDefault("publish.prefix", c.Publish.Prefix)
	v.SetDefault("publish.region", c.Publish.Region)
}

func load(v *viper.Viper, required bool) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if required || !errors.As(err, &notFound) {
			return nil, siteerrors.New("E100").Wrap(err)
		}
	}

	cfg := New()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, siteerrors.New("E101").
			WithDetail("Failed to decode configuration").
			Wrap(err)
	}
	cfg.configPath = v.ConfigFileUsed()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills in values that depend on other fields.
func (c *Config) applyDefaults() {
	if c.Newsletter.Store == StoreBolt && c.Newsletter.BoltPath == "" && c.configPath != "" {
		c.Newsletter.BoltPath = filepath.Join(filepath.Dir(c.configPath), "subscribers.db")
	}
	if c.Static.Prefix != "" && !strings.HasSuffix(c.Static.Prefix, "/") {
		c.Static.Prefix += "/"
	}
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Format = strings.ToLower(c.Log.Format)
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validateInst
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return siteerrors.New("E101").
			WithDetailf("%s failed validation for tag '%s'", fieldName(fe), fe.Tag()).
			Wrap(err)
	}
	return siteerrors.New("E101").Wrap(err)
}

// fieldName turns a validator namespace (Config.Server.Port) into the
// config key a user writes (server.port).
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = toSnake(part)
	}
	return strings.Join(parts, ".")
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && !(s[i-1] >= 'A' && s[i-1] <= 'Z') {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Path returns the config file that was read, or "" if none.
func (c *Config) Path() string {
	return c.configPath
}

// Address returns the host:port listen address.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the slog logger described by the Log section.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	var h slog.Handler
	if c.Log.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

// String summarizes the config for startup logs.
func (c *Config) String() string {
	src := c.configPath
	if src == "" {
		src = "defaults"
	}
	return fmt.Sprintf("config(%s) addr=%s store=%s", src, c.Address(), c.Newsletter.Store)
}
