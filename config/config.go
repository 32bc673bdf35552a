package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	tweeterhttp "github.com/sagarc03/tweeter/http"
)

// DefaultPort is used when neither PORT nor any other source sets server.port.
const DefaultPort = 3000

var validate = validator.New()

type configKey struct{}

// WithContext returns a copy of ctx carrying cfg.
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the config stored by WithContext.
func FromContext(ctx context.Context) (*Config, error) {
	cfg, ok := ctx.Value(configKey{}).(*Config)
	if !ok || cfg == nil {
		return nil, errors.New("config not found in context")
	}
	return cfg, nil
}

// Config is the root configuration struct for tweeter.
type Config struct {
	Server  ServerConfig           `mapstructure:"server" yaml:"server"`
	Storage StorageConfig          `mapstructure:"storage" yaml:"storage"`
	CORS    tweeterhttp.CORSConfig `mapstructure:"cors" yaml:"cors"`
	Log     LogConfig              `mapstructure:"log" yaml:"log"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host            string        `mapstructure:"host" yaml:"host"`
	Port            int           `mapstructure:"port" yaml:"port" validate:"required,min=1,max=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" yaml:"read_timeout" validate:"min=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" yaml:"write_timeout" validate:"min=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" validate:"gt=0"`
}

// StorageConfig holds the location of the served resources.
type StorageConfig struct {
	Path     string `mapstructure:"path" yaml:"path" validate:"required_if=Embedded false"`
	Embedded bool   `mapstructure:"embedded" yaml:"embedded"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"required,oneof=text json"`
}

// Address returns the host:port the server listens on.
func (c ServerConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// flagToViperKey maps CLI flag names to viper keys. Flags not listed bind
// under their own name.
var flagToViperKey = map[string]string{
	"port":       "server.port",
	"host":       "server.host",
	"public-dir": "storage.path",
	"embedded":   "storage.embedded",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// bindChangedFlags binds the flags the user set on the command line.
// Unset flags are skipped so their defaults never shadow env or file values.
func bindChangedFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.Visit(func(f *pflag.Flag) {
		key, ok := flagToViperKey[f.Name]
		if !ok {
			key = f.Name
		}
		_ = v.BindPFlag(key, f)
	})
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("storage.path", "./public")
	v.SetDefault("storage.embedded", false)

	v.SetDefault("cors.enabled", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// readFiles merges configFiles into v, left to right. With no files it looks
// for an optional ./config.yaml. Unreadable files are logged and skipped.
func readFiles(v *viper.Viper, configFiles []string) {
	if len(configFiles) == 0 {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			slog.Warn("error reading config file", "err", err)
		}
		return
	}

	for _, file := range configFiles {
		v.SetConfigFile(file)
		if err := v.MergeInConfig(); err != nil {
			slog.Warn("error reading config file", "file", file, "err", err)
		}
	}
}

// bindEnv maps TWEETER_<SECTION>_<KEY> onto every key. The port also
// answers to the conventional PORT variable, with the prefixed name first.
func bindEnv(v *viper.Viper) error {
	v.SetEnvPrefix("TWEETER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("server.port", "TWEETER_SERVER_PORT", "PORT"); err != nil {
		return fmt.Errorf("bind env: %w", err)
	}
	return nil
}

// Load builds a validated Config. Later sources win:
// defaults, then configFiles in order, then environment, then flags that
// were set explicitly. flags may be nil.
func Load(configFiles []string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)
	readFiles(v, configFiles)

	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if flags != nil {
		bindChangedFlags(v, flags)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
