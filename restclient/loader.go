package restclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoaderOption customizes LoadConfig.
type LoaderOption func(*loaderOpts)

type loaderOpts struct {
	configFile string
	envFile    string
}

// WithConfigFile sets an explicit YAML config file path.
func WithConfigFile(path string) LoaderOption {
	return func(o *loaderOpts) { o.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(o *loaderOpts) { o.envFile = path }
}

// LoadConfig loads a client Config from a YAML file and the
// environment. Environment variables win over the file and use the
// upper-cased name as prefix with dots mapped to underscores, e.g.
// MYAPI_BASE_URL for name "myapi". A .env file is loaded first when
// present. Missing files are not an error; validation happens in New.
func LoadConfig(name string, cfg *Config, opts ...LoaderOption) error {
	var o loaderOpts
	for _, opt := range opts {
		opt(&o)
	}

	envFile := o.envFile
	if envFile == "" {
		envFile = ".env"
	}
	if fileExists(envFile) {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("restclient: load env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(strings.ToUpper(name))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys must be registered for AutomaticEnv to resolve them on Unmarshal.
	for _, key := range []string{"base_url", "timeout", "max_retries", "retry_backoff", "content_type", "response_mode"} {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("restclient: bind env %s: %w", key, err)
		}
	}

	configFile := o.configFile
	if configFile == "" {
		configFile = "config.yml"
	}
	if fileExists(configFile) {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("restclient: read config %s: %w", configFile, err)
		}
	}

	// Env values arrive as strings; decode them weakly into typed fields.
	weak := func(dc *mapstructure.DecoderConfig) { dc.WeaklyTypedInput = true }
	if err := v.Unmarshal(cfg, weak); err != nil {
		return fmt.Errorf("restclient: unmarshal config: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
