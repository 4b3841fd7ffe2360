package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// APIKeyEnv is the environment variable holding the OpenWeatherMap API key.
const APIKeyEnv = "OPENWEATHERMAP_API_KEY"

// ErrAPIKeyMissing is returned when no upstream API key is configured.
var ErrAPIKeyMissing = errors.New(APIKeyEnv + " environment variable not set")

var (
	once    sync.Once
	loadErr error

	logger     *zap.SugaredLogger
	loggerOnce sync.Once
)

// isTestRun returns true if the current process is a Go test binary.
func isTestRun() bool {
	return flag.Lookup("test.v") != nil || filepath.Ext(os.Args[0]) == ".test"
}

func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_header_timeout", "15s")
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "25s")
	viper.SetDefault("server.idle_timeout", "30s")
	viper.SetDefault("server.shutdown_timeout", "10s")
	viper.SetDefault("openweathermap.api_url", "https://api.openweathermap.org/data/2.5")
	viper.SetDefault("openweathermap.units", "metric")
	viper.SetDefault("openweathermap.timeout", "10s")
	viper.SetDefault("cors.allowed_origins", []string{"*"})
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.development", false)
}

// initConfig loads config.yaml (and config_test.yaml under go test) once.
// It must not log: GetLogger depends on it.
func initConfig() {
	once.Do(func() {
		setDefaults()

		root, err := getProjectRoot()
		if err != nil {
			loadErr = err
			return
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
		viper.AddConfigPath(root)
		if err = viper.ReadInConfig(); err != nil {
			loadErr = err
		}

		if isTestRun() {
			viper.SetConfigName("config_test")
			if err = viper.MergeInConfig(); err != nil && loadErr == nil {
				loadErr = err
			}
		}
	})
}

func getProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// Load forces configuration loading and reports a problem reading the config
// files. Defaults remain in effect when it returns an error.
func Load() error {
	initConfig()
	return loadErr
}

func GetOpenWeatherApiUrl() string {
	initConfig()
	return viper.GetString("openweathermap.api_url")
}

func GetOpenWeatherUnits() string {
	initConfig()
	return viper.GetString("openweathermap.units")
}

// GetOpenWeatherTimeout returns the outbound request timeout. Defaults to 10s if invalid.
func GetOpenWeatherTimeout() time.Duration {
	initConfig()
	return parseDuration(viper.GetString("openweathermap.timeout"), 10*time.Second)
}

func GetOpenWeatherMapAPIKey() string {
	_ = godotenv.Load()
	return os.Getenv(APIKeyEnv)
}

// RequireOpenWeatherMapAPIKey returns the API key or ErrAPIKeyMissing.
func RequireOpenWeatherMapAPIKey() (string, error) {
	key := GetOpenWeatherMapAPIKey()
	if key == "" {
		return "", ErrAPIKeyMissing
	}
	return key, nil
}

func GetServerPort() string {
	initConfig()
	return viper.GetString("server.port")
}

func GetServerTimeout(key string) string {
	initConfig()
	return viper.GetString("server." + key)
}

// GetServerTimeoutDuration parses server.<key> as a duration, falling back to def.
func GetServerTimeoutDuration(key string, def time.Duration) time.Duration {
	return parseDuration(GetServerTimeout(key), def)
}

func GetCORSAllowedOrigins() []string {
	initConfig()
	return viper.GetStringSlice("cors.allowed_origins")
}

// ReloadConfigForTest resets the config singleton and reloads Viper config. Use only in tests.
func ReloadConfigForTest() {
	once = sync.Once{}
	loadErr = nil
	initConfig()
}

// GetLogger returns the process-wide logger built from the logger.* settings.
func GetLogger() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		l, err := newLogger()
		if err != nil {
			panic(err)
		}
		logger = l.Sugar()
	})
	return logger
}

func newLogger() (*zap.Logger, error) {
	initConfig()
	cfg := zap.NewProductionConfig()
	if viper.GetBool("logger.development") {
		cfg = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(viper.GetString("logger.level"))
	if err != nil {
		level = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
