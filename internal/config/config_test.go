package config

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestGetOpenWeatherMapAPIKey(t *testing.T) {
	// Test with the environment variable set
	expectedKey := "test_api_key_123"
	t.Setenv(APIKeyEnv, expectedKey)

	result := GetOpenWeatherMapAPIKey()
	if result != expectedKey {
		t.Errorf("Expected API key %s, got %s", expectedKey, result)
	}

	// Test with environment variable not set
	os.Unsetenv(APIKeyEnv)
	result = GetOpenWeatherMapAPIKey()
	if result != "" {
		t.Errorf("Expected empty string, got %s", result)
	}
}

func TestRequireOpenWeatherMapAPIKey(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	os.Unsetenv(APIKeyEnv)

	_, err := RequireOpenWeatherMapAPIKey()
	if !errors.Is(err, ErrAPIKeyMissing) {
		t.Errorf("Expected ErrAPIKeyMissing, got %v", err)
	}

	t.Setenv(APIKeyEnv, "abc")
	key, err := RequireOpenWeatherMapAPIKey()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if key != "abc" {
		t.Errorf("Expected key abc, got %s", key)
	}
}

func TestGetOpenWeatherApiUrl(t *testing.T) {
	want := "https://api.openweathermap.org/data/2.5"
	got := GetOpenWeatherApiUrl()
	if got != want {
		t.Errorf("Expected API URL %s, got %s", want, got)
	}
}

func TestGetOpenWeatherUnits(t *testing.T) {
	if got := GetOpenWeatherUnits(); got != "metric" {
		t.Errorf("Expected units metric, got %s", got)
	}
}

func TestGetOpenWeatherTimeout(t *testing.T) {
	// config_test.yaml overrides the 10s default
	want := 2 * time.Second
	got := GetOpenWeatherTimeout()
	if got != want {
		t.Errorf("Expected timeout %v, got %v", want, got)
	}
}

func TestGetServerPort(t *testing.T) {
	want := "8080"
	got := GetServerPort()
	if got != want {
		t.Errorf("Expected server port %s, got %s", want, got)
	}
}

func TestGetServerTimeout(t *testing.T) {
	want := "15s"
	got := GetServerTimeout("read_header_timeout")
	if got != want {
		t.Errorf("Expected read_header_timeout %s, got %s", want, got)
	}
}

func TestGetServerTimeoutDuration(t *testing.T) {
	if got := GetServerTimeoutDuration("shutdown_timeout", time.Second); got != 10*time.Second {
		t.Errorf("Expected shutdown_timeout 10s, got %v", got)
	}
	if got := GetServerTimeoutDuration("no_such_timeout", 3*time.Second); got != 3*time.Second {
		t.Errorf("Expected fallback 3s, got %v", got)
	}
}

func TestGetCORSAllowedOrigins(t *testing.T) {
	got := GetCORSAllowedOrigins()
	if len(got) != 1 || got[0] != "*" {
		t.Errorf("Expected [*], got %v", got)
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"", time.Minute},
		{"garbage", time.Minute},
		{"-5s", time.Minute},
		{"250ms", 250 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := parseDuration(tt.in, time.Minute); got != tt.want {
			t.Errorf("parseDuration(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestReloadConfigForTest(t *testing.T) {
	viper.Set("server.port", "9090")
	defer viper.Set("server.port", "8080")

	ReloadConfigForTest()
	if got := GetServerPort(); got != "9090" {
		t.Errorf("Expected overridden port 9090, got %s", got)
	}
}

func TestLoad(t *testing.T) {
	ReloadConfigForTest()
	if err := Load(); err != nil {
		t.Errorf("Expected config files to load, got %v", err)
	}
}

func TestGetLogger(t *testing.T) {
	l := GetLogger()
	if l == nil {
		t.Fatal("Expected logger to be created")
	}
	if l != GetLogger() {
		t.Error("Expected same logger instance")
	}
}
