package main

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/abhixsh/ClimaX/internal/config"
	"go.uber.org/zap"
)

func TestEnvironmentVariables(t *testing.T) {
	// Test default port behavior
	port := config.GetServerPort()
	if port != "8080" {
		t.Errorf("Expected default port 8080, got %s", port)
	}
}

func TestNewRouter(t *testing.T) {
	router := newRouter("test_api_key", zap.NewNop().Sugar())
	server := httptest.NewServer(router)
	defer server.Close()

	resp, err := http.Get(server.URL + "/health")
	if err != nil {
		t.Fatalf("could not send GET request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	// Missing city is rejected before any upstream call
	resp2, err := http.Get(server.URL + "/weather")
	if err != nil {
		t.Fatalf("could not send GET request: %v", err)
	}
	defer resp2.Body.Close()

	if resp2.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp2.StatusCode)
	}
}

// runMainEnv makes the test binary act as the server when re-executed.
const runMainEnv = "CLIMAX_RUN_MAIN"

func TestMainExitsWithoutAPIKey(t *testing.T) {
	if os.Getenv(runMainEnv) == "1" {
		main()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestMainExitsWithoutAPIKey$")
	env := []string{runMainEnv + "=1"}
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, config.APIKeyEnv+"=") {
			env = append(env, kv)
		}
	}
	cmd.Env = env
	// keep a local .env from supplying the key
	cmd.Dir = t.TempDir()

	out, err := cmd.CombinedOutput()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("Expected the process to exit with an error, got %v; output:\n%s", err, out)
	}
	if exitErr.ExitCode() == 0 {
		t.Errorf("Expected non-zero exit code, got 0")
	}
	if !strings.Contains(string(out), "Refusing to start") {
		t.Errorf("Expected refusal to be logged, got:\n%s", out)
	}
}
