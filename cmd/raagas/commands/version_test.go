package commands

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestVersion(t *testing.T) {
	_, cleanup := setupTestEnv(t)
	defer cleanup()

	stdout, _, code := runCmd(t, "version")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stdout, "raagas") {
		t.Fatalf("expected 'raagas', got: %s", stdout)
	}
}

func TestVersionJSON(t *testing.T) {
	_, cleanup := setupTestEnv(t)
	defer cleanup()

	stdout, _, code := runCmd(t, "version", "--format", "json")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var info map[string]string
	if err := json.Unmarshal([]byte(stdout), &info); err != nil {
		t.Fatalf("expected JSON, got: %s", stdout)
	}
	if info["version"] == "" || info["go"] == "" {
		t.Fatalf("missing fields: %v", info)
	}
}

func TestVersionQuery(t *testing.T) {
	_, cleanup := setupTestEnv(t)
	defer cleanup()

	stdout, _, code := runCmd(t, "version", "--format", "raw", "-q", ".version")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if got := strings.TrimSpace(stdout); got != "dev" {
		t.Fatalf("got %q, want %q", got, "dev")
	}
}

func TestUnknownFormat(t *testing.T) {
	_, cleanup := setupTestEnv(t)
	defer cleanup()

	_, stderr, code := runCmd(t, "version", "--format", "xml")
	if code == 0 {
		t.Fatal("expected failure")
	}
	if !strings.Contains(stderr, "xml") {
		t.Fatalf("stderr: %s", stderr)
	}
}
