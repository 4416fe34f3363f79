package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testComposition = `name: Mine
aroha: S R G P D S.
avroha: S. D P G R S
pakad: G R S -
`

func TestList(t *testing.T) {
	dir, cleanup := setupTestEnv(t)
	defer cleanup()

	comps := filepath.Join(dir, "compositions")
	if err := os.MkdirAll(comps, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(comps, "mine.yaml"), []byte(testComposition), 0644); err != nil {
		t.Fatal(err)
	}

	stdout, stderr, code := runCmd(t, "list")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	for _, want := range []string{"NAME", "bhupali", "durga", "malkauns", "mine", "builtin", "mine.yaml"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("missing %q in:\n%s", want, stdout)
		}
	}

	stdout, _, code = runCmd(t, "list", "--format", "json")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var entries []map[string]string
	if err := json.Unmarshal([]byte(stdout), &entries); err != nil {
		t.Fatalf("expected JSON, got: %s", stdout)
	}
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(entries))
	}
}

func TestShow(t *testing.T) {
	_, cleanup := setupTestEnv(t)
	defer cleanup()

	stdout, stderr, code := runCmd(t, "show", "durga")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	for _, want := range []string{"Durga", "tonic S", "lower:", "higher:", "lineA:", "tihayi"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("missing %q in:\n%s", want, stdout)
		}
	}
}

func TestShowJSON(t *testing.T) {
	_, cleanup := setupTestEnv(t)
	defer cleanup()

	stdout, _, code := runCmd(t, "show", "bhupali", "--format", "json")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var v struct {
		Name  string `json:"name"`
		Tonic string `json:"tonic"`
		Aroha struct {
			Notation string `json:"notation"`
		} `json:"aroha"`
		Parts []string `json:"parts"`
	}
	if err := json.Unmarshal([]byte(stdout), &v); err != nil {
		t.Fatalf("expected JSON, got: %s", stdout)
	}
	if v.Name != "Bhupali" || v.Tonic != "S" {
		t.Errorf("name/tonic = %q/%q", v.Name, v.Tonic)
	}
	if v.Aroha.Notation != "S R G P D S. - -" {
		t.Errorf("aroha = %q", v.Aroha.Notation)
	}
	if len(v.Parts) == 0 || v.Parts[0] != "aroha" {
		t.Errorf("parts = %v", v.Parts)
	}
}

func TestShowQueryToFile(t *testing.T) {
	_, cleanup := setupTestEnv(t)
	defer cleanup()

	out := filepath.Join(t.TempDir(), "tonic.json")
	_, stderr, code := runCmd(t, "show", "durga", "-q", ".tonic", "--format", "json", "-o", out)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(string(data)); got != `"S"` {
		t.Errorf("got %s, want %q", got, `"S"`)
	}
}

func TestShowNotFound(t *testing.T) {
	_, cleanup := setupTestEnv(t)
	defer cleanup()

	_, stderr, code := runCmd(t, "show", "yaman")
	if code == 0 {
		t.Fatal("expected failure")
	}
	if !strings.Contains(stderr, "not found") {
		t.Errorf("stderr: %s", stderr)
	}
}

func TestParse(t *testing.T) {
	_, cleanup := setupTestEnv(t)
	defer cleanup()

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"S R:G - P/M"}, "S R:G - P/M"},
		{[]string{"S", "R,", "G"}, "S R, G"},
		{[]string{"  .D   S  "}, ".D S"},
	}
	for _, tt := range tests {
		stdout, stderr, code := runCmd(t, append([]string{"parse"}, tt.args...)...)
		if code != 0 {
			t.Fatalf("parse %v: exit %d: %s", tt.args, code, stderr)
		}
		if got := strings.TrimSpace(stdout); got != tt.want {
			t.Errorf("parse %v = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestParseJSON(t *testing.T) {
	_, cleanup := setupTestEnv(t)
	defer cleanup()

	stdout, _, code := runCmd(t, "parse", "S - R:G", "--format", "json")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var v struct {
		Beats    int    `json:"beats"`
		Duration string `json:"duration"`
		Blocks   []struct {
			Beats [][]struct {
				Name  string  `json:"name"`
				Beats float64 `json:"beats"`
				Held  float64 `json:"held"`
			} `json:"beats"`
		} `json:"blocks"`
	}
	if err := json.Unmarshal([]byte(stdout), &v); err != nil {
		t.Fatalf("expected JSON, got: %s", stdout)
	}
	if v.Beats != 3 || v.Duration != "1.5s" {
		t.Errorf("beats/duration = %d/%s", v.Beats, v.Duration)
	}
	if len(v.Blocks) != 1 || len(v.Blocks[0].Beats) != 3 {
		t.Fatalf("blocks = %+v", v.Blocks)
	}
	first := v.Blocks[0].Beats[0][0]
	if first.Name != "S" || first.Held != 1 {
		t.Errorf("first swar = %+v", first)
	}
	if len(v.Blocks[0].Beats[1]) != 0 {
		t.Errorf("continuation beat should be empty: %+v", v.Blocks[0].Beats[1])
	}
}

func TestParseError(t *testing.T) {
	_, cleanup := setupTestEnv(t)
	defer cleanup()

	for _, notation := range []string{"S X", "- S", "S ::"} {
		if _, _, code := runCmd(t, "parse", notation); code == 0 {
			t.Errorf("parse %q should fail", notation)
		}
	}
}

func TestSchema(t *testing.T) {
	_, cleanup := setupTestEnv(t)
	defer cleanup()

	stdout, _, code := runCmd(t, "schema")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var s map[string]any
	if err := json.Unmarshal([]byte(stdout), &s); err != nil {
		t.Fatalf("expected JSON, got: %s", stdout)
	}
	props, ok := s["properties"].(map[string]any)
	if !ok {
		t.Fatalf("no properties: %v", s)
	}
	for _, key := range []string{"aroha", "avroha", "pakad", "swarmaalika"} {
		if _, ok := props[key]; !ok {
			t.Errorf("schema missing %q", key)
		}
	}

	stdout, _, code = runCmd(t, "schema", "--format", "yaml")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(stdout, "properties:") {
		t.Errorf("yaml schema: %s", stdout)
	}
}
