package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testRequest struct {
	Raag  string   `json:"raag" yaml:"raag"`
	Count int      `json:"count" yaml:"count"`
	Ops   []string `json:"operators" yaml:"operators"`
}

func TestLoadRequest(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"req.yaml", "raag: durga\ncount: 3\noperators: [replace, kan_swar]\n"},
		{"req.json", `{"raag": "durga", "count": 3, "operators": ["replace", "kan_swar"]}`},
		{"req.txt", "raag: durga\ncount: 3\noperators:\n  - replace\n  - kan_swar\n"},
	}
	for _, tt := range tests {
		path := filepath.Join(tmpDir, tt.name)
		if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
			t.Fatal(err)
		}
		var req testRequest
		if err := LoadRequest(path, &req); err != nil {
			t.Fatalf("LoadRequest(%s) error: %v", tt.name, err)
		}
		if req.Raag != "durga" || req.Count != 3 || len(req.Ops) != 2 {
			t.Errorf("LoadRequest(%s) = %+v", tt.name, req)
		}
	}
}

func TestLoadRequest_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	var req testRequest
	if err := LoadRequest(filepath.Join(tmpDir, "missing.yaml"), &req); err == nil {
		t.Error("LoadRequest should fail for a missing file")
	}

	bad := filepath.Join(tmpDir, "bad.json")
	if err := os.WriteFile(bad, []byte("{raag"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := LoadRequest(bad, &req); err == nil {
		t.Error("LoadRequest should fail for invalid JSON")
	}
}

func TestLoadRequestFrom(t *testing.T) {
	var req testRequest
	if err := LoadRequestFrom(strings.NewReader(`{"raag": "bhupali", "count": 1}`), &req); err != nil {
		t.Fatalf("LoadRequestFrom error: %v", err)
	}
	if req.Raag != "bhupali" || req.Count != 1 {
		t.Errorf("LoadRequestFrom = %+v", req)
	}

	req = testRequest{}
	if err := LoadRequestFrom(strings.NewReader("raag: malkauns\n"), &req); err != nil {
		t.Fatalf("LoadRequestFrom YAML error: %v", err)
	}
	if req.Raag != "malkauns" {
		t.Errorf("Raag = %q, want %q", req.Raag, "malkauns")
	}
}
