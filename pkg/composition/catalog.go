package composition

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/haivivi/raagas/pkg/raag"
	"github.com/haivivi/raagas/pkg/swar"
)

// ErrNotFound is returned when a composition name matches no file.
var ErrNotFound = errors.New("composition: not found")

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the names of the compositions shipped with the binary.
func Builtin() []string {
	names, _ := list(builtinFS, "builtin")
	return names
}

// LoadBuiltin loads a shipped composition by name.
func LoadBuiltin(name string, t *swar.Table) (*raag.Raag, error) {
	data, err := builtinFS.ReadFile(path.Join("builtin", name+Ext))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return Parse(name, data, t)
}

// Catalog resolves composition names against a directory of user files
// and then the builtin set.
type Catalog struct {
	// Dir holds user compositions. Empty means builtin only.
	Dir   string
	Table *swar.Table
}

// Entry describes one composition available from a Catalog.
type Entry struct {
	Name   string `json:"name" yaml:"name"`
	Source string `json:"source" yaml:"source"`
}

// List returns every composition name, user files shadowing builtins.
func (c *Catalog) List() ([]Entry, error) {
	seen := make(map[string]bool)
	var out []Entry
	if c.Dir != "" {
		names, err := list(os.DirFS(c.Dir), ".")
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("composition: %w", err)
		}
		for _, n := range names {
			seen[n] = true
			out = append(out, Entry{Name: n, Source: filepath.Join(c.Dir, n+Ext)})
		}
	}
	for _, n := range Builtin() {
		if !seen[n] {
			out = append(out, Entry{Name: n, Source: "builtin"})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Open loads a composition. ref may be a path to a file, a name in Dir
// or a builtin name.
func (c *Catalog) Open(ref string) (*raag.Raag, error) {
	t := c.Table
	if t == nil {
		t = swar.NewTable()
	}
	if strings.HasSuffix(ref, Ext) || strings.ContainsRune(ref, filepath.Separator) {
		return Load(ref, t)
	}
	if c.Dir != "" {
		p := filepath.Join(c.Dir, ref+Ext)
		if _, err := os.Stat(p); err == nil {
			return Load(p, t)
		}
	}
	return LoadBuiltin(ref, t)
}

func list(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), Ext))
	}
	sort.Strings(names)
	return names, nil
}
