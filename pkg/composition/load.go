// Package composition loads raag compositions from YAML files.
//
// A composition file is a mapping with the keys aroha, avroha, pakad,
// alankars and swarmaalika. Each notation value is either a string or a
// list whose first item is a string; commas split it into blocks:
//
//	name: Durga
//	aroha: S - R - M - P - D - S. - -
//	avroha: S. - D - P - M - R - S - -
//	pakad:
//	  - M P D -, M R -, .D .D S -
//	swarmaalika:
//	  - sam: 1
//	  - mukra: D P
//	  - sthayi:
//	      - lineA: S R M P
//	      - lineB: D - S. -
//	  - antara:
//	      - lineC: M P D S.
//	  - tihayi: D P M R S -
package composition

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/haivivi/raagas/pkg/raag"
	"github.com/haivivi/raagas/pkg/swar"
)

// Ext is the file extension of composition files.
const Ext = ".yaml"

// Load reads the composition file at path. The raag is named after the
// file unless the file sets a name.
func Load(path string, t *swar.Table) (*raag.Raag, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("composition: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(name, data, t)
}

// Parse decodes a composition document.
func Parse(name string, data []byte, t *swar.Table) (*raag.Raag, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("composition: %s: %w", name, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("composition: %s: %w: empty document", name, swar.ErrStructural)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("composition: %s: %w: top level must be a mapping", name, swar.ErrStructural)
	}

	p := &parser{name: name, table: t}
	r := &raag.Raag{Name: name}
	var aroha, avroha swar.Blocks
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i].Value, root.Content[i+1]
		var err error
		switch key {
		case "name":
			if val.Value != "" {
				r.Name = val.Value
			}
		case raag.PartAroha:
			aroha, err = p.notation(key, val)
		case raag.PartAvroha:
			avroha, err = p.notation(key, val)
		case raag.PartPakad:
			r.Pakad, err = p.notation(key, val)
		case raag.PartAlankars:
			r.Alankars, err = p.notation(key, val)
		case "swarmaalika":
			r.Swarmaalika, err = p.swarmaalika(val)
		default:
			err = p.errorf(key, val, "%w: unknown key", swar.ErrStructural)
		}
		if err != nil {
			return nil, err
		}
	}

	if len(aroha) == 0 {
		return nil, fmt.Errorf("composition: %s: %w: missing aroha", name, swar.ErrStructural)
	}
	if len(avroha) == 0 {
		return nil, fmt.Errorf("composition: %s: %w: missing avroha", name, swar.ErrStructural)
	}
	var err error
	if r.Aroha, err = raag.NewAroha(aroha, t); err != nil {
		return nil, fmt.Errorf("composition: %s: %w", name, err)
	}
	if r.Avroha, err = raag.NewAvroha(avroha, t); err != nil {
		return nil, fmt.Errorf("composition: %s: %w", name, err)
	}
	return r, nil
}

type parser struct {
	name  string
	table *swar.Table
}

func (p *parser) errorf(path string, n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("composition: %s: %s (line %d): %w", p.name, path, n.Line, fmt.Errorf(format, args...))
}

// notation decodes a string, or a list whose first item is a string.
// A null value or a list starting with null yields no blocks.
func (p *parser) notation(path string, n *yaml.Node) (swar.Blocks, error) {
	if n.Kind == yaml.SequenceNode {
		if len(n.Content) == 0 {
			return nil, nil
		}
		n = n.Content[0]
	}
	if n.Kind != yaml.ScalarNode {
		return nil, p.errorf(path, n, "%w: notation must be a string", swar.ErrStructural)
	}
	if n.ShortTag() == "!!null" {
		return nil, nil
	}
	bs, err := swar.ParseBlocks(n.Value, p.table)
	if err != nil {
		return nil, p.errorf(path, n, "%w", err)
	}
	return bs, nil
}

// swarmaalika decodes a list of single-key maps, or a plain mapping.
func (p *parser) swarmaalika(n *yaml.Node) (*raag.Swarmaalika, error) {
	sm := &raag.Swarmaalika{
		Sam:    1,
		Sthayi: raag.Section{Name: raag.Sthayi},
		Antara: raag.Section{Name: raag.Antara},
	}
	pairs, err := p.pairs("swarmaalika", n)
	if err != nil {
		return nil, err
	}
	for _, kv := range pairs {
		path := "swarmaalika." + kv.key
		switch kv.key {
		case "sam":
			if kv.val.ShortTag() == "!!null" {
				continue
			}
			sam, err := strconv.Atoi(kv.val.Value)
			if err != nil || sam < 1 {
				return nil, p.errorf(path, kv.val, "%w: sam must be a positive integer", swar.ErrStructural)
			}
			sm.Sam = sam
		case raag.PartMukra:
			if sm.Mukra, err = p.notation(path, kv.val); err != nil {
				return nil, err
			}
		case raag.PartTihayi:
			if sm.Tihayi, err = p.notation(path, kv.val); err != nil {
				return nil, err
			}
		case raag.Sthayi:
			if sm.Sthayi.Lines, err = p.lines(path, kv.val); err != nil {
				return nil, err
			}
		case raag.Antara:
			if sm.Antara.Lines, err = p.lines(path, kv.val); err != nil {
				return nil, err
			}
		default:
			return nil, p.errorf(path, kv.val, "%w: unknown key", swar.ErrStructural)
		}
	}
	return sm, nil
}

func (p *parser) lines(path string, n *yaml.Node) ([]raag.Line, error) {
	pairs, err := p.pairs(path, n)
	if err != nil {
		return nil, err
	}
	var out []raag.Line
	for _, kv := range pairs {
		bs, err := p.notation(path+"."+kv.key, kv.val)
		if err != nil {
			return nil, err
		}
		if len(bs) == 0 {
			continue
		}
		out = append(out, raag.Line{Tag: kv.key, Blocks: bs})
	}
	return out, nil
}

type pair struct {
	key string
	val *yaml.Node
}

// pairs flattens a mapping, or a list of mappings, into ordered pairs.
func (p *parser) pairs(path string, n *yaml.Node) ([]pair, error) {
	var out []pair
	add := func(m *yaml.Node) {
		for i := 0; i+1 < len(m.Content); i += 2 {
			out = append(out, pair{key: m.Content[i].Value, val: m.Content[i+1]})
		}
	}
	switch n.Kind {
	case yaml.MappingNode:
		add(n)
	case yaml.SequenceNode:
		for _, item := range n.Content {
			if item.Kind != yaml.MappingNode {
				return nil, p.errorf(path, item, "%w: expected a mapping", swar.ErrStructural)
			}
			add(item)
		}
	case yaml.ScalarNode:
		if n.ShortTag() == "!!null" {
			return nil, nil
		}
		fallthrough
	default:
		return nil, p.errorf(path, n, "%w: expected a list of mappings", swar.ErrStructural)
	}
	return out, nil
}

// IsNotFound reports whether err is a missing composition.
func IsNotFound(err error) bool {
	return errors.Is(err, os.ErrNotExist) || errors.Is(err, ErrNotFound)
}
