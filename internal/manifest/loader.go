package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"
)

// Limits on YAML manifests once aliases are expanded
const (
	maxAliasDepth = 256
	maxYAMLNodes  = 1 << 20
)

// Loader reads manifest files into ordered value trees
type Loader struct{}

// NewLoader creates a new manifest loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses a manifest file from the given path
func (l *Loader) Load(path string) (*Value, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	return l.LoadFromBytes(data, filepath.Ext(path))
}

// LoadFromBytes parses a manifest from raw bytes. The extension selects the format.
func (l *Loader) LoadFromBytes(data []byte, ext string) (*Value, error) {
	ext = strings.ToLower(ext)
	if ext != ".json" && ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExt, ext)
	}

	text, err := decodeText(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if ext == ".json" {
		return parseJSON(text)
	}
	return parseYAML(text)
}

// decodeText converts BOM-prefixed UTF-8 or UTF-16 input to plain UTF-8
func decodeText(data []byte) ([]byte, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	return out, err
}

func parseJSON(data []byte) (*Value, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidFormat)
	}
	return fromJSON(gjson.ParseBytes(data)), nil
}

func fromJSON(r gjson.Result) *Value {
	switch r.Type {
	case gjson.Null:
		return Null()
	case gjson.False:
		return Bool(false)
	case gjson.True:
		return Bool(true)
	case gjson.Number:
		return Number(r.Raw)
	case gjson.String:
		return String(r.Str)
	}

	if r.IsArray() {
		items := make([]*Value, 0)
		r.ForEach(func(_, item gjson.Result) bool {
			items = append(items, fromJSON(item))
			return true
		})
		return List(items...)
	}

	m := NewMap()
	r.ForEach(func(key, val gjson.Result) bool {
		m.Set(key.Str, fromJSON(val))
		return true
	})
	return m
}

func parseYAML(data []byte) (*Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	c := &yamlConverter{budget: maxYAMLNodes}
	return c.convert(&doc, 0)
}

// yamlConverter builds a Value tree from a yaml.Node tree. Every node
// visited, aliased ones included, is charged against budget.
type yamlConverter struct {
	budget int
}

func (c *yamlConverter) convert(n *yaml.Node, depth int) (*Value, error) {
	if depth > maxAliasDepth {
		return nil, fmt.Errorf("%w: nesting too deep", ErrInvalidFormat)
	}
	c.budget--
	if c.budget < 0 {
		return nil, fmt.Errorf("%w: more than %d nodes after alias expansion", ErrInvalidFormat, maxYAMLNodes)
	}

	switch n.Kind {
	case 0:
		return Null(), nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return c.convert(n.Content[0], depth+1)
	case yaml.AliasNode:
		return c.convert(n.Alias, depth+1)
	case yaml.SequenceNode:
		items := make([]*Value, 0, len(n.Content))
		for _, child := range n.Content {
			item, err := c.convert(child, depth+1)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return List(items...), nil
	case yaml.MappingNode:
		m := NewMap()
		for i := 0; i+1 < len(n.Content); i += 2 {
			val, err := c.convert(n.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			m.Set(n.Content[i].Value, val)
		}
		return m, nil
	}

	switch n.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return Bool(b), nil
	case "!!int", "!!float":
		return Number(n.Value), nil
	default:
		return String(n.Value), nil
	}
}
