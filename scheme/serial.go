package scheme

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/samber/mo"
	"github.com/tinge-cli/tinge/filesystem"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// YAML renders the scheme in the tinted-theming file layout, palette slots
// in insertion order.
func (s *Scheme) YAML() ([]byte, error) {
	var buffer bytes.Buffer

	encoder := yaml.NewEncoder(&buffer)
	encoder.SetIndent(2)

	if err := encoder.Encode(s); err != nil {
		return nil, fmt.Errorf("encode scheme: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

// JSON renders the scheme as an indented JSON document.
func (s *Scheme) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode scheme: %w", err)
	}

	return data, nil
}

func (s *Scheme) MarshalYAML() (interface{}, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	put := func(key string, value *yaml.Node) {
		root.Content = append(root.Content, scalarNode(key), value)
	}

	put("system", scalarNode(s.System.String()))
	put("name", scalarNode(s.Name))
	put("slug", scalarNode(s.Slug))
	put("author", scalarNode(s.Author))

	if description, ok := s.Description.Get(); ok {
		put("description", scalarNode(description))
	}

	put("variant", scalarNode(s.Variant.String()))
	put("palette", s.Palette.yamlNode())

	return root, nil
}

func (s *Scheme) MarshalJSON() ([]byte, error) {
	var description *string
	if value, ok := s.Description.Get(); ok {
		description = &value
	}

	return json.Marshal(struct {
		System      string   `json:"system"`
		Name        string   `json:"name"`
		Slug        string   `json:"slug"`
		Author      string   `json:"author"`
		Description *string  `json:"description,omitempty"`
		Variant     string   `json:"variant"`
		Palette     *SlotMap `json:"palette"`
	}{
		System:      s.System.String(),
		Name:        s.Name,
		Slug:        s.Slug,
		Author:      s.Author,
		Description: description,
		Variant:     s.Variant.String(),
		Palette:     s.Palette,
	})
}

// Parse reads a scheme document in the tinted-theming layout. Missing
// system and variant fields default to base16 and dark.
func Parse(data []byte) (*Scheme, error) {
	var raw struct {
		System      string   `yaml:"system"`
		Name        string   `yaml:"name"`
		Slug        string   `yaml:"slug"`
		Author      string   `yaml:"author"`
		Description string   `yaml:"description"`
		Variant     string   `yaml:"variant"`
		Palette     *SlotMap `yaml:"palette"`
	}

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode scheme: %w", err)
	}

	scheme := &Scheme{
		Name:    raw.Name,
		Slug:    raw.Slug,
		Author:  raw.Author,
		Palette: raw.Palette,
	}
	if scheme.Palette == nil {
		scheme.Palette = NewSlotMap()
	}

	if raw.Description != "" {
		scheme.Description = mo.Some(raw.Description)
	}

	if raw.System != "" {
		system, err := ParseSystem(raw.System)
		if err != nil {
			return nil, err
		}
		scheme.System = system
	}

	if raw.Variant != "" {
		variant, err := ParseVariant(raw.Variant)
		if err != nil {
			return nil, err
		}
		scheme.Variant = variant
	}

	return scheme, nil
}

// Load reads and parses the scheme file at path.
func Load(path string) (*Scheme, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scheme: %w", err)
	}

	return Parse(data)
}

func (m *SlotMap) yamlNode() *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		node.Content = append(
			node.Content,
			scalarNode(pair.Key),
			quotedNode("#"+pair.Value),
		)
	}

	return node
}

func (m *SlotMap) MarshalYAML() (interface{}, error) {
	return m.yamlNode(), nil
}

func (m *SlotMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("palette: expected a mapping, got %s", nodeKind(node.Kind))
	}

	if m.entries == nil {
		m.entries = orderedmap.New[string, string]()
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		if err := m.Put(node.Content[i].Value, node.Content[i+1].Value); err != nil {
			return err
		}
	}

	return nil
}

func (m *SlotMap) MarshalJSON() ([]byte, error) {
	prefixed := orderedmap.New[string, string]()
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		prefixed.Set(pair.Key, "#"+pair.Value)
	}

	return json.Marshal(prefixed)
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: value}
}

func quotedNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: value}
}

func nodeKind(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "mapping"
	}
}
