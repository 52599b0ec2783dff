package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// CategoryEntry is one keyed category.
type CategoryEntry struct {
	Key      string
	Category Category
}

// Categories is the "tasks" mapping. It keeps the JSON key order, which is the display order
// of the task board; layout itself does not depend on it except for unknown-kind fallbacks.
type Categories []CategoryEntry

// Keys returns the category keys in order.
func (cs Categories) Keys() []string {
	keys := make([]string, len(cs))
	for i, e := range cs {
		keys[i] = e.Key
	}
	return keys
}

// Get returns the category stored under key.
func (cs Categories) Get(key string) (Category, bool) {
	for _, e := range cs {
		if e.Key == key {
			return e.Category, true
		}
	}
	return Category{}, false
}

// UnmarshalJSON decodes a JSON object preserving key order. A repeated key keeps its first
// position and its last value, as JavaScript object literals do.
func (cs *Categories) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*cs = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("tasks: expected object, got %v", tok)
	}

	out := Categories{}
	index := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)

		var c Category
		if err := dec.Decode(&c); err != nil {
			return fmt.Errorf("tasks.%s: %w", key, err)
		}

		if i, seen := index[key]; seen {
			out[i].Category = c
			continue
		}
		index[key] = len(out)
		out = append(out, CategoryEntry{Key: key, Category: c})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*cs = out
	return nil
}

// MarshalJSON encodes the categories as an ordered JSON object.
func (cs Categories) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range cs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the categories as an ordered YAML mapping.
func (cs Categories) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range cs {
		var val yaml.Node
		if err := val.Encode(e.Category); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
			&val,
		)
	}
	return node, nil
}

// UnmarshalYAML decodes an ordered YAML mapping, as written by MarshalYAML.
func (cs *Categories) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("tasks: expected mapping at line %d", node.Line)
	}

	out := make(Categories, 0, len(node.Content)/2)
	index := map[string]int{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value

		var c Category
		if err := node.Content[i+1].Decode(&c); err != nil {
			return fmt.Errorf("tasks.%s: %w", key, err)
		}

		if j, seen := index[key]; seen {
			out[j].Category = c
			continue
		}
		index[key] = len(out)
		out = append(out, CategoryEntry{Key: key, Category: c})
	}

	*cs = out
	return nil
}
