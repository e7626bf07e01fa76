package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SetValue writes value at the dotted keyPath (for example "api.base_url")
// in the config file, creating intermediate mappings as needed. Comments and
// formatting elsewhere in the file are preserved by editing the yaml.Node
// tree rather than re-marshaling a struct.
func SetValue(configPath, keyPath, value string) error {
	keys := strings.Split(keyPath, ".")
	for _, k := range keys {
		if k == "" {
			return fmt.Errorf("invalid key path %q", keyPath)
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}
	if doc.Kind == 0 {
		doc = yaml.Node{
			Kind:    yaml.DocumentNode,
			Content: []*yaml.Node{{Kind: yaml.MappingNode}},
		}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return fmt.Errorf("config root is not a mapping")
	}

	node := doc.Content[0]
	for i, k := range keys {
		last := i == len(keys)-1
		child := lookup(node, k)
		switch {
		case child == nil && last:
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: k},
				&yaml.Node{Kind: yaml.ScalarNode, Value: value},
			)
		case child == nil:
			child = &yaml.Node{Kind: yaml.MappingNode}
			node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: k}, child)
			node = child
		case last:
			if child.Kind != yaml.ScalarNode {
				return fmt.Errorf("%s is a section, not a value", keyPath)
			}
			// Clear the tag so the new value is re-resolved.
			child.Value = value
			child.Tag = ""
			child.Style = 0
		default:
			if child.Kind != yaml.MappingNode {
				return fmt.Errorf("%s is not a section", strings.Join(keys[:i+1], "."))
			}
			node = child
		}
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	return writeAtomic(configPath, buf.Bytes())
}

// lookup returns the value node for key in mapping m.
func lookup(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i < len(m.Content)-1; i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// writeAtomic writes to a temp file in the same directory, then renames it
// over path.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".monkeyreg.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
