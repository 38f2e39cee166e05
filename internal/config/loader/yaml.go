package loader

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLCodec stores a document as a mapping of section mappings.
// Decoding walks yaml.Node so section and option order is preserved.
type YAMLCodec struct{}

// Name returns "yaml".
func (YAMLCodec) Name() string { return "yaml" }

// Decode parses YAML data into a document.
func (YAMLCodec) Decode(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Message: err.Error(), Err: err}
	}

	doc := NewDocument()
	if root.Kind == 0 || len(root.Content) == 0 {
		return doc, nil
	}
	top := root.Content[0]
	if top.Kind == yaml.ScalarNode && top.Tag == "!!null" {
		return doc, nil
	}
	if top.Kind != yaml.MappingNode {
		return nil, yamlError(top, "document root must be a mapping")
	}

	for i := 0; i+1 < len(top.Content); i += 2 {
		name, body := top.Content[i], top.Content[i+1]
		s := doc.AddSection(name.Value)
		if body.Kind == yaml.ScalarNode && body.Tag == "!!null" {
			continue
		}
		if body.Kind != yaml.MappingNode {
			return nil, yamlError(body, fmt.Sprintf("section %q must be a mapping", name.Value))
		}
		for j := 0; j+1 < len(body.Content); j += 2 {
			key, val := body.Content[j], body.Content[j+1]
			value, err := yamlScalar(val)
			if err != nil {
				return nil, yamlError(val, fmt.Sprintf("%s.%s: %v", name.Value, key.Value, err))
			}
			s.Set(key.Value, value)
		}
	}
	return doc, nil
}

// Encode writes sections and options in document order.
func (YAMLCodec) Encode(doc *Document) ([]byte, error) {
	top := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range doc.Sections() {
		body := &yaml.Node{Kind: yaml.MappingNode}
		for _, opt := range s.Options() {
			value, _ := s.Get(opt)
			body.Content = append(body.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: opt},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
			)
		}
		top.Content = append(top.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: s.Name()},
			body,
		)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{top}}); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func yamlScalar(n *yaml.Node) (string, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return n.Value, nil
	case yaml.SequenceNode:
		parts := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			if item.Kind != yaml.ScalarNode {
				return "", fmt.Errorf("sequence items must be scalars")
			}
			parts = append(parts, item.Value)
		}
		return strings.Join(parts, " "), nil
	default:
		return "", fmt.Errorf("value must be a scalar or a sequence of scalars")
	}
}

func yamlError(n *yaml.Node, msg string) *ParseError {
	return &ParseError{Line: n.Line, Message: msg}
}
