package querydef

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	k8syaml "sigs.k8s.io/yaml"
)

// Parse decodes a single YAML or JSON definition.
func Parse(data []byte) (*Definition, error) {
	j, err := k8syaml.YAMLToJSONStrict(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	if len(bytes.TrimSpace(j)) == 0 || bytes.Equal(bytes.TrimSpace(j), []byte("null")) {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDefinition)
	}

	var def Definition
	if err := decodeStrict(j, &def); err != nil {
		return nil, err
	}
	return &def, nil
}

// ParseAll decodes every document of a YAML stream separated by "---".
// Empty documents are skipped.
func ParseAll(r io.Reader) ([]*Definition, error) {
	dec := yaml.NewDecoder(r)

	var defs []*Definition
	for i := 0; ; i++ {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: document %d: %v", ErrInvalidDefinition, i, err)
		}
		if len(node.Content) == 0 || node.Content[0].Tag == "!!null" {
			continue
		}

		doc, err := yaml.Marshal(&node)
		if err != nil {
			return nil, fmt.Errorf("%w: document %d: %v", ErrInvalidDefinition, i, err)
		}
		def, err := Parse(doc)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// LoadFile reads every definition in a file.
func LoadFile(path string) ([]*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open definition: %w", err)
	}
	defer f.Close()
	return ParseAll(f)
}
