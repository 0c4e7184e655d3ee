package remap

import (
	"encoding/json/v2"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ParseOps decodes a JSON array of {"src": ..., "dst": ...} objects.
func ParseOps(d []byte) ([]Op, error) {
	var ops []Op
	if err := json.Unmarshal(d, &ops); err != nil {
		return nil, fmt.Errorf("decoding ops: %w", err)
	}
	return ops, nil
}

// ParseOpsYAML decodes a YAML list of src/dst pairs.
func ParseOpsYAML(d []byte) ([]Op, error) {
	var ops []Op
	if err := yaml.Unmarshal(d, &ops); err != nil {
		return nil, fmt.Errorf("decoding ops: %w", err)
	}
	return ops, nil
}
