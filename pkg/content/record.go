package content

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Record is the flattened, transport-friendly representation of a node.
// Children holds ordered child paths rather than nested records, so a
// record can be shipped over HTTP or cached in Redis without dragging the
// whole subtree along.
type Record struct {
	Path        string            `json:"path" yaml:"path" mapstructure:"path"`
	PrimaryType string            `json:"type" yaml:"type" mapstructure:"type"`
	Title       string            `json:"title,omitempty" yaml:"title,omitempty" mapstructure:"title"`
	Content     string            `json:"content,omitempty" yaml:"content,omitempty" mapstructure:"content"`
	Properties  map[string]string `json:"properties,omitempty" yaml:"properties,omitempty" mapstructure:"properties"`
	Children    []string          `json:"children,omitempty" yaml:"children,omitempty" mapstructure:"children"`
}

// DecodeRecord converts a loosely typed map (YAML frontmatter, JSON body)
// into a Record.
func DecodeRecord(m map[string]any) (*Record, error) {
	var rec Record
	if err := mapstructure.Decode(m, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode node record: %w", err)
	}
	if rec.Path == "" {
		return nil, fmt.Errorf("node record missing path")
	}
	if rec.PrimaryType == "" {
		return nil, fmt.Errorf("node record %s missing type", rec.Path)
	}
	return &rec, nil
}
