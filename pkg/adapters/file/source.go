// Package file loads a content tree from a YAML definition on disk. The
// nested document is decoded into flattened records and materialized as an
// in-memory tree, so a repository can be authored by hand, walked locally,
// or served over HTTP.
package file

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/canopyhq/canopy/pkg/adapters/memory"
	"github.com/canopyhq/canopy/pkg/content"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// nodeSpec mirrors one node of the YAML document. Children are nested
// specs; paths are derived from names during assembly.
type nodeSpec struct {
	Name       string            `mapstructure:"name"`
	Type       string            `mapstructure:"type"`
	Title      string            `mapstructure:"title"`
	Content    string            `mapstructure:"content"`
	Properties map[string]string `mapstructure:"properties"`
	Children   []nodeSpec        `mapstructure:"children"`
}

// Source is a content tree backed by a YAML file, indexed by path.
type Source struct {
	root    *memory.Node
	records map[string]*content.Record
}

// Load reads and assembles the tree defined at path. The document root
// becomes the repository root at "/"; descendant paths are built from the
// name fields ("/products/p1").
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree definition: %w", err)
	}
	return Parse(data)
}

// Parse assembles a tree from raw YAML.
func Parse(data []byte) (*Source, error) {
	// Round-trip through a generic map so the spec decode stays uniform
	// with other loosely typed metadata sources.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse tree definition: %w", err)
	}

	var spec nodeSpec
	if err := mapstructure.Decode(raw, &spec); err != nil {
		return nil, fmt.Errorf("failed to decode tree definition: %w", err)
	}

	root, err := buildNode(spec, "/")
	if err != nil {
		return nil, err
	}

	src := &Source{
		root:    root,
		records: make(map[string]*content.Record),
	}
	root.Walk(func(n *memory.Node) {
		rec := n.Record()
		src.records[rec.Path] = &rec
	})
	return src, nil
}

func buildNode(spec nodeSpec, path string) (*memory.Node, error) {
	if spec.Type == "" {
		return nil, fmt.Errorf("node %s missing type", path)
	}

	node := memory.New(spec.Type, path).
		SetTitle(spec.Title).
		SetContent(spec.Content).
		SetProperties(spec.Properties)

	for _, childSpec := range spec.Children {
		if childSpec.Name == "" {
			return nil, fmt.Errorf("child of %s missing name", path)
		}
		childPath := strings.TrimSuffix(path, "/") + "/" + childSpec.Name
		child, err := buildNode(childSpec, childPath)
		if err != nil {
			return nil, err
		}
		node.Append(child)
	}
	return node, nil
}

// Root returns the tree root as a traversable node.
func (s *Source) Root() content.Node {
	return s.root
}

// Record resolves a flattened record by path, satisfying rest.Source.
func (s *Source) Record(_ context.Context, path string) (*content.Record, error) {
	rec, ok := s.records[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, content.ErrNotFound)
	}
	return rec, nil
}

// Records returns all records, keyed by path. Useful for seeding caches.
func (s *Source) Records() map[string]*content.Record {
	return s.records
}
