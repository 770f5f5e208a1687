// Package memory provides an in-memory content tree: the native tree-handle
// implementation of content.Node. It is the reference adapter used by tests
// and by sources that materialize a whole tree up front.
package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/canopyhq/canopy/pkg/content"
)

// Node is an in-memory content node holding its children directly.
// Child order is the order of construction and is deterministic.
type Node struct {
	path        string
	primaryType string
	title       string
	content     string
	properties  map[string]string
	children    []*Node
}

// New creates a node with the given primary type, path and children.
func New(primaryType, path string, children ...*Node) *Node {
	return &Node{
		path:        path,
		primaryType: primaryType,
		children:    children,
	}
}

// Path implements content.Node.
func (n *Node) Path() string { return n.path }

// PrimaryType implements content.Node.
func (n *Node) PrimaryType() string { return n.primaryType }

// Title returns the node's display title.
func (n *Node) Title() string { return n.title }

// Content returns the node's body (e.g. markdown).
func (n *Node) Content() string { return n.content }

// SetTitle sets the display title and returns the node for chaining.
func (n *Node) SetTitle(title string) *Node {
	n.title = title
	return n
}

// SetContent sets the body and returns the node for chaining.
func (n *Node) SetContent(body string) *Node {
	n.content = body
	return n
}

// SetProperties replaces the node's property map.
func (n *Node) SetProperties(props map[string]string) *Node {
	n.properties = props
	return n
}

// Append adds children after the existing ones.
func (n *Node) Append(children ...*Node) *Node {
	n.children = append(n.children, children...)
	return n
}

// Children implements content.Node. The cursor yields children in
// construction order and never does I/O.
func (n *Node) Children(_ context.Context) (content.Cursor, error) {
	nodes := make([]content.Node, len(n.children))
	for i, c := range n.children {
		nodes[i] = c
	}
	return content.CursorOf(nodes...), nil
}

// Record returns the node's flattened representation.
func (n *Node) Record() content.Record {
	childPaths := make([]string, len(n.children))
	for i, c := range n.children {
		childPaths[i] = c.path
	}
	return content.Record{
		Path:        n.path,
		PrimaryType: n.primaryType,
		Title:       n.title,
		Content:     n.content,
		Properties:  n.properties,
		Children:    childPaths,
	}
}

// Walk applies fn to the node and every descendant, depth-first. It is a
// plumbing helper for sources that index a tree; traversal policy belongs
// to the engine, not here.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// FromRecords assembles a tree from flattened records. The root is the
// record whose path is not referenced as any other record's child. Child
// references to unknown paths are an error.
func FromRecords(records []content.Record) (*Node, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no records given")
	}

	byPath := make(map[string]*Node, len(records))
	for _, rec := range records {
		if rec.Path == "" {
			return nil, fmt.Errorf("record missing path")
		}
		if _, dup := byPath[rec.Path]; dup {
			return nil, fmt.Errorf("duplicate record path: %s", rec.Path)
		}
		byPath[rec.Path] = &Node{
			path:        rec.Path,
			primaryType: rec.PrimaryType,
			title:       rec.Title,
			content:     rec.Content,
			properties:  rec.Properties,
		}
	}

	referenced := make(map[string]bool)
	for _, rec := range records {
		parent := byPath[rec.Path]
		for _, childPath := range rec.Children {
			child, ok := byPath[childPath]
			if !ok {
				return nil, fmt.Errorf("record %s references unknown child %s", rec.Path, childPath)
			}
			parent.children = append(parent.children, child)
			referenced[childPath] = true
		}
	}

	var roots []string
	for path := range byPath {
		if !referenced[path] {
			roots = append(roots, path)
		}
	}
	if len(roots) != 1 {
		sort.Strings(roots)
		return nil, fmt.Errorf("expected exactly one root, found %d: %v", len(roots), roots)
	}
	return byPath[roots[0]], nil
}
