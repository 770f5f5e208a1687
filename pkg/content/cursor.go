package content

import (
	"context"
	"errors"
)

// ErrCursorExhausted is returned by Next once a cursor has been drained.
var ErrCursorExhausted = errors.New("cursor exhausted")

// ErrNotFound is returned by node sources when a path does not resolve.
var ErrNotFound = errors.New("node not found")

// sliceCursor iterates over an in-memory child slice.
type sliceCursor struct {
	nodes []Node
	pos   int
}

// CursorOf returns a Cursor over the given nodes, in order.
func CursorOf(nodes ...Node) Cursor {
	return &sliceCursor{nodes: nodes}
}

func (c *sliceCursor) HasNext() bool {
	return c.pos < len(c.nodes)
}

func (c *sliceCursor) Next(_ context.Context) (Node, error) {
	if c.pos >= len(c.nodes) {
		return nil, ErrCursorExhausted
	}
	n := c.nodes[c.pos]
	c.pos++
	return n, nil
}
