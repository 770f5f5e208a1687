package content

import (
	"context"
	"reflect"
)

// Node is the minimal capability contract a value must satisfy to be
// traversable. The engine never assumes anything about the backing
// representation: a node may be an in-memory tree handle, a flattened
// record fetched over HTTP, or a cached record hydrated from Redis.
type Node interface {
	// Path identifies the node within its repository (e.g. "/products/p1").
	Path() string

	// PrimaryType returns the node's type tag (e.g. "page", "folder").
	PrimaryType() string

	// Children yields the node's direct children as an ordered,
	// single-pass cursor. Implementations backed by remote sources may
	// fetch lazily; ctx governs that I/O.
	Children(ctx context.Context) (Cursor, error)
}

// Cursor is a single-pass iterator over child nodes.
type Cursor interface {
	// HasNext reports whether another child is available.
	HasNext() bool

	// Next returns the next child. Calling Next when HasNext is false
	// returns ErrCursorExhausted.
	Next(ctx context.Context) (Node, error)
}

// IsNode reports whether v is a usable Node. It guards against both nil
// interfaces and typed-nil pointers, so sources that return (nil, nil)
// children are skipped rather than dereferenced.
func IsNode(v any) bool {
	if v == nil {
		return false
	}
	n, ok := v.(Node)
	if !ok {
		return false
	}
	rv := reflect.ValueOf(n)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// IsTypeOf reports whether the node's primary type tag is a member of types.
func IsTypeOf(n Node, types []string) bool {
	if n == nil {
		return false
	}
	tag := n.PrimaryType()
	for _, t := range types {
		if t == tag {
			return true
		}
	}
	return false
}
