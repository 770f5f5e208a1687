package canopy

import (
	"context"
	"log/slog"
	"time"

	"github.com/canopyhq/canopy/pkg/content"
)

// Traversal executes depth-first, pre-order walks over a content tree using
// the policy frozen at Build time. A Traversal is reusable: each Traverse
// call starts a fresh walk with reset counters.
//
// The per-walk counters make overlapping concurrent Traverse calls on one
// instance unsafe. Build a Traversal per goroutine, or serialize calls.
type Traversal struct {
	accept   Predicate
	recurse  Predicate
	callback Callback
	deny     Callback
	maxDepth int // -1 = unlimited
	maxNodes int // 0 = unlimited
	hooks    Hooks
	logger   *slog.Logger

	// per-walk state
	level    int
	numNodes int
	broken   bool
}

// Break requests cooperative termination of the walk in progress. The step
// currently executing completes; no node scheduled after it is visited.
// Calling Break when no walk is running is a no-op: the next Traverse call
// resets the flag.
func (t *Traversal) Break() {
	t.broken = true
}

// Traverse walks the tree rooted at root in depth-first pre-order, invoking
// the accept callback on accepted nodes and the deny callback (if any) on
// rejected ones. The data value is passed to every callback unchanged.
//
// Errors from callbacks and predicates propagate unwrapped; errors from
// child fetches and context cancellation abort the walk likewise. A walk
// ended by Break returns nil.
func (t *Traversal) Traverse(ctx context.Context, root content.Node, data any) error {
	t.level = 0
	t.numNodes = 0
	t.broken = false

	start := time.Now()
	if t.hooks.OnWalkStart != nil {
		t.hooks.OnWalkStart(ctx, &WalkEvent{RootPath: rootPath(root)})
	}

	err := t.visit(ctx, root, data)

	if t.hooks.OnWalkEnd != nil {
		t.hooks.OnWalkEnd(ctx, &WalkEvent{
			RootPath: rootPath(root),
			Accepted: t.numNodes,
			Broken:   t.broken,
			Duration: time.Since(start),
		})
	}
	return err
}

func (t *Traversal) visit(ctx context.Context, node content.Node, data any) error {
	if t.broken {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if t.maxNodes > 0 && t.numNodes >= t.maxNodes {
		return nil
	}
	if !content.IsNode(node) {
		t.logger.Debug("skipping non-node value")
		return nil
	}

	accepted, err := t.accept(node)
	if err != nil {
		return err
	}
	if accepted {
		if err := t.callback(ctx, node, data); err != nil {
			return err
		}
		t.numNodes++
		if t.hooks.OnAccept != nil {
			t.hooks.OnAccept(ctx, t.nodeEvent(node))
		}
	} else if t.deny != nil {
		if err := t.deny(ctx, node, data); err != nil {
			return err
		}
		if t.hooks.OnDeny != nil {
			t.hooks.OnDeny(ctx, t.nodeEvent(node))
		}
	}

	descend, err := t.recurse(node)
	if err != nil {
		return err
	}
	if !descend {
		return nil
	}

	if t.broken {
		return nil
	}

	t.level++
	defer func() { t.level-- }()

	if t.maxDepth >= 0 && t.level > t.maxDepth {
		return nil
	}
	if t.hooks.OnDescend != nil {
		t.hooks.OnDescend(ctx, t.nodeEvent(node))
	}

	children, err := node.Children(ctx)
	if err != nil {
		return err
	}
	for children.HasNext() {
		// Re-check limits before pulling the next child: lazy cursors may
		// fetch on Next, and an exhausted walk must not pay for it.
		if t.broken {
			return nil
		}
		if t.maxNodes > 0 && t.numNodes >= t.maxNodes {
			return nil
		}
		child, err := children.Next(ctx)
		if err != nil {
			return err
		}
		if err := t.visit(ctx, child, data); err != nil {
			return err
		}
	}
	return nil
}

func (t *Traversal) nodeEvent(node content.Node) *NodeEvent {
	return &NodeEvent{
		Path:        node.Path(),
		PrimaryType: node.PrimaryType(),
		Level:       t.level,
	}
}

func rootPath(root content.Node) string {
	if !content.IsNode(root) {
		return ""
	}
	return root.Path()
}
