package canopy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/canopyhq/canopy/internal/logging"
	"github.com/canopyhq/canopy/pkg/content"
)

// Callback is invoked for each node the walk accepts (or, as a deny
// callback, rejects). The data value is whatever the caller passed to
// Traverse, threaded through unchanged. A non-nil error aborts the walk and
// surfaces unwrapped from Traverse.
type Callback func(ctx context.Context, node content.Node, data any) error

// Predicate decides whether a node is accepted or recursed into. A non-nil
// error aborts the walk like a callback error.
type Predicate func(node content.Node) (bool, error)

// Builder accumulates traversal policy and produces a validated, immutable
// Traversal via Build. Setters return the builder for chaining. The zero
// value is not usable; construct with New.
//
// A Builder is intended for single-threaded configuration. Once built, the
// Traversal holds its own frozen copy of the policy, so reconfiguring the
// builder never affects previously built traversals.
type Builder struct {
	recurseTypes []string
	acceptTypes  []string
	recurseFn    Predicate
	acceptFn     Predicate
	callback     Callback
	denyCallback Callback
	maxDepth     int
	maxDepthSet  bool
	maxNodes     int
	hooks        Hooks
	logger       *slog.Logger
}

// Option configures a Builder at construction time.
type Option func(*Builder)

// WithLogger sets a custom structured logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// New creates a Builder primed with the default recurse and accept type
// lists (containers are descended into, content nodes are accepted).
func New(opts ...Option) *Builder {
	b := &Builder{
		recurseTypes: content.DefaultRecurseTypes(),
		acceptTypes:  content.DefaultAcceptTypes(),
		logger:       logging.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetRecurseTypes replaces the recurse type list. The input is copied, so
// later mutation of the caller's slice does not affect the builder.
func (b *Builder) SetRecurseTypes(types ...string) *Builder {
	b.recurseTypes = append([]string(nil), types...)
	return b
}

// ResetRecurseTypes restores the built-in recurse defaults.
func (b *Builder) ResetRecurseTypes() *Builder {
	b.recurseTypes = content.DefaultRecurseTypes()
	return b
}

// SetAcceptTypes replaces the accept type list. The input is copied.
func (b *Builder) SetAcceptTypes(types ...string) *Builder {
	b.acceptTypes = append([]string(nil), types...)
	return b
}

// ResetAcceptTypes restores the built-in accept defaults.
func (b *Builder) ResetAcceptTypes() *Builder {
	b.acceptTypes = content.DefaultAcceptTypes()
	return b
}

// SetRecursePredicate installs a predicate that overrides the recurse type
// list entirely.
func (b *Builder) SetRecursePredicate(fn Predicate) *Builder {
	b.recurseFn = fn
	return b
}

// ClearRecursePredicate removes the recurse predicate override.
func (b *Builder) ClearRecursePredicate() *Builder {
	b.recurseFn = nil
	return b
}

// SetAcceptPredicate installs a predicate that overrides the accept type
// list entirely.
func (b *Builder) SetAcceptPredicate(fn Predicate) *Builder {
	b.acceptFn = fn
	return b
}

// ClearAcceptPredicate removes the accept predicate override.
func (b *Builder) ClearAcceptPredicate() *Builder {
	b.acceptFn = nil
	return b
}

// SetCallback sets the required per-accepted-node callback.
func (b *Builder) SetCallback(fn Callback) *Builder {
	b.callback = fn
	return b
}

// SetDenyCallback sets the optional per-rejected-node callback.
func (b *Builder) SetDenyCallback(fn Callback) *Builder {
	b.denyCallback = fn
	return b
}

// ClearDenyCallback removes the deny callback.
func (b *Builder) ClearDenyCallback() *Builder {
	b.denyCallback = nil
	return b
}

// SetMaxDepth limits how deep the walk descends below the root. Zero means
// the root itself is evaluated but no children are fetched. Negative values
// are rejected by Build.
func (b *Builder) SetMaxDepth(n int) *Builder {
	b.maxDepth = n
	b.maxDepthSet = true
	return b
}

// ClearMaxDepth restores unlimited depth.
func (b *Builder) ClearMaxDepth() *Builder {
	b.maxDepth = 0
	b.maxDepthSet = false
	return b
}

// SetMaxNodes limits how many nodes may be accepted in a single walk. Zero
// means unlimited. Negative values are rejected by Build.
func (b *Builder) SetMaxNodes(n int) *Builder {
	b.maxNodes = n
	return b
}

// ResetMaxNodes restores the unlimited default.
func (b *Builder) ResetMaxNodes() *Builder {
	b.maxNodes = 0
	return b
}

// SetHooks installs lifecycle hooks on subsequently built traversals.
func (b *Builder) SetHooks(h Hooks) *Builder {
	b.hooks = h
	return b
}

// ClearHooks removes all lifecycle hooks.
func (b *Builder) ClearHooks() *Builder {
	b.hooks = Hooks{}
	return b
}

// ResetAllOptionals restores every optional setting to its default: type
// lists, predicate overrides, deny callback, limits, and hooks. The accept
// callback is left untouched.
func (b *Builder) ResetAllOptionals() *Builder {
	return b.ResetRecurseTypes().
		ResetAcceptTypes().
		ClearRecursePredicate().
		ClearAcceptPredicate().
		ClearDenyCallback().
		ClearMaxDepth().
		ResetMaxNodes().
		ClearHooks()
}

// Build validates the configuration and freezes it into a Traversal.
// The builder itself is left unchanged, on failure as on success, so a
// caller may correct the configuration and retry, or keep building further
// traversals from the same builder.
func (b *Builder) Build() (*Traversal, error) {
	if b.callback == nil {
		return nil, fmt.Errorf("invalid traversal config: %w", ErrMissingCallback)
	}
	if b.acceptFn == nil && len(b.acceptTypes) == 0 {
		return nil, fmt.Errorf("invalid traversal config: %w", ErrNoAcceptRule)
	}
	if b.recurseFn == nil && len(b.recurseTypes) == 0 {
		return nil, fmt.Errorf("invalid traversal config: %w", ErrNoRecurseRule)
	}
	if b.maxDepthSet && b.maxDepth < 0 {
		return nil, fmt.Errorf("invalid traversal config: %w", ErrNegativeMaxDepth)
	}
	if b.maxNodes < 0 {
		return nil, fmt.Errorf("invalid traversal config: %w", ErrNegativeMaxNodes)
	}

	t := &Traversal{
		accept:   b.acceptFn,
		recurse:  b.recurseFn,
		callback: b.callback,
		deny:     b.denyCallback,
		maxNodes: b.maxNodes,
		maxDepth: -1,
		hooks:    b.hooks,
		logger:   b.logger,
	}
	if b.maxDepthSet {
		t.maxDepth = b.maxDepth
	}
	// Synthesize type-list predicates where no override was set. The lists
	// are copied so the traversal is immune to later builder mutation.
	if t.accept == nil {
		t.accept = typePredicate(b.acceptTypes)
	}
	if t.recurse == nil {
		t.recurse = typePredicate(b.recurseTypes)
	}
	return t, nil
}

func typePredicate(types []string) Predicate {
	frozen := append([]string(nil), types...)
	return func(n content.Node) (bool, error) {
		return content.IsTypeOf(n, frozen), nil
	}
}
