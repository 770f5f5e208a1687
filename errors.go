package canopy

import "errors"

// ErrMissingCallback is returned by Build when no accept callback was set.
var ErrMissingCallback = errors.New("callback is required")

// ErrNoAcceptRule is returned by Build when neither an accept predicate nor
// a non-empty accept type list is configured.
var ErrNoAcceptRule = errors.New("accept rule required: set a predicate or a non-empty type list")

// ErrNoRecurseRule is returned by Build when neither a recurse predicate nor
// a non-empty recurse type list is configured.
var ErrNoRecurseRule = errors.New("recurse rule required: set a predicate or a non-empty type list")

// ErrNegativeMaxDepth is returned by Build when a negative depth limit was set.
var ErrNegativeMaxDepth = errors.New("max depth must not be negative")

// ErrNegativeMaxNodes is returned by Build when a negative node limit was set.
var ErrNegativeMaxNodes = errors.New("max nodes must not be negative")
