package canopy

import (
	"context"
	"time"
)

// NodeEvent describes a single node decision during a walk.
type NodeEvent struct {
	Path        string `json:"path"`
	PrimaryType string `json:"primary_type"`
	Level       int    `json:"level"`
}

// WalkEvent describes a completed walk.
type WalkEvent struct {
	RootPath string        `json:"root_path"`
	Accepted int           `json:"accepted"`
	Broken   bool          `json:"broken"`
	Duration time.Duration `json:"duration"`
}

// Hooks defines optional callbacks for traversal observability. All fields
// may be nil. Hooks fire on the same call stack as Traverse, after the
// user callback for the node in question.
type Hooks struct {
	OnAccept    func(context.Context, *NodeEvent)
	OnDeny      func(context.Context, *NodeEvent)
	OnDescend   func(context.Context, *NodeEvent)
	OnWalkStart func(context.Context, *WalkEvent)
	OnWalkEnd   func(context.Context, *WalkEvent)
}
