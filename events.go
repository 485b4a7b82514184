package engine

import "github.com/opentransit/engine/deps"

// LifecycleEventType identifies a load-state change.
type LifecycleEventType uint8

const (
	EventLoaded     LifecycleEventType = iota // node finished its load sequence
	EventUnloaded                             // node was detached from a loaded tree
	EventLoadFailed                           // node's load sequence failed
)

func (t LifecycleEventType) String() string {
	switch t {
	case EventLoaded:
		return "loaded"
	case EventUnloaded:
		return "unloaded"
	case EventLoadFailed:
		return "load_failed"
	default:
		return "unknown"
	}
}

// LifecycleEvent describes a load-state change of one node.
type LifecycleEvent struct {
	Type   LifecycleEventType
	NodeID uint32
	Name   string
	Err    error // set for EventLoadFailed
}

// EventSink receives lifecycle events. A sink cached in a scope receives the
// events of every node loading under that scope.
type EventSink interface {
	EmitEvent(event LifecycleEvent)
}

// emit forwards ev to the EventSink visible from scope, if any.
func emit(scope *deps.Container, ev LifecycleEvent) {
	if sink, ok := deps.Get[EventSink](scope, ""); ok {
		sink.EmitEvent(ev)
	}
}
