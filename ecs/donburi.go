package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/opentransit/engine"
)

// LifecycleEventType is the Donburi event type carrying node load-state
// changes.
var LifecycleEventType = events.NewEventType[engine.LifecycleEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink publishing to LifecycleEventType in
// world. Events are queued until LifecycleEventType.ProcessEvents runs.
func NewDonburiSink(world donburi.World) engine.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event engine.LifecycleEvent) {
	LifecycleEventType.Publish(s.world, event)
}
