// Package ecs bridges engine lifecycle events into a [Donburi] world.
//
// [NewDonburiSink] returns an [engine.EventSink] that publishes every
// [engine.LifecycleEvent] as a typed Donburi event. Cache it in a scope and
// every node loading under that scope reports to the world:
//
//	sink := ecs.NewDonburiSink(world)
//	g := engine.NewGame(cfg, engine.WithEventSink(sink))
//
// ECS systems subscribe to [LifecycleEventType] and drain the queue with
// ProcessEvents once per tick.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
