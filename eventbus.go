package sekai

import (
	"reflect"
	"slices"
)

// MaxEventTypes defines the maximum number of unique event types that can be
// registered in an EventBus. This value is fixed at 256.
const MaxEventTypes = 256

// Spawned is published by a World after an entity is allocated.
type Spawned struct {
	Handle Handle
	Index  Index
}

// Despawned is published by a World after an entity is freed and its index
// cleared from every attached column. Subsystems that own columns outside
// the world listen for it to drop their own data for Index.
type Despawned struct {
	Handle Handle
	Index  Index
}

// Subscription identifies one handler registered on an EventBus.
type Subscription struct {
	typeID uint8
	seq    uint32
}

type handlerEntry struct {
	fn  any
	seq uint32
}

// EventBus delivers typed events synchronously to subscribed handlers, in
// subscription order. It lets subsystems that own their columns outright
// react to world changes without sharing mutable state.
//
// The zero value is ready to use. An EventBus is not safe for concurrent use.
type EventBus struct {
	eventTypeMap    map[reflect.Type]uint8
	handlers        [MaxEventTypes][]handlerEntry
	nextEventTypeID uint16
	nextSeq         uint32
}

// Subscribe registers handler for events of type T and returns a
// Subscription that can be passed to Unsubscribe.
func Subscribe[T any](bus *EventBus, handler func(T)) Subscription {
	id := bus.getEventTypeID(reflect.TypeFor[T]())
	if cap(bus.handlers[id]) == 0 {
		bus.handlers[id] = make([]handlerEntry, 0, 4)
	}
	bus.nextSeq++
	bus.handlers[id] = append(bus.handlers[id], handlerEntry{fn: handler, seq: bus.nextSeq})
	return Subscription{typeID: id, seq: bus.nextSeq}
}

// Unsubscribe removes the handler registered under sub. It reports whether
// the handler was still registered.
func (bus *EventBus) Unsubscribe(sub Subscription) bool {
	hs := bus.handlers[sub.typeID]
	for i, h := range hs {
		if h.seq == sub.seq {
			// A Publish in progress keeps ranging over the old slice.
			bus.handlers[sub.typeID] = slices.Delete(slices.Clone(hs), i, i+1)
			return true
		}
	}
	return false
}

// Publish delivers event to every handler subscribed to T. Publishing a type
// nobody subscribed to is a no-op and does not allocate.
func Publish[T any](bus *EventBus, event T) {
	id, ok := bus.eventTypeMap[reflect.TypeFor[T]()]
	if !ok {
		return
	}
	for _, h := range bus.handlers[id] {
		h.fn.(func(T))(event)
	}
}

// getEventTypeID retrieves or assigns an ID for the event type.
func (bus *EventBus) getEventTypeID(t reflect.Type) uint8 {
	if bus.eventTypeMap == nil {
		bus.eventTypeMap = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.eventTypeMap[t]; ok {
		return id
	}
	if bus.nextEventTypeID >= MaxEventTypes {
		panic("sekai: too many event types")
	}
	id := uint8(bus.nextEventTypeID)
	bus.nextEventTypeID++
	bus.eventTypeMap[t] = id
	return id
}
