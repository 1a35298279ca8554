package sekai

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// EventBus test events
type testEvent struct {
	Value int
}

type otherEvent struct {
	Name string
}

// go test -run ^TestEventBusSubscribeAndPublish$ . -count 1
func TestEventBusSubscribeAndPublish(t *testing.T) {
	bus := &EventBus{}
	received := 0
	Subscribe(bus, func(e testEvent) {
		received += e.Value
	})
	Subscribe(bus, func(e testEvent) {
		received += e.Value * 2
	})
	Publish(bus, testEvent{Value: 1})
	if received != 3 {
		t.Errorf("expected received 3, got %d", received)
	}
	Publish(bus, testEvent{Value: 2})
	if received != 3+6 {
		t.Errorf("expected received 9, got %d", received)
	}
}

// go test -run ^TestEventBusMultipleTypes$ . -count 1
func TestEventBusMultipleTypes(t *testing.T) {
	bus := &EventBus{}
	received := 0
	var names []string
	Subscribe(bus, func(e testEvent) {
		received += e.Value
	})
	Subscribe(bus, func(e otherEvent) {
		names = append(names, e.Name)
	})
	Publish(bus, testEvent{Value: 42})
	Publish(bus, otherEvent{Name: "a"})
	assert.Equal(t, 42, received)
	assert.Equal(t, []string{"a"}, names)
}

// go test -run ^TestEventBusNoHandlers$ . -count 1
func TestEventBusNoHandlers(t *testing.T) {
	bus := &EventBus{}
	assert.NotPanics(t, func() { Publish(bus, testEvent{Value: 42}) })
	assert.Zero(t, testing.AllocsPerRun(100, func() { Publish(bus, testEvent{Value: 1}) }))
}

// go test -run ^TestEventBusOrder$ . -count 1
func TestEventBusOrder(t *testing.T) {
	bus := &EventBus{}
	var order []int
	for k := range 5 {
		Subscribe(bus, func(testEvent) { order = append(order, k) })
	}
	Publish(bus, testEvent{})
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

// go test -run ^TestEventBusUnsubscribe$ . -count 1
func TestEventBusUnsubscribe(t *testing.T) {
	bus := &EventBus{}
	var order []string
	Subscribe(bus, func(testEvent) { order = append(order, "a") })
	sub := Subscribe(bus, func(testEvent) { order = append(order, "b") })
	Subscribe(bus, func(testEvent) { order = append(order, "c") })

	assert.True(t, bus.Unsubscribe(sub))
	assert.False(t, bus.Unsubscribe(sub), "second unsubscribe is a no-op")
	Publish(bus, testEvent{})
	assert.Equal(t, []string{"a", "c"}, order)
}

// go test -run ^TestEventBusTooManyTypes$ . -count 1
func TestEventBusTooManyTypes(t *testing.T) {
	bus := &EventBus{}
	bus.nextEventTypeID = MaxEventTypes
	assert.PanicsWithValue(t, "sekai: too many event types", func() {
		Subscribe(bus, func(testEvent) {})
	})
}

func BenchmarkEventBusPublish(b *testing.B) {
	for _, subs := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("%dsubs", subs), func(b *testing.B) {
			bus := &EventBus{}
			sum := 0
			for range subs {
				Subscribe(bus, func(e testEvent) { sum += e.Value })
			}
			b.ReportAllocs()
			for b.Loop() {
				Publish(bus, testEvent{Value: 1})
			}
		})
	}
}

// go test -run ^TestEventBusUnsubscribeDuringPublish$ . -count 1
func TestEventBusUnsubscribeDuringPublish(t *testing.T) {
	bus := &EventBus{}
	var calls []string
	var once Subscription
	once = Subscribe(bus, func(testEvent) {
		calls = append(calls, "a")
		bus.Unsubscribe(once)
	})
	Subscribe(bus, func(testEvent) { calls = append(calls, "b") })
	Subscribe(bus, func(testEvent) { calls = append(calls, "c") })

	Publish(bus, testEvent{})
	assert.Equal(t, []string{"a", "b", "c"}, calls)

	calls = nil
	Publish(bus, testEvent{})
	assert.Equal(t, []string{"b", "c"}, calls)
}
