package engine

import (
	"context"

	"mescore/messaging"
)

func (e *Engine) wireEventHandlers() {
	// New orders are announced on the notification channel
	e.Events.SubscribeTypes(func(evt Event) {
		ev := evt.Payload.(OrderCreatedEvent)
		e.logFn("engine: order %d (%s) created: %d x %s", ev.OrderID, ev.OrderNumber, ev.Quantity, ev.ProductCode)
		e.notifyOrderCreated(ev)
	}, EventOrderCreated)

	e.Events.SubscribeTypes(func(evt Event) {
		ev := evt.Payload.(StationCreatedEvent)
		e.logFn("engine: workstation %d (%s) created at %s", ev.StationID, ev.Name, ev.Location)
	}, EventStationCreated)

	e.Events.SubscribeTypes(func(evt Event) {
		ev := evt.Payload.(RecordChangedEvent)
		e.logFn("engine: %s %d %s", ev.Resource, ev.ID, ev.Action)
	}, EventOrderUpdated, EventOrderDeleted, EventStationUpdated, EventStationDeleted, EventCheckUpdated, EventCheckDeleted)

	e.Events.SubscribeTypes(func(evt Event) {
		ev := evt.Payload.(CheckFailedEvent)
		e.logFn("engine: quality check %d for order %d failed: %s=%g outside [%g, %g]",
			ev.CheckID, ev.OrderID, ev.Parameter, ev.Value, ev.Min, ev.Max)
	}, EventCheckFailed)

	e.Events.SubscribeTypes(func(evt Event) {
		ev := evt.Payload.(NotifyFailedEvent)
		e.logFn("engine: notify order %d via %s: %s", ev.OrderID, ev.Backend, ev.Error)
	}, EventNotifyFailed)
}

// notifyOrderCreated publishes on its own goroutine under a bounded context.
// Failures become EventNotifyFailed and never reach the caller.
func (e *Engine) notifyOrderCreated(ev OrderCreatedEvent) {
	data, err := messaging.NewOrderCreated(ev.OrderID, ev.OrderNumber).Encode()
	if err != nil {
		e.Events.Emit(Event{Type: EventNotifyFailed, Payload: NotifyFailedEvent{
			OrderID: ev.OrderID, Backend: e.notifier.Name(), Error: err.Error(),
		}})
		return
	}

	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		e.logFn("engine: stopped, order %d not announced", ev.OrderID)
		return
	}
	e.inflight.Add(1)
	e.mu.Unlock()

	go func() {
		defer e.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), e.publishTimeout)
		defer cancel()
		if err := e.notifier.Publish(ctx, e.channel, data); err != nil {
			e.Events.Emit(Event{Type: EventNotifyFailed, Payload: NotifyFailedEvent{
				OrderID: ev.OrderID, Backend: e.notifier.Name(), Error: err.Error(),
			}})
		}
	}()
}
