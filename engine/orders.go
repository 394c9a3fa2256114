package engine

import (
	"context"

	"mescore/store"
)

// CreateProductionOrder commits the order and then fires the creation event.
// The notification it triggers runs in the background and cannot fail the call.
func (e *Engine) CreateProductionOrder(ctx context.Context, o *store.ProductionOrder) error {
	if err := e.db.CreateProductionOrder(ctx, o); err != nil {
		return err
	}
	e.Events.Emit(Event{Type: EventOrderCreated, Payload: OrderCreatedEvent{
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		ProductCode: o.ProductCode,
		Quantity:    o.Quantity,
	}})
	return nil
}

func (e *Engine) ListProductionOrders(ctx context.Context) ([]*store.ProductionOrder, error) {
	return e.db.ListProductionOrders(ctx)
}

func (e *Engine) GetProductionOrder(ctx context.Context, id int64) (*store.ProductionOrder, error) {
	return e.db.GetProductionOrder(ctx, id)
}

func (e *Engine) UpdateProductionOrder(ctx context.Context, id int64, p store.ProductionOrderPatch) (*store.ProductionOrder, error) {
	o, err := e.db.UpdateProductionOrder(ctx, id, p)
	if err != nil {
		return nil, err
	}
	e.Events.Emit(Event{Type: EventOrderUpdated, Payload: RecordChangedEvent{Resource: "production order", ID: id, Action: "updated"}})
	return o, nil
}

func (e *Engine) DeleteProductionOrder(ctx context.Context, id int64) error {
	if err := e.db.DeleteProductionOrder(ctx, id); err != nil {
		return err
	}
	e.Events.Emit(Event{Type: EventOrderDeleted, Payload: RecordChangedEvent{Resource: "production order", ID: id, Action: "deleted"}})
	return nil
}
