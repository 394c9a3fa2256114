package engine

import (
	"context"

	"mescore/store"
)

func (e *Engine) CreateQualityCheck(ctx context.Context, c *store.QualityCheck) error {
	if err := e.db.CreateQualityCheck(ctx, c); err != nil {
		return err
	}
	e.Events.Emit(Event{Type: EventCheckRecorded, Payload: CheckRecordedEvent{
		CheckID:   c.ID,
		OrderID:   c.OrderID,
		Parameter: c.Parameter,
		Passed:    c.Passed,
	}})
	e.emitIfFailed(c)
	return nil
}

func (e *Engine) ListQualityChecks(ctx context.Context) ([]*store.QualityCheck, error) {
	return e.db.ListQualityChecks(ctx)
}

func (e *Engine) GetQualityCheck(ctx context.Context, id int64) (*store.QualityCheck, error) {
	return e.db.GetQualityCheck(ctx, id)
}

func (e *Engine) UpdateQualityCheck(ctx context.Context, id int64, p store.QualityCheckPatch) (*store.QualityCheck, error) {
	c, err := e.db.UpdateQualityCheck(ctx, id, p)
	if err != nil {
		return nil, err
	}
	e.Events.Emit(Event{Type: EventCheckUpdated, Payload: RecordChangedEvent{Resource: "quality check", ID: id, Action: "updated"}})
	e.emitIfFailed(c)
	return c, nil
}

func (e *Engine) DeleteQualityCheck(ctx context.Context, id int64) error {
	if err := e.db.DeleteQualityCheck(ctx, id); err != nil {
		return err
	}
	e.Events.Emit(Event{Type: EventCheckDeleted, Payload: RecordChangedEvent{Resource: "quality check", ID: id, Action: "deleted"}})
	return nil
}

func (e *Engine) emitIfFailed(c *store.QualityCheck) {
	if c.Passed {
		return
	}
	e.Events.Emit(Event{Type: EventCheckFailed, Payload: CheckFailedEvent{
		CheckID:   c.ID,
		OrderID:   c.OrderID,
		Parameter: c.Parameter,
		Value:     c.Value,
		Min:       c.SpecificationMin,
		Max:       c.SpecificationMax,
	}})
}
