package engine

import (
	"context"

	"mescore/store"
)

func (e *Engine) CreateWorkStation(ctx context.Context, s *store.WorkStation) error {
	if err := e.db.CreateWorkStation(ctx, s); err != nil {
		return err
	}
	e.Events.Emit(Event{Type: EventStationCreated, Payload: StationCreatedEvent{
		StationID: s.ID,
		Name:      s.Name,
		Location:  s.Location,
	}})
	return nil
}

func (e *Engine) ListWorkStations(ctx context.Context) ([]*store.WorkStation, error) {
	return e.db.ListWorkStations(ctx)
}

func (e *Engine) GetWorkStation(ctx context.Context, id int64) (*store.WorkStation, error) {
	return e.db.GetWorkStation(ctx, id)
}

func (e *Engine) UpdateWorkStation(ctx context.Context, id int64, p store.WorkStationPatch) (*store.WorkStation, error) {
	s, err := e.db.UpdateWorkStation(ctx, id, p)
	if err != nil {
		return nil, err
	}
	e.Events.Emit(Event{Type: EventStationUpdated, Payload: RecordChangedEvent{Resource: "workstation", ID: id, Action: "updated"}})
	return s, nil
}

func (e *Engine) DeleteWorkStation(ctx context.Context, id int64) error {
	if err := e.db.DeleteWorkStation(ctx, id); err != nil {
		return err
	}
	e.Events.Emit(Event{Type: EventStationDeleted, Payload: RecordChangedEvent{Resource: "workstation", ID: id, Action: "deleted"}})
	return nil
}
