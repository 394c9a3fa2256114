package engine

const (
	EventOrderCreated EventType = iota + 1
	EventOrderUpdated
	EventOrderDeleted
	EventStationCreated
	EventStationUpdated
	EventStationDeleted
	EventCheckRecorded
	EventCheckUpdated
	EventCheckDeleted
	EventCheckFailed
	EventNotifyFailed
)

// --- Event payloads ---

type OrderCreatedEvent struct {
	OrderID     int64
	OrderNumber string
	ProductCode string
	Quantity    int
}

// RecordChangedEvent covers updates and deletes of any resource.
type RecordChangedEvent struct {
	Resource string
	ID       int64
	Action   string
}

type StationCreatedEvent struct {
	StationID int64
	Name      string
	Location  string
}

type CheckRecordedEvent struct {
	CheckID   int64
	OrderID   int64
	Parameter string
	Passed    bool
}

// CheckFailedEvent is emitted whenever a stored check ends up out of
// specification, on create or update.
type CheckFailedEvent struct {
	CheckID   int64
	OrderID   int64
	Parameter string
	Value     float64
	Min       float64
	Max       float64
}

type NotifyFailedEvent struct {
	OrderID int64
	Backend string
	Error   string
}
