package engine

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"mescore/config"
	"mescore/messaging"
	"mescore/store"
)

func testDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.Open(&config.DatabaseConfig{
		Driver: "sqlite",
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "engine.db")},
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// recordingNotifier captures every publish. When block is set, Publish waits
// for the context to expire and returns its error.
type recordingNotifier struct {
	block bool
	err   error
	got   chan published
}

type published struct {
	channel string
	payload []byte
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{got: make(chan published, 8)}
}

func (n *recordingNotifier) Name() string { return "recording" }
func (n *recordingNotifier) Close() error { return nil }

func (n *recordingNotifier) Publish(ctx context.Context, channel string, payload []byte) error {
	if n.block {
		<-ctx.Done()
		n.got <- published{channel, payload}
		return ctx.Err()
	}
	n.got <- published{channel, payload}
	return n.err
}

// logRecorder collects engine log lines.
type logRecorder struct {
	mu    sync.Mutex
	lines []string
}

func (l *logRecorder) logf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func (l *logRecorder) contains(sub string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}

func newOrder(n string) *store.ProductionOrder {
	return &store.ProductionOrder{
		OrderNumber: n,
		ProductCode: "WIDGET",
		Quantity:    3,
		DueDate:     time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateOrderPublishesNotification(t *testing.T) {
	n := newRecordingNotifier()
	e := New(Config{DB: testDB(t), Notifier: n, Channel: "production_updates", LogFunc: (&logRecorder{}).logf})

	o := newOrder("PO-1")
	if err := e.CreateProductionOrder(context.Background(), o); err != nil {
		t.Fatalf("create: %v", err)
	}

	select {
	case p := <-n.got:
		if p.channel != "production_updates" {
			t.Errorf("channel = %q, want production_updates", p.channel)
		}
		env, err := messaging.Decode(p.payload)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if env.OrderID != o.ID || env.OrderNumber != "PO-1" {
			t.Errorf("envelope = %+v, want order %d", env, o.ID)
		}
		if env.Message != fmt.Sprintf("New order created: %d", o.ID) {
			t.Errorf("Message = %q", env.Message)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no notification published")
	}
	e.Stop()
}

func TestCreateOrderSucceedsWhenNotifyFails(t *testing.T) {
	logs := &logRecorder{}
	n := newRecordingNotifier()
	n.err = errors.New("connection refused")
	e := New(Config{DB: testDB(t), Notifier: n, Channel: "c", LogFunc: logs.logf})

	o := newOrder("PO-2")
	if err := e.CreateProductionOrder(context.Background(), o); err != nil {
		t.Fatalf("create should succeed despite notifier error: %v", err)
	}
	<-n.got
	e.Stop()

	if _, err := e.GetProductionOrder(context.Background(), o.ID); err != nil {
		t.Errorf("order should be persisted: %v", err)
	}
	if !logs.contains("connection refused") {
		t.Errorf("notify failure should be logged, got %v", logs.lines)
	}
}

func TestCreateOrderDoesNotWaitForNotifier(t *testing.T) {
	n := newRecordingNotifier()
	n.block = true
	e := New(Config{DB: testDB(t), Notifier: n, Channel: "c", PublishTimeout: 500 * time.Millisecond, LogFunc: (&logRecorder{}).logf})

	start := time.Now()
	if err := e.CreateProductionOrder(context.Background(), newOrder("PO-3")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if elapsed := time.Since(start); elapsed >= 500*time.Millisecond {
		t.Errorf("create took %v, should not wait on the publish", elapsed)
	}

	select {
	case <-n.got:
	case <-time.After(2 * time.Second):
		t.Fatal("publish was not bounded by the timeout")
	}
	e.Stop()
}

func TestNilNotifierIsNop(t *testing.T) {
	e := New(Config{DB: testDB(t), LogFunc: (&logRecorder{}).logf})
	if e.Notifier().Name() != "none" {
		t.Errorf("Notifier = %q, want none", e.Notifier().Name())
	}
	if err := e.CreateProductionOrder(context.Background(), newOrder("PO-4")); err != nil {
		t.Fatalf("create: %v", err)
	}
	e.Stop()
}

func TestFailedCreateEmitsNothing(t *testing.T) {
	n := newRecordingNotifier()
	e := New(Config{DB: testDB(t), Notifier: n, Channel: "c", LogFunc: (&logRecorder{}).logf})
	ctx := context.Background()

	if err := e.CreateProductionOrder(ctx, newOrder("PO-5")); err != nil {
		t.Fatalf("create: %v", err)
	}
	<-n.got

	err := e.CreateProductionOrder(ctx, newOrder("PO-5"))
	if !errors.Is(err, store.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	e.Stop()
	select {
	case p := <-n.got:
		t.Errorf("unexpected publish after failed create: %s", p.payload)
	default:
	}
}

func TestQualityCheckFailureIsLogged(t *testing.T) {
	logs := &logRecorder{}
	e := New(Config{DB: testDB(t), LogFunc: logs.logf})
	ctx := context.Background()

	c := &store.QualityCheck{OrderID: 1, Parameter: "diameter", Value: 15, SpecificationMin: 0, SpecificationMax: 10}
	if err := e.CreateQualityCheck(ctx, c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if !logs.contains("quality check 1 for order 1 failed: diameter=15 outside [0, 10]") {
		t.Errorf("missing failure log, got %v", logs.lines)
	}
}

func TestCreateAfterStopSkipsNotification(t *testing.T) {
	logs := &logRecorder{}
	n := newRecordingNotifier()
	e := New(Config{DB: testDB(t), Notifier: n, Channel: "c", LogFunc: logs.logf})
	e.Stop()

	o := newOrder("PO-6")
	if err := e.CreateProductionOrder(context.Background(), o); err != nil {
		t.Fatalf("create after stop: %v", err)
	}
	e.Stop()

	select {
	case p := <-n.got:
		t.Errorf("unexpected publish after stop: %s", p.payload)
	default:
	}
	if !logs.contains(fmt.Sprintf("order %d not announced", o.ID)) {
		t.Errorf("skipped notification should be logged, got %v", logs.lines)
	}
}

func TestStopWaitsForInflightPublish(t *testing.T) {
	n := newRecordingNotifier()
	n.block = true
	e := New(Config{DB: testDB(t), Notifier: n, Channel: "c", PublishTimeout: 200 * time.Millisecond, LogFunc: (&logRecorder{}).logf})

	if err := e.CreateProductionOrder(context.Background(), newOrder("PO-7")); err != nil {
		t.Fatalf("create: %v", err)
	}
	e.Stop()

	select {
	case <-n.got:
	default:
		t.Error("Stop returned before the in-flight publish finished")
	}
}

func TestEventBusFilters(t *testing.T) {
	eb := NewEventBus()
	var order []string
	eb.SubscribeTypes(func(Event) { order = append(order, "orders") }, EventOrderCreated, EventOrderDeleted)
	eb.SubscribeTypes(func(evt Event) {
		order = append(order, "stations")
		if evt.Timestamp.IsZero() {
			t.Error("Emit should stamp the event")
		}
	}, EventStationCreated)

	eb.Emit(Event{Type: EventOrderCreated})
	eb.Emit(Event{Type: EventStationCreated})
	eb.Emit(Event{Type: EventOrderDeleted})
	eb.Emit(Event{Type: EventCheckDeleted})

	want := []string{"orders", "stations", "orders"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Errorf("delivered %v, want %v", order, want)
	}
}
