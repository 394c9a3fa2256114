package engine

import (
	"log"
	"sync"
	"time"

	"mescore/messaging"
	"mescore/store"
)

type LogFunc func(format string, args ...any)

type Config struct {
	DB       *store.DB
	Notifier messaging.Notifier
	// Channel is the pub/sub channel or topic for order notifications.
	Channel string
	// PublishTimeout bounds each background publish.
	PublishTimeout time.Duration
	LogFunc        LogFunc
}

type Engine struct {
	db             *store.DB
	notifier       messaging.Notifier
	channel        string
	publishTimeout time.Duration
	Events         *EventBus
	logFn          LogFunc

	mu       sync.Mutex // guards stopped and inflight.Add
	stopped  bool
	inflight sync.WaitGroup
}

func New(c Config) *Engine {
	logFn := c.LogFunc
	if logFn == nil {
		logFn = log.Printf
	}
	notifier := c.Notifier
	if notifier == nil {
		notifier = messaging.NopNotifier{}
	}
	timeout := c.PublishTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	e := &Engine{
		db:             c.DB,
		notifier:       notifier,
		channel:        c.Channel,
		publishTimeout: timeout,
		Events:         NewEventBus(),
		logFn:          logFn,
	}
	e.wireEventHandlers()
	return e
}

// Stop refuses further notifications, then waits for in-flight ones to
// finish or time out. Writes still succeed after Stop.
func (e *Engine) Stop() {
	e.mu.Lock()
	e.stopped = true
	e.mu.Unlock()
	e.inflight.Wait()
	e.logFn("engine: stopped")
}

// Accessors
func (e *Engine) DB() *store.DB                { return e.db }
func (e *Engine) Notifier() messaging.Notifier { return e.notifier }
