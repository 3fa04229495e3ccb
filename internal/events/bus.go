// Package events carries change notifications from background watchers to
// the UI layer through a small buffered pub/sub bus.
package events

import (
	"context"
	"sync"
	"time"
)

const (
	// TypeFileChanged fires after a watched document settles following a
	// write burst. Data carries "path".
	TypeFileChanged = "file.changed"
	// TypeConfigChanged fires after the config file settles.
	TypeConfigChanged = "config.changed"
)

type Event struct {
	Type      string
	Timestamp time.Time
	Data      map[string]interface{}
}

type Handler func(Event)

// Bus fans events out to subscribers from a single worker goroutine.
// Publish never blocks; events are dropped if the buffer is full.
type Bus struct {
	subscribers map[string][]Handler
	mu          sync.RWMutex
	buffer      chan Event
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	closed      bool
}

func NewBus(bufferSize int) *Bus {
	ctx, cancel := context.WithCancel(context.Background())

	bus := &Bus{
		subscribers: make(map[string][]Handler),
		buffer:      make(chan Event, bufferSize),
		ctx:         ctx,
		cancel:      cancel,
	}

	bus.startWorker()
	return bus
}

// Publish never blocks and is a no-op once Shutdown has begun. The
// buffer channel is never closed, so a publisher racing shutdown drops
// its event instead of panicking.
func (b *Bus) Publish(event Event) {
	event.Timestamp = time.Now()

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}

	select {
	case b.buffer <- event:
	default:
		// Drop event if buffer full to prevent blocking
	}
}

func (b *Bus) Subscribe(eventType string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Shutdown stops accepting events, lets the worker drain the buffer and
// waits for it to exit. Safe to call more than once.
func (b *Bus) Shutdown() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.mu.Unlock()

	b.cancel()
	b.wg.Wait()
}

func (b *Bus) startWorker() {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()

		for {
			select {
			case event := <-b.buffer:
				b.dispatch(event)
			case <-b.ctx.Done():
				for {
					select {
					case event := <-b.buffer:
						b.dispatch(event)
					default:
						return
					}
				}
			}
		}
	}()
}

func (b *Bus) dispatch(event Event) {
	b.mu.RLock()
	handlers := b.subscribers[event.Type]
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}
