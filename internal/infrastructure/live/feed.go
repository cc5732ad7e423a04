// Package live turns store list calls into push-style snapshot streams.
package live

import (
	"context"
	"reflect"
	"sync"
	"time"

	"mecanica_rff/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// ListFunc loads the full current contents of a collection.
type ListFunc[T any] func(ctx context.Context) ([]T, error)

// Feed polls a collection while it has subscribers and pushes a snapshot
// whenever the contents change. Nudge forces an immediate poll.
//
// Each subscriber channel holds at most one snapshot; a slow reader only ever
// sees the latest one.
type Feed[T any] struct {
	collection string
	list       ListFunc[T]
	interval   time.Duration
	nudge      chan struct{}

	mu      sync.Mutex
	subs    map[int]chan []T
	nextID  int
	last    []T
	hasLast bool
	stop    context.CancelFunc
}

var _ interfaces.ISnapshotSource[struct{}] = (*Feed[struct{}])(nil)

func NewFeed[T any](collection string, list ListFunc[T], interval time.Duration) *Feed[T] {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Feed[T]{
		collection: collection,
		list:       list,
		interval:   interval,
		nudge:      make(chan struct{}, 1),
		subs:       make(map[int]chan []T),
	}
}

func (f *Feed[T]) Collection() string {
	return f.collection
}

// Subscribe registers a reader. The returned cancel function must be called
// when the reader goes away; it closes the channel and is safe to call twice.
func (f *Feed[T]) Subscribe() (<-chan []T, func()) {
	ch := make(chan []T, 1)

	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs[id] = ch
	if f.hasLast {
		ch <- f.last
	}
	if f.stop == nil {
		ctx, stop := context.WithCancel(context.Background())
		f.stop = stop
		go f.run(ctx)
		log.Debug().Str("collection", f.collection).Msg("[live] feed started")
	}
	f.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			delete(f.subs, id)
			close(ch)
			if len(f.subs) == 0 && f.stop != nil {
				f.stop()
				f.stop = nil
				f.last = nil
				f.hasLast = false
				log.Debug().Str("collection", f.collection).Msg("[live] feed stopped")
			}
		})
	}
	return ch, cancel
}

// Nudge asks the running poller, if any, to refresh now.
func (f *Feed[T]) Nudge() {
	select {
	case f.nudge <- struct{}{}:
	default:
	}
}

func (f *Feed[T]) run(ctx context.Context) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	f.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			f.poll(ctx)
		case <-f.nudge:
			f.poll(ctx)
		}
	}
}

func (f *Feed[T]) poll(ctx context.Context) {
	items, err := f.list(ctx)
	if err != nil {
		if ctx.Err() == nil {
			log.Warn().Str("collection", f.collection).Err(err).Msg("[live] list failed")
		}
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if ctx.Err() != nil {
		return
	}
	if f.hasLast && reflect.DeepEqual(f.last, items) {
		return
	}
	f.last = items
	f.hasLast = true
	for _, ch := range f.subs {
		offer(ch, items)
	}
}

// offer replaces whatever snapshot is still waiting in ch.
func offer[T any](ch chan []T, items []T) {
	select {
	case ch <- items:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- items:
	default:
	}
}
