package inmemory

import (
	"context"
	"sync"

	"pressdeck/internal/model"
)

// ChangeBus fans out content-change events by resource name.
type ChangeBus struct {
	mu   sync.RWMutex
	subs map[string]map[chan model.Change]struct{}
	buf  int
}

func New(buf int) *ChangeBus {
	if buf <= 0 {
		buf = 64
	}
	return &ChangeBus{
		subs: make(map[string]map[chan model.Change]struct{}),
		buf:  buf,
	}
}

// Subscribe delivers changes for resource until ctx is done; the
// returned channel is closed on unsubscribe.
func (b *ChangeBus) Subscribe(ctx context.Context, resource string) (<-chan model.Change, error) {
	ch := make(chan model.Change, b.buf)

	b.mu.Lock()
	if b.subs[resource] == nil {
		b.subs[resource] = make(map[chan model.Change]struct{})
	}
	b.subs[resource][ch] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		if set := b.subs[resource]; set != nil {
			if _, ok := set[ch]; ok {
				delete(set, ch)
				if len(set) == 0 {
					delete(b.subs, resource)
				}
			}
		}
		b.mu.Unlock()
		close(ch)
	}()

	return ch, nil
}

// Publish fans a change out to every subscriber of its resource;
// slow subscribers drop events rather than block the writer.
func (b *ChangeBus) Publish(_ context.Context, change model.Change) error {
	b.mu.RLock()
	set := b.subs[change.Resource]
	for ch := range set {
		select {
		case ch <- change:
		default:
		}
	}
	b.mu.RUnlock()
	return nil
}
