package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

const defaultCleanInterval = time.Minute

// InMemoryClient is the fallback when no redis is configured. Values are kept
// json encoded so callers never share a mutable T.
type InMemoryClient[T any] struct {
	entries   sync.Map
	done      chan struct{}
	closeOnce sync.Once
}

type cachedValue struct {
	Value []byte
	ExpAt time.Time
}

func (cv *cachedValue) expired(now time.Time) bool {
	return !cv.ExpAt.IsZero() && cv.ExpAt.Before(now)
}

func NewInMemoryClient[T any]() *InMemoryClient[T] {
	return newInMemoryClient[T](defaultCleanInterval)
}

func newInMemoryClient[T any](cleanInterval time.Duration) *InMemoryClient[T] {
	m := &InMemoryClient[T]{
		done: make(chan struct{}),
	}

	go m.cleaner(cleanInterval)
	return m
}

var _ Client[struct{}] = (*InMemoryClient[struct{}])(nil)

func (m *InMemoryClient[T]) Get(_ context.Context, key string) (result T, err error) {
	loaded, found := m.entries.Load(key)
	if !found {
		return result, ErrNotExists
	}

	val, ok := loaded.(*cachedValue)
	if !ok {
		return result, ErrInvalidType
	}

	if val.expired(time.Now()) {
		m.entries.Delete(key)
		return result, ErrNotExists
	}

	err = json.Unmarshal(val.Value, &result)
	return result, err
}

// Set with a zero ttl keeps the value until it is deleted.
func (m *InMemoryClient[T]) Set(_ context.Context, key string, object T, ttl time.Duration) error {
	val, err := json.Marshal(object)
	if err != nil {
		return err
	}

	cv := &cachedValue{Value: val}
	if ttl > 0 {
		cv.ExpAt = time.Now().Add(ttl)
	}

	m.entries.Store(key, cv)
	return nil
}

func (m *InMemoryClient[T]) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		m.entries.Delete(key)
	}
	return nil
}

func (m *InMemoryClient[T]) GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (T, error) {
	return getOrSet[T](ctx, m, opts)
}

func (m *InMemoryClient[T]) cleaner(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			m.entries.Range(func(key, value interface{}) bool {
				cv, ok := value.(*cachedValue)
				if !ok || cv.expired(now) {
					m.entries.Delete(key)
				}
				return true
			})
		case <-m.done:
			return
		}
	}
}

// Close stops the cleaner goroutine, it is safe to call more than once.
func (m *InMemoryClient[T]) Close() {
	m.closeOnce.Do(func() { close(m.done) })
}
