package repository

import (
	"context"
	"fmt"
	"sync"

	"roombook/infras/otel"
	"roombook/shared/constant"
)

// Store is a process-local, insertion-ordered collection. Every access
// goes through one lock: identifiers are derived from the collection
// length, so assignment must share a critical section with the append.
type Store[T any] struct {
	mu      sync.RWMutex
	entitas string
	otel    otel.Otel
	items   []T
}

func NewStore[T any](entitasName string, otl otel.Otel) *Store[T] {
	return &Store[T]{
		entitas: entitasName,
		otel:    otl,
	}
}

// Insert appends the entity produced by build, which receives the next
// sequential identifier (count + 1). Identifiers are never reused since
// entities are never removed.
func (s *Store[T]) Insert(ctx context.Context, build func(id int) T) T {
	_, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, s.entitas))
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	item := build(len(s.items) + 1)
	s.items = append(s.items, item)

	return item
}

// InsertIf behaves like Insert but first runs guard against a snapshot
// of the current contents, still inside the critical section. When the
// guard rejects, nothing is appended and its error is returned.
func (s *Store[T]) InsertIf(ctx context.Context, guard func(items []T) error, build func(id int) T) (T, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.InsertIf", constant.OtelRepositoryScopeName, s.entitas))
	defer scope.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := guard(s.items); err != nil {
		scope.TraceError(err)

		var zero T

		return zero, err
	}

	item := build(len(s.items) + 1)
	s.items = append(s.items, item)

	return item, nil
}

// Find returns the first entity matching the predicate in insertion order.
func (s *Store[T]) Find(ctx context.Context, match func(item T) bool) (T, bool) {
	_, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Find", constant.OtelRepositoryScopeName, s.entitas))
	defer scope.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if match(item) {
			return item, true
		}
	}

	var zero T

	return zero, false
}

// Filter returns every entity matching the predicate in insertion order.
func (s *Store[T]) Filter(ctx context.Context, match func(item T) bool) []T {
	_, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Filter", constant.OtelRepositoryScopeName, s.entitas))
	defer scope.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]T, 0)
	for _, item := range s.items {
		if match(item) {
			matched = append(matched, item)
		}
	}

	return matched
}

// All returns a copy of the contents in insertion order.
func (s *Store[T]) All(ctx context.Context) []T {
	_, scope := s.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.All", constant.OtelRepositoryScopeName, s.entitas))
	defer scope.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]T, len(s.items))
	copy(items, s.items)

	return items
}

// Exist reports whether any entity matches the predicate.
func (s *Store[T]) Exist(ctx context.Context, match func(item T) bool) bool {
	_, found := s.Find(ctx, match)

	return found
}

// Count returns the number of stored entities.
func (s *Store[T]) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}
