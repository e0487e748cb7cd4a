package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"roombook/infras/otel"
	"roombook/shared/repository"
)

type entry struct {
	ID   int
	Name string
}

func newStore() *repository.Store[entry] {
	return repository.NewStore[entry]("entry", otel.NewNoop())
}

func TestStore_Insert(t *testing.T) {
	ctx := context.Background()
	store := newStore()

	first := store.Insert(ctx, func(id int) entry {
		return entry{ID: id, Name: "first"}
	})
	assert.Equal(t, 1, first.ID)

	second := store.Insert(ctx, func(id int) entry {
		return entry{ID: id, Name: "second"}
	})
	assert.Equal(t, 2, second.ID)

	assert.Equal(t, 2, store.Count(ctx))
}

func TestStore_InsertIf(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	rejection := errors.New("duplicate name")

	guard := func(name string) func(items []entry) error {
		return func(items []entry) error {
			for _, item := range items {
				if item.Name == name {
					return rejection
				}
			}

			return nil
		}
	}

	inserted, err := store.InsertIf(ctx, guard("first"), func(id int) entry {
		return entry{ID: id, Name: "first"}
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, inserted.ID)

	_, err = store.InsertIf(ctx, guard("first"), func(id int) entry {
		return entry{ID: id, Name: "first"}
	})
	assert.ErrorIs(t, err, rejection)
	assert.Equal(t, 1, store.Count(ctx))
}

func TestStore_FindAndFilter(t *testing.T) {
	ctx := context.Background()
	store := newStore()

	for _, name := range []string{"alpha", "beta", "alpha"} {
		store.Insert(ctx, func(id int) entry {
			return entry{ID: id, Name: name}
		})
	}

	found, ok := store.Find(ctx, func(item entry) bool { return item.Name == "alpha" })
	assert.True(t, ok)
	assert.Equal(t, 1, found.ID)

	_, ok = store.Find(ctx, func(item entry) bool { return item.Name == "gamma" })
	assert.False(t, ok)

	matched := store.Filter(ctx, func(item entry) bool { return item.Name == "alpha" })
	assert.Len(t, matched, 2)
	assert.Equal(t, 1, matched[0].ID)
	assert.Equal(t, 3, matched[1].ID)

	assert.True(t, store.Exist(ctx, func(item entry) bool { return item.Name == "beta" }))
	assert.False(t, store.Exist(ctx, func(item entry) bool { return item.Name == "gamma" }))
}

// All hands out a copy; mutating it must not leak back into the store.
func TestStore_AllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := newStore()

	store.Insert(ctx, func(id int) entry {
		return entry{ID: id, Name: "original"}
	})

	items := store.All(ctx)
	items[0].Name = "mutated"

	fresh := store.All(ctx)
	assert.Equal(t, "original", fresh[0].Name)
}

// Ids stay dense and unique under concurrent inserts because the id is
// assigned inside the same critical section as the append.
func TestStore_ConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	store := newStore()

	const workers = 50

	var wg sync.WaitGroup
	wg.Add(workers)

	for range workers {
		go func() {
			defer wg.Done()

			store.Insert(ctx, func(id int) entry {
				return entry{ID: id}
			})
		}()
	}

	wg.Wait()

	assert.Equal(t, workers, store.Count(ctx))

	seen := make(map[int]bool, workers)
	for i, item := range store.All(ctx) {
		assert.Equal(t, i+1, item.ID)
		assert.False(t, seen[item.ID])
		seen[item.ID] = true
	}
}
