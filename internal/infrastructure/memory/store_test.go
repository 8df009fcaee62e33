package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/partytracker/party-service/internal/domain"
	"github.com/partytracker/party-service/internal/infrastructure/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededStore_PreservesOrder(t *testing.T) {
	cat, err := seed.Default(time.UTC)
	require.NoError(t, err)
	s := NewSeededStore(cat)

	events, err := s.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 8)
	for i, e := range events {
		assert.Equal(t, cat.Events[i].ID, e.ID)
	}

	clubs, err := s.ListClubs(context.Background())
	require.NoError(t, err)
	assert.Len(t, clubs, 6)
	assert.Equal(t, "club1", clubs[0].ID)
}

func TestStore_SeedUpsertsInPlace(t *testing.T) {
	s := NewStore()
	s.Seed(seed.Catalog{Events: []domain.Event{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}})
	s.Seed(seed.Catalog{Events: []domain.Event{{ID: "a", Title: "A2"}}})

	events, err := s.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "A2", events[0].Title)
	assert.Equal(t, "b", events[1].ID)
}

func TestStore_GetAndCreate(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.CreateEvent(ctx, domain.Event{ID: "x", Title: "X"}))

	e, err := s.GetEvent(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "X", e.Title)

	err = s.CreateEvent(ctx, domain.Event{ID: "x"})
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.CodeValidation, appErr.Code)

	assert.Error(t, s.CreateEvent(ctx, domain.Event{}))

	_, err = s.GetEvent(ctx, "nope")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.CodeNotFound, appErr.Code)

	_, err = s.GetClub(ctx, "nope")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.CodeNotFound, appErr.Code)
}

func TestStore_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.CreateEvent(ctx, domain.Event{ID: "x", Title: "X"}))

	events, _ := s.ListEvents(ctx)
	events[0].Title = "mutated"

	again, _ := s.ListEvents(ctx)
	assert.Equal(t, "X", again[0].Title)
}

func TestStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewStore().ListEvents(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = s.CreateEvent(ctx, domain.Event{ID: string(rune('a' + i))})
		}(i)
		go func() {
			defer wg.Done()
			_, _ = s.ListEvents(ctx)
		}()
	}
	wg.Wait()

	events, err := s.ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, events, 20)
}
