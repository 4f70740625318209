package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_DeduplicatesConcurrentMisses(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "players:all", loader)
			if err != nil {
				errCh <- err
				return
			}
			if v != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Minute)
	var calls atomic.Int32
	loader := func(context.Context) (int, error) {
		if calls.Add(1) == 1 {
			return 0, errors.New("transient")
		}
		return 42, nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err == nil {
		t.Fatalf("expected first load to fail")
	}
	got, err := store.GetOrLoad(context.Background(), "k", loader)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestStore_Expiry(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Second)
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "k", "v")
	if _, ok := store.Get(context.Background(), "k"); !ok {
		t.Fatalf("expected hit before expiry")
	}

	now = now.Add(2 * time.Second)
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected miss after expiry")
	}
}

func TestBoundedStore_EvictsExpiredBeforeLive(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
	store := NewBoundedStore[int](time.Minute, 2)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	store.Set(ctx, "old", 1)
	now = now.Add(2 * time.Minute)
	store.Set(ctx, "live", 2)
	store.Set(ctx, "new", 3)

	if store.Len() != 2 {
		t.Fatalf("unexpected entry count: %d", store.Len())
	}
	if _, ok := store.Get(ctx, "live"); !ok {
		t.Fatalf("expected live entry to survive eviction")
	}
	if _, ok := store.Get(ctx, "new"); !ok {
		t.Fatalf("expected new entry to be stored")
	}

	store.Set(ctx, "extra", 4)
	if store.Len() != 2 {
		t.Fatalf("bound not enforced: %d", store.Len())
	}
}

func TestStore_GetOrLoad_SharedLoadSurvivesLeaderCancel(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	started := make(chan struct{})
	release := make(chan struct{})
	loader := func(ctx context.Context) (string, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return "principal", nil
	}

	leaderCtx, cancel := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := store.GetOrLoad(leaderCtx, "principal:abc", loader)
		leaderErr <- err
	}()
	<-started

	waiterErr := make(chan error, 1)
	go func() {
		v, err := store.GetOrLoad(context.Background(), "principal:abc", loader)
		if err == nil && v != "principal" {
			err = errUnexpectedValue
		}
		waiterErr <- err
	}()
	time.Sleep(20 * time.Millisecond)

	cancel()
	close(release)

	if err := <-waiterErr; err != nil {
		t.Fatalf("waiter failed after leader cancel: %v", err)
	}
	if err := <-leaderErr; err != nil {
		t.Fatalf("shared load saw leader cancellation: %v", err)
	}
}
