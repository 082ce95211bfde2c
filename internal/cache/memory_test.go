package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/saulo-duarte/coursegen/internal/cache"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := cache.NewMemoryStore()

	t.Run("Miss", func(t *testing.T) {
		if _, err := s.Get(ctx, "absent"); !errors.Is(err, cache.ErrMiss) {
			t.Errorf("expected ErrMiss, got %v", err)
		}
	})

	t.Run("SetGetDelete", func(t *testing.T) {
		if err := s.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
			t.Fatalf("set: %v", err)
		}
		got, err := s.Get(ctx, "k")
		if err != nil || string(got) != "v" {
			t.Fatalf("got %q, %v", got, err)
		}
		if err := s.Delete(ctx, "k"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := s.Get(ctx, "k"); !errors.Is(err, cache.ErrMiss) {
			t.Errorf("expected ErrMiss after delete, got %v", err)
		}
	})

	t.Run("Expires", func(t *testing.T) {
		if err := s.Set(ctx, "short", []byte("v"), time.Nanosecond); err != nil {
			t.Fatalf("set: %v", err)
		}
		time.Sleep(time.Millisecond)
		if _, err := s.Get(ctx, "short"); !errors.Is(err, cache.ErrMiss) {
			t.Errorf("expected expired entry to miss, got %v", err)
		}
	})
}
