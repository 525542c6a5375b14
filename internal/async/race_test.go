package async

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRace_OpWins(t *testing.T) {
	got, ok := Race(context.Background(), time.Second, func(ctx context.Context) (int, error) {
		return 42, nil
	})
	if !ok || got != 42 {
		t.Fatalf("Race() = (%d, %v), want (42, true)", got, ok)
	}
}

func TestRace_OpError(t *testing.T) {
	got, ok := Race(context.Background(), time.Second, func(ctx context.Context) (string, error) {
		return "ignored", errors.New("provider down")
	})
	if ok || got != "" {
		t.Fatalf("Race() = (%q, %v), want zero value and false", got, ok)
	}
}

func TestRace_Timeout(t *testing.T) {
	start := time.Now()
	_, ok := Race(context.Background(), 50*time.Millisecond, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})
	elapsed := time.Since(start)

	if ok {
		t.Fatal("Race() reported a result for an operation that never completes")
	}
	if elapsed > 500*time.Millisecond {
		t.Fatalf("Race() took %v, expected return shortly after the 50ms timeout", elapsed)
	}
}

func TestRace_CancelsLoser(t *testing.T) {
	cancelled := make(chan struct{})
	_, ok := Race(context.Background(), 50*time.Millisecond, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		close(cancelled)
		return 0, ctx.Err()
	})
	if ok {
		t.Fatal("expected timeout outcome")
	}

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("losing operation was never cancelled")
	}
}

func TestRace_ParentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok := Race(ctx, time.Minute, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})
	if ok {
		t.Fatal("expected no result when the parent context is already cancelled")
	}
}
