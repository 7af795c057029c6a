// Package shutdown provides graceful shutdown handling.
package shutdown

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestHooksRunInReverseOrder(t *testing.T) {
	h := NewHandler(time.Second)

	var order []string
	h.OnShutdown(func(ctx context.Context) error {
		order = append(order, "first")
		return nil
	})
	h.OnShutdown(func(ctx context.Context) error {
		order = append(order, "second")
		return nil
	})

	h.Trigger()
	if err := h.Wait(); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}

	if len(order) != 2 || order[0] != "second" || order[1] != "first" {
		t.Errorf("hook order = %v, want [second first]", order)
	}

	select {
	case <-h.Done():
	default:
		t.Error("Done() should be closed after Wait returns")
	}
}

func TestWaitReturnsLastHookError(t *testing.T) {
	h := NewHandler(time.Second)

	wantErr := errors.New("close failed")
	h.OnShutdown(func(ctx context.Context) error { return wantErr })
	h.OnShutdown(func(ctx context.Context) error { return nil })

	h.Trigger()
	if err := h.Wait(); !errors.Is(err, wantErr) {
		t.Errorf("Wait() error = %v, want %v", err, wantErr)
	}
}

func TestTriggerIsIdempotent(t *testing.T) {
	h := NewHandler(time.Second)
	h.Trigger()
	h.Trigger() // must not panic

	if err := h.Wait(); err != nil {
		t.Errorf("Wait() error = %v", err)
	}
}

func TestHookContextHasDeadline(t *testing.T) {
	h := NewHandler(100 * time.Millisecond)

	h.OnShutdown(func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); !ok {
			t.Error("hook context should carry a deadline")
		}
		return nil
	})

	h.Trigger()
	if err := h.Wait(); err != nil {
		t.Errorf("Wait() error = %v", err)
	}
}
