// Lookbook - Personalized Fashion Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lookbook

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/lookbook/internal/logging"
)

// stubService runs until canceled, optionally failing its first starts.
type stubService struct {
	name     string
	failures int32
	starts   atomic.Int32
}

func (s *stubService) Serve(ctx context.Context) error {
	n := s.starts.Add(1)
	if n <= s.failures {
		return errors.New("simulated failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *stubService) String() string { return s.name }

func newTestTree(t *testing.T, cfg TreeConfig) *SupervisorTree {
	t.Helper()
	logger := slog.New(logging.NewSlogHandler(zerolog.Nop()))
	tree, err := NewSupervisorTree(logger, cfg)
	if err != nil {
		t.Fatalf("NewSupervisorTree() error = %v", err)
	}
	return tree
}

func TestNewSupervisorTree_Defaults(t *testing.T) {
	tree := newTestTree(t, TreeConfig{})

	if tree.Root() == nil {
		t.Fatal("root supervisor should not be nil")
	}
	if tree.config != DefaultTreeConfig() {
		t.Errorf("config = %+v, want %+v", tree.config, DefaultTreeConfig())
	}
}

func TestSupervisorTree_StartsBothLayers(t *testing.T) {
	tree := newTestTree(t, TreeConfig{ShutdownTimeout: time.Second})

	data := &stubService{name: "monitor"}
	api := &stubService{name: "http"}
	tree.AddDataService(data)
	tree.AddAPIService(api)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	deadline := time.Now().Add(time.Second)
	for (data.starts.Load() == 0 || api.starts.Load() == 0) && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("tree stopped with %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not stop")
	}

	if data.starts.Load() == 0 || api.starts.Load() == 0 {
		t.Errorf("starts: data=%d api=%d", data.starts.Load(), api.starts.Load())
	}
}

func TestSupervisorTree_RestartsFailingService(t *testing.T) {
	tree := newTestTree(t, TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})

	flaky := &stubService{name: "flaky", failures: 2}
	stable := &stubService{name: "stable"}
	tree.AddDataService(flaky)
	tree.AddAPIService(stable)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	_ = tree.Serve(ctx)

	if flaky.starts.Load() < 3 {
		t.Errorf("flaky starts = %d, want at least 3", flaky.starts.Load())
	}
	if stable.starts.Load() != 1 {
		t.Errorf("stable starts = %d, want 1 (failures must stay in their layer)", stable.starts.Load())
	}
}

func TestSupervisorTree_AwaitReturnsAfterCancel(t *testing.T) {
	tree := newTestTree(t, TreeConfig{ShutdownTimeout: time.Second})
	svc := &stubService{name: "http"}
	tree.AddAPIService(svc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	deadline := time.Now().Add(time.Second)
	for svc.starts.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	done := make(chan error, 1)
	go func() { done <- tree.Await(ctx, errCh) }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Await() = %v, want nil after cancel", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Await() still blocked 3s after cancel")
	}
}

func TestSupervisorTree_AwaitTreeStopsOnItsOwn(t *testing.T) {
	tree := newTestTree(t, TreeConfig{})

	errCh := make(chan error, 1)
	boom := errors.New("tree failed")
	errCh <- boom

	done := make(chan error, 1)
	go func() { done <- tree.Await(context.Background(), errCh) }()

	select {
	case err := <-done:
		if !errors.Is(err, boom) {
			t.Errorf("Await() = %v, want %v", err, boom)
		}
	case <-time.After(time.Second):
		t.Fatal("Await() blocked on a tree that already stopped")
	}
}
