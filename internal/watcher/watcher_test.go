package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherEmitsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shapes.txt")
	if err := os.WriteFile(path, []byte("C 1\n"), 0644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	w, err := New(path, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := w.Start(ctx)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	// Give the watch a moment to establish before modifying the file.
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(path, []byte("C 1\nS 2\n"), 0644); err != nil {
		t.Fatalf("modify catalog: %v", err)
	}

	select {
	case evt, ok := <-events:
		if !ok {
			t.Fatal("event channel closed before any event")
		}
		if evt.Path != mustAbs(t, path) {
			t.Errorf("evt.Path = %q, want %q", evt.Path, mustAbs(t, path))
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for watch event")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shapes.txt")
	sibling := filepath.Join(dir, "other.txt")
	if err := os.WriteFile(path, []byte("C 1\n"), 0644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	w, err := New(path, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := w.Start(ctx)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(sibling, []byte("noise\n"), 0644); err != nil {
		t.Fatalf("write sibling: %v", err)
	}

	select {
	case evt := <-events:
		t.Errorf("unexpected event for sibling file: %+v", evt)
	case <-time.After(300 * time.Millisecond):
		// No event: sibling changes are filtered out.
	}
}

func TestWatcherStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shapes.txt")
	if err := os.WriteFile(path, []byte("C 1\n"), 0644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	w, err := New(path, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	events, err := w.Start(ctx)
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	cancel()

	select {
	case _, ok := <-events:
		if ok {
			// A late event may slip through; the channel must still close.
			if _, ok := <-events; ok {
				t.Error("event channel still open after cancel")
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event channel not closed after cancel")
	}
}

func TestEventOpString(t *testing.T) {
	tests := []struct {
		op   EventOp
		want string
	}{
		{Create, "Create"},
		{Write, "Write"},
		{Remove, "Remove"},
		{Rename, "Rename"},
		{EventOp(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("EventOp(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func mustAbs(t *testing.T, path string) string {
	t.Helper()
	abs, err := filepath.Abs(path)
	if err != nil {
		t.Fatalf("abs: %v", err)
	}
	return abs
}
