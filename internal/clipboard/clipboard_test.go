package clipboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeSource struct {
	mu   sync.Mutex
	text string
	err  error
}

func (f *fakeSource) Read(context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.text, f.err
}

func (f *fakeSource) Write(_ context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.text = text
	return nil
}

func (f *fakeSource) set(text string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.text, f.err = text, err
}

func waitChange(t *testing.T, m *Monitor) Change {
	t.Helper()
	select {
	case c := <-m.Changes():
		return c
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for clipboard change")
	}
	return Change{}
}

func expectNoChange(t *testing.T, m *Monitor) {
	t.Helper()
	select {
	case c := <-m.Changes():
		t.Fatalf("unexpected change: %#v", c)
	case <-time.After(80 * time.Millisecond):
	}
}

func TestMonitorReportsChangesOnce(t *testing.T) {
	src := &fakeSource{text: "first"}
	m := NewMonitor(src, 5*time.Millisecond, nil)
	m.Start(context.Background())
	defer m.Stop()

	if c := waitChange(t, m); c.Text != "first" {
		t.Fatalf("change = %q, want %q", c.Text, "first")
	}
	expectNoChange(t, m)

	src.set("second", nil)
	if c := waitChange(t, m); c.Text != "second" {
		t.Fatalf("change = %q, want %q", c.Text, "second")
	}
}

func TestMonitorIgnoresEmptyAndErrors(t *testing.T) {
	src := &fakeSource{}
	m := NewMonitor(src, 5*time.Millisecond, nil)
	m.Start(context.Background())
	defer m.Stop()
	expectNoChange(t, m)

	src.set("", errors.New("boom"))
	expectNoChange(t, m)

	src.set("after error", nil)
	if c := waitChange(t, m); c.Text != "after error" {
		t.Fatalf("change = %q, want %q", c.Text, "after error")
	}
}

func TestMonitorPrime(t *testing.T) {
	src := &fakeSource{text: "already there"}
	m := NewMonitor(src, 5*time.Millisecond, nil)
	m.Prime("already there")
	m.Start(context.Background())
	defer m.Stop()
	expectNoChange(t, m)
}

func TestMonitorStopIsIdempotent(t *testing.T) {
	m := NewMonitor(&fakeSource{}, 5*time.Millisecond, nil)
	m.Stop()
	m.Start(context.Background())
	m.Start(context.Background())
	m.Stop()
	m.Stop()
}
