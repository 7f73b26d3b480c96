package history

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func openTemp(t *testing.T, opts Options) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state", "history.json")
	s, err := Open(path, opts)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	return s, path
}

func TestPushNewestFirstAndDedup(t *testing.T) {
	s, _ := openTemp(t, Options{})
	if !s.Push("one") {
		t.Fatalf("Push(one) = false")
	}
	s.Push("two")
	if s.Push("two") {
		t.Fatalf("Push(two) twice = true, want false")
	}
	if s.Push("") {
		t.Fatalf("Push(empty) = true, want false")
	}
	s.Push("one")
	want := []string{"one", "two", "one"}
	if got := s.Items(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Items = %q, want %q", got, want)
	}
}

func TestMaxItems(t *testing.T) {
	s, _ := openTemp(t, Options{MaxItems: 2})
	s.Push("a")
	s.Push("b")
	s.Push("c")
	want := []string{"c", "b"}
	if got := s.Items(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Items = %q, want %q", got, want)
	}
}

func TestSelectWraps(t *testing.T) {
	s, _ := openTemp(t, Options{})
	if _, _, ok := s.Select(1); ok {
		t.Fatalf("Select on empty ok = true")
	}
	s.Push("c")
	s.Push("b")
	s.Push("a")

	idx, text, ok := s.Select(-1)
	if !ok || idx != 2 || text != "c" {
		t.Fatalf("Select(-1) from none = %d %q %v, want 2 c true", idx, text, ok)
	}
	idx, _, _ = s.Select(1)
	if idx != 0 {
		t.Fatalf("Select(1) from last = %d, want 0", idx)
	}
	idx, _, _ = s.Select(-1)
	if idx != 2 {
		t.Fatalf("Select(-1) from first = %d, want 2", idx)
	}
	idx, text, _ = s.Select(-1)
	if idx != 1 || text != "b" {
		t.Fatalf("Select(-1) = %d %q, want 1 b", idx, text)
	}
}

func TestSelectFromNoneForward(t *testing.T) {
	s, _ := openTemp(t, Options{})
	s.Push("b")
	s.Push("a")
	idx, text, _ := s.Select(1)
	if idx != 0 || text != "a" {
		t.Fatalf("Select(1) from none = %d %q, want 0 a", idx, text)
	}
}

func TestPushKeepsSelectedItem(t *testing.T) {
	s, _ := openTemp(t, Options{})
	s.Push("b")
	s.Push("a")
	s.Select(1)
	s.Push("new")
	if got := s.Selected(); got != 1 {
		t.Fatalf("Selected = %d, want 1", got)
	}
}

func TestSelectIndex(t *testing.T) {
	s, _ := openTemp(t, Options{})
	s.Push("b")
	s.Push("a")
	if got, ok := s.SelectIndex(1); !ok || got != "b" {
		t.Fatalf("SelectIndex(1) = %q, %v", got, ok)
	}
	if _, ok := s.SelectIndex(5); ok {
		t.Fatalf("SelectIndex(5) ok = true")
	}
	if got := s.Selected(); got != 1 {
		t.Fatalf("Selected = %d, want 1", got)
	}
}

func TestAppendToFirst(t *testing.T) {
	s, _ := openTemp(t, Options{})
	s.AppendToFirst("first")
	s.AppendToFirst("second")
	if got, _ := s.Get(0); got != "first\nsecond" {
		t.Fatalf("Get(0) = %q, want %q", got, "first\nsecond")
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
}

func TestSetAndRemove(t *testing.T) {
	s, _ := openTemp(t, Options{})
	s.Push("c")
	s.Push("b")
	s.Push("a")
	s.Select(1)
	s.Select(1)
	s.Select(1) // selected = 2

	if err := s.Set(0, "A"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := s.Set(9, "x"); err != ErrOutOfRange {
		t.Fatalf("Set(9) error = %v, want ErrOutOfRange", err)
	}
	if err := s.Remove(2); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	if got := s.Selected(); got != 1 {
		t.Fatalf("Selected after removing last = %d, want 1", got)
	}
	if err := s.Set(1, ""); err != nil {
		t.Fatalf("Set empty error: %v", err)
	}
	want := []string{"A"}
	if got := s.Items(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Items = %q, want %q", got, want)
	}
	s.Clear()
	if s.Len() != 0 || s.Selected() != NoSelection {
		t.Fatalf("after Clear Len=%d Selected=%d", s.Len(), s.Selected())
	}
}

func TestPersistRoundTrip(t *testing.T) {
	s, path := openTemp(t, Options{})
	s.Push("older")
	s.Push("newer\nwith line")
	s.Select(1)
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop error: %v", err)
	}

	r, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	want := []string{"newer\nwith line", "older"}
	if got := r.Items(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Items = %q, want %q", got, want)
	}
	if r.Selected() != 0 {
		t.Fatalf("Selected = %d, want 0", r.Selected())
	}
}

func TestCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	s, err := Open(path, Options{})
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("Len = %d, want 0", s.Len())
	}
}

func TestSaveSkipsWhenClean(t *testing.T) {
	s, path := openTemp(t, Options{})
	if err := s.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("history written without changes")
	}
}

func TestAutosave(t *testing.T) {
	s, path := openTemp(t, Options{AutosaveInterval: 10 * time.Millisecond})
	defer s.Stop()
	s.Push("saved by ticker")

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(path); err == nil {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("autosave did not write %s", path)
}
