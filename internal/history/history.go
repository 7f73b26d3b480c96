// Package history keeps the clipboard history, newest item first, and
// persists it as JSON.
package history

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// NoSelection is the selected index of a store without a selection.
const NoSelection = -1

var ErrOutOfRange = errors.New("history: index out of range")

type state struct {
	Items     []string  `json:"items"`
	Selected  int       `json:"selected"`
	LastSaved time.Time `json:"last_saved"`
}

type Options struct {
	MaxItems         int
	AutosaveInterval time.Duration // zero disables autosave
	Logger           *zap.Logger
}

type Store struct {
	mu       sync.RWMutex
	items    []string
	selected int
	path     string
	maxItems int
	dirty    bool
	log      *zap.Logger
	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}
}

// Open loads the history at path, creating its directory if needed.
// A missing or unreadable file starts an empty history.
func Open(path string, opts Options) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		selected: NoSelection,
		path:     path,
		maxItems: opts.MaxItems,
		log:      log,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
	s.load()

	if opts.AutosaveInterval > 0 {
		go s.autosaveLoop(opts.AutosaveInterval)
	} else {
		close(s.done)
	}
	return s, nil
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("history unreadable, starting empty", zap.String("path", s.path), zap.Error(err))
		}
		return
	}
	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		s.log.Warn("history corrupt, starting empty", zap.String("path", s.path), zap.Error(err))
		return
	}
	s.items = st.Items
	s.trim()
	s.selected = st.Selected
	if s.selected < NoSelection || s.selected >= len(s.items) {
		s.selected = NoSelection
	}
	s.log.Info("history loaded", zap.Int("items", len(s.items)))
}

// Save persists the history if it changed since the last save.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}

	data, err := json.MarshalIndent(state{
		Items:     s.items,
		Selected:  s.selected,
		LastSaved: time.Now(),
	}, "", "  ")
	if err != nil {
		return err
	}
	if err := writeAtomic(s.path, data); err != nil {
		return err
	}

	s.dirty = false
	s.log.Debug("history saved", zap.Int("items", len(s.items)))
	return nil
}

func writeAtomic(path string, data []byte) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), ".history-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()
	_, err = f.Write(data)
	err = multierr.Append(err, f.Close())
	if err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ForceSave saves even if not dirty
func (s *Store) ForceSave() error {
	s.mu.Lock()
	s.dirty = true
	s.mu.Unlock()
	return s.Save()
}

// Stop stops the autosave loop and saves final state
func (s *Store) Stop() error {
	s.stopOnce.Do(func() { close(s.stopChan) })
	<-s.done
	return s.ForceSave()
}

func (s *Store) autosaveLoop(interval time.Duration) {
	defer close(s.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.Save(); err != nil {
				s.log.Error("history autosave failed", zap.Error(err))
			}
		case <-s.stopChan:
			return
		}
	}
}

// Push adds text as the newest item. Empty text and a repeat of the newest
// item are ignored.
func (s *Store) Push(text string) bool {
	if text == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) > 0 && s.items[0] == text {
		return false
	}
	s.items = append([]string{text}, s.items...)
	if s.selected != NoSelection {
		s.selected++
	}
	s.trim()
	s.dirty = true
	return true
}

// AppendToFirst appends text on a new line to the newest item, or pushes it
// when the history is empty.
func (s *Store) AppendToFirst(text string) {
	if text == "" {
		return
	}
	s.mu.Lock()
	if len(s.items) == 0 {
		s.mu.Unlock()
		s.Push(text)
		return
	}
	defer s.mu.Unlock()
	s.items[0] = s.items[0] + "\n" + text
	s.dirty = true
}

// Set replaces item i. Empty text removes the item instead.
func (s *Store) Set(i int, text string) error {
	if text == "" {
		return s.Remove(i)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.items) {
		return ErrOutOfRange
	}
	s.items[i] = text
	s.dirty = true
	return nil
}

func (s *Store) Remove(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.items) {
		return ErrOutOfRange
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	switch {
	case len(s.items) == 0:
		s.selected = NoSelection
	case s.selected > i || s.selected >= len(s.items):
		s.selected--
	}
	s.dirty = true
	return nil
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.selected = NoSelection
	s.dirty = true
}

// Items returns a copy of the history, newest first.
func (s *Store) Items() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Get(i int) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.items) {
		return "", false
	}
	return s.items[i], true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Selected returns the selected index, or NoSelection.
func (s *Store) Selected() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Select moves the selection by delta with wraparound. Moving back from the
// first item (or from no selection) lands on the last one; moving forward
// from the last item (or from no selection) lands on the first.
func (s *Store) Select(delta int) (int, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.items)
	if n == 0 {
		return NoSelection, "", false
	}
	switch {
	case s.selected == NoSelection && delta < 0:
		s.selected = n - 1
	case s.selected == NoSelection:
		s.selected = 0
	default:
		s.selected = ((s.selected+delta)%n + n) % n
	}
	s.dirty = true
	return s.selected, s.items[s.selected], true
}

// SelectIndex selects item i directly.
func (s *Store) SelectIndex(i int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.items) {
		return "", false
	}
	s.selected = i
	s.dirty = true
	return s.items[i], true
}

func (s *Store) trim() {
	if s.maxItems <= 0 || len(s.items) <= s.maxItems {
		return
	}
	s.items = s.items[:s.maxItems]
	if s.selected >= len(s.items) {
		s.selected = NoSelection
	}
}
