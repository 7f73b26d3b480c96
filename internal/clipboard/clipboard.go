package clipboard

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var ErrUnavailable = errors.New("clipboard unavailable")

// Source reads and writes the system clipboard.
type Source interface {
	Read(ctx context.Context) (string, error)
	Write(ctx context.Context, text string) error
}

// System talks to the macOS pasteboard through pbpaste and pbcopy.
type System struct{}

func (System) Read(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "pbpaste").Output()
	if err != nil {
		return "", errors.Join(ErrUnavailable, err)
	}
	return string(out), nil
}

func (System) Write(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, "pbcopy")
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}

type Change struct {
	Text string
	At   time.Time
}

// Monitor polls a Source and reports each new non-empty value once.
type Monitor struct {
	src      Source
	interval time.Duration
	log      *zap.Logger
	changes  chan Change

	mu     sync.Mutex
	last   string
	cancel context.CancelFunc
	done   chan struct{}
}

func NewMonitor(src Source, interval time.Duration, log *zap.Logger) *Monitor {
	if log == nil {
		log = zap.NewNop()
	}
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	return &Monitor{
		src:      src,
		interval: interval,
		log:      log,
		changes:  make(chan Change, 16),
	}
}

func (m *Monitor) Changes() <-chan Change {
	return m.changes
}

// Prime sets the value treated as already seen, so content present at
// startup (or written by us) is not reported as a change.
func (m *Monitor) Prime(text string) {
	m.mu.Lock()
	m.last = text
	m.mu.Unlock()
}

func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		m.log.Warn("clipboard monitor already running")
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})
	go m.loop(ctx, m.done)
}

// Stop cancels polling and waits for the loop to exit.
func (m *Monitor) Stop() {
	m.mu.Lock()
	cancel, done := m.cancel, m.done
	m.cancel = nil
	m.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (m *Monitor) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()
	m.log.Info("clipboard monitor started", zap.Duration("interval", m.interval))
	for {
		select {
		case <-ctx.Done():
			m.log.Info("clipboard monitor stopped")
			return
		case <-ticker.C:
			m.poll(ctx)
		}
	}
}

func (m *Monitor) poll(ctx context.Context) {
	text, err := m.src.Read(ctx)
	if err != nil {
		if ctx.Err() == nil {
			m.log.Error("clipboard read failed", zap.Error(err))
		}
		return
	}
	m.mu.Lock()
	if text == "" || text == m.last {
		m.mu.Unlock()
		return
	}
	m.last = text
	m.mu.Unlock()

	select {
	case m.changes <- Change{Text: text, At: time.Now()}:
		m.log.Debug("clipboard changed", zap.Int("len", len(text)))
	default:
		m.log.Warn("clipboard change dropped, consumer is behind")
	}
}
