package speech

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	ErrNotRunning = errors.New("VoiceOver is not running (toggle it with Cmd+F5)")
	ErrPermission = errors.New("not allowed to control VoiceOver; grant Accessibility access in System Settings")
	ErrNoPhrase   = errors.New("no new VoiceOver phrase")
)

// Speaker announces text to the user.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// PhraseReader reports what the screen reader said last.
type PhraseReader interface {
	LastPhrase(ctx context.Context) (string, error)
}

// runFunc executes a command and returns its combined output.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRun(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// restartAfter is the number of consecutive failed phrase reads after which
// VoiceOver is restarted.
const restartAfter = 6

// VoiceOver drives the macOS screen reader through AppleScript.
type VoiceOver struct {
	run    runFunc
	log    *zap.Logger
	filter *PhraseFilter

	mu       sync.Mutex
	failures int
}

func NewVoiceOver(repeatThreshold time.Duration, log *zap.Logger) *VoiceOver {
	if log == nil {
		log = zap.NewNop()
	}
	return &VoiceOver{
		run:    execRun,
		log:    log,
		filter: NewPhraseFilter(repeatThreshold),
	}
}

func (v *VoiceOver) Speak(ctx context.Context, text string) error {
	out, err := v.run(ctx, "osascript",
		"-e", "on run argv",
		"-e", `tell application "VoiceOver" to output (item 1 of argv)`,
		"-e", "end run",
		"--", text)
	if err != nil {
		err = classify(out, err)
		v.log.Error("VoiceOver output failed", zap.Error(err))
		return err
	}
	v.log.Debug("VoiceOver output", zap.String("text", preview(text)))
	return nil
}

// LastPhrase returns the phrase VoiceOver spoke most recently. A phrase that
// repeats within the filter threshold yields ErrNoPhrase.
func (v *VoiceOver) LastPhrase(ctx context.Context) (string, error) {
	out, err := v.run(ctx, "osascript", "-e", `tell application "VoiceOver" to content of last phrase`)
	if err != nil {
		err = classify(out, err)
		v.log.Error("VoiceOver read failed", zap.Error(err))
		if v.noteFailure() {
			if rerr := v.Restart(ctx); rerr != nil {
				v.log.Error("VoiceOver restart failed", zap.Error(rerr))
			}
		}
		return "", err
	}
	v.mu.Lock()
	v.failures = 0
	v.mu.Unlock()

	phrase := strings.TrimRight(string(out), "\r\n")
	if phrase == "" || !v.filter.Accept(phrase, time.Now()) {
		return "", ErrNoPhrase
	}
	return phrase, nil
}

func (v *VoiceOver) noteFailure() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.failures++
	if v.failures >= restartAfter {
		v.failures = 0
		return true
	}
	return false
}

// Restart kills VoiceOver; launchd brings it back when it is enabled.
func (v *VoiceOver) Restart(ctx context.Context) error {
	v.log.Warn("restarting VoiceOver")
	_, err := v.run(ctx, "killall", "-9", "VoiceOver")
	return err
}

func classify(out []byte, err error) error {
	msg := strings.ToLower(string(out))
	switch {
	case strings.Contains(msg, "not running") || strings.Contains(msg, "-600"):
		return errors.Join(ErrNotRunning, err)
	case strings.Contains(msg, "permission") || strings.Contains(msg, "not allowed") || strings.Contains(msg, "-1743"):
		return errors.Join(ErrPermission, err)
	}
	if s := strings.TrimSpace(string(out)); s != "" {
		return errors.Join(errors.New(s), err)
	}
	return err
}

func preview(s string) string {
	r := []rune(s)
	if len(r) > 50 {
		return string(r[:50]) + "..."
	}
	return s
}

// PhraseFilter drops a phrase identical to the previous one when it arrives
// within the threshold.
type PhraseFilter struct {
	threshold time.Duration

	mu       sync.Mutex
	last     string
	lastSeen time.Time
}

func NewPhraseFilter(threshold time.Duration) *PhraseFilter {
	return &PhraseFilter{threshold: threshold}
}

func (f *PhraseFilter) Accept(phrase string, now time.Time) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if phrase == f.last && now.Sub(f.lastSeen) < f.threshold {
		return false
	}
	f.last = phrase
	f.lastSeen = now
	return true
}

// Recorder logs instead of speaking and keeps what it was asked to say.
type Recorder struct {
	log *zap.Logger

	mu     sync.Mutex
	spoken []string
	phrase string
}

func NewRecorder(log *zap.Logger) *Recorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recorder{log: log}
}

func (r *Recorder) Speak(_ context.Context, text string) error {
	r.mu.Lock()
	r.spoken = append(r.spoken, text)
	r.mu.Unlock()
	r.log.Info("speak", zap.String("text", text))
	return nil
}

func (r *Recorder) Spoken() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.spoken))
	copy(out, r.spoken)
	return out
}

// Last returns the most recent utterance, or "".
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.spoken) == 0 {
		return ""
	}
	return r.spoken[len(r.spoken)-1]
}

// SetPhrase sets the value returned by the next LastPhrase call.
func (r *Recorder) SetPhrase(p string) {
	r.mu.Lock()
	r.phrase = p
	r.mu.Unlock()
}

func (r *Recorder) LastPhrase(context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.phrase
	r.phrase = ""
	if p == "" {
		return "", ErrNoPhrase
	}
	return p, nil
}
