package app

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/kobzarvs/clipvox/internal/clipboard"
	"github.com/kobzarvs/clipvox/internal/config"
	"github.com/kobzarvs/clipvox/internal/glyph"
	"github.com/kobzarvs/clipvox/internal/history"
	"github.com/kobzarvs/clipvox/internal/logger"
	"github.com/kobzarvs/clipvox/internal/platform/keyboard"
	"github.com/kobzarvs/clipvox/internal/speech"
	"github.com/kobzarvs/clipvox/internal/translate"
	"github.com/kobzarvs/clipvox/internal/ui"
)

// App is the top-level runtime for clipvox.
type App struct {
	debug bool
}

func New(debug bool) *App {
	return &App{debug: debug}
}

func (a *App) Run() (err error) {
	runtime.LockOSThread()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.debug {
		cfg.General.Debug = true
	}
	if err := logger.Init(cfg.General.Debug); err != nil {
		return err
	}
	defer logger.Close()
	log := logger.Named("app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	histPath, err := cfg.HistoryPath()
	if err != nil {
		return err
	}
	hist, err := history.Open(histPath, history.Options{
		MaxItems:         cfg.History.MaxItems,
		AutosaveInterval: cfg.History.AutosaveInterval(),
		Logger:           logger.Named("history"),
	})
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() { err = multierr.Append(err, hist.Stop()) }()

	worker := translate.NewWorker(newTranslator(cfg, log), cfg.Translate.Timeout(), logger.Named("translate"))
	worker.Start(ctx)
	defer worker.Stop()

	speaker, err := newSpeaker(cfg.Speech, logger.Named("speech"))
	if err != nil {
		return err
	}

	src := clipboard.System{}
	var changes <-chan clipboard.Change
	if cfg.Clipboard.IsEnabled() {
		mon := clipboard.NewMonitor(src, cfg.Clipboard.PollInterval(), logger.Named("clipboard"))
		if first, ok := hist.Get(0); ok {
			mon.Prime(first)
		}
		mon.Start(ctx)
		defer mon.Stop()
		changes = mon.Changes()
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	glyphs := glyph.New(resolveLang(cfg.General.Language))
	view := ui.New(ui.Options{
		History:    hist,
		Clipboard:  src,
		Speaker:    speaker,
		Translator: worker,
		Glyphs:     glyphs,
		Keymap:     cfg.Keymap,
		Logger:     logger.Named("ui"),
	})
	log.Info("started",
		zap.String("history", histPath),
		zap.Int("items", hist.Len()),
		zap.String("lang", string(glyphs.Lang())),
		zap.String("speech", cfg.Speech.Backend))

	// Background results reach the UI goroutine as interrupt payloads.
	stopForward := make(chan struct{})
	defer close(stopForward)
	go func() {
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stopForward:
				return
			case c := <-changes:
				_ = s.PostEvent(tcell.NewEventInterrupt(c))
			case r := <-worker.Results():
				_ = s.PostEvent(tcell.NewEventInterrupt(r))
			case <-ticker.C:
				_ = s.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()

	lastLayoutRaw := keyboard.CurrentLayoutRaw()
	view.SetKeyboardLayout(keyboard.CurrentLayout())
	view.Render(s)
	for {
		switch ev := s.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if view.HandleKey(ev) {
				log.Info("quit")
				return nil
			}
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventInterrupt:
			switch d := ev.Data().(type) {
			case clipboard.Change:
				view.HandleClipboard(d)
			case translate.Result:
				view.HandleTranslation(d)
			}
		}
		if raw := keyboard.CurrentLayoutRaw(); raw != lastLayoutRaw {
			lastLayoutRaw = raw
			view.SetKeyboardLayout(keyboard.CurrentLayout())
			log.Debug("input source changed", zap.String("raw", raw), zap.Bool("ime", keyboard.IsIME(raw)))
		}
		view.Render(s)
	}
}

func newTranslator(cfg config.Config, log *zap.Logger) *translate.Translator {
	tlog := logger.Named("translate")
	var dict *translate.Dictionary
	if path, err := cfg.DictionaryPath(); err == nil {
		dict, err = translate.LoadDictionary(path, tlog)
		if err != nil {
			log.Warn("dictionary unavailable", zap.String("path", path), zap.Error(err))
		}
	}
	var model translate.Model
	if cfg.Translate.Command != "" {
		model = translate.CommandModel{Command: cfg.Translate.Command, Args: cfg.Translate.Args}
	}
	return translate.New(dict, model, tlog)
}

func newSpeaker(cfg config.Speech, log *zap.Logger) (speech.Speaker, error) {
	switch cfg.Backend {
	case "", "voiceover":
		return speech.NewVoiceOver(cfg.RepeatThreshold(), log), nil
	case "log":
		return speech.NewRecorder(log), nil
	}
	return nil, fmt.Errorf("unknown speech backend %q", cfg.Backend)
}

// resolveLang prefers the configured language and falls back to the locale.
func resolveLang(configured string) glyph.Lang {
	if configured != "" {
		return glyph.ParseLang(configured)
	}
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			return glyph.ParseLang(v)
		}
	}
	return glyph.Chinese
}
