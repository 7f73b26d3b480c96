package app

import (
	"testing"

	"go.uber.org/zap"

	"github.com/kobzarvs/clipvox/internal/config"
	"github.com/kobzarvs/clipvox/internal/glyph"
	"github.com/kobzarvs/clipvox/internal/speech"
)

func TestResolveLang(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "en_US.UTF-8")
	if got := resolveLang(""); got != glyph.English {
		t.Fatalf("resolveLang from LANG = %q, want %q", got, glyph.English)
	}
	if got := resolveLang("zh"); got != glyph.Chinese {
		t.Fatalf("resolveLang(zh) = %q, want %q", got, glyph.Chinese)
	}
	t.Setenv("LANG", "")
	if got := resolveLang(""); got != glyph.Chinese {
		t.Fatalf("resolveLang default = %q, want %q", got, glyph.Chinese)
	}
}

func TestNewSpeaker(t *testing.T) {
	sp, err := newSpeaker(config.Speech{Backend: "log"}, nil)
	if err != nil {
		t.Fatalf("newSpeaker(log) error: %v", err)
	}
	if _, ok := sp.(*speech.Recorder); !ok {
		t.Fatalf("newSpeaker(log) = %T, want *speech.Recorder", sp)
	}
	sp, err = newSpeaker(config.Speech{Backend: "voiceover"}, nil)
	if err != nil {
		t.Fatalf("newSpeaker(voiceover) error: %v", err)
	}
	if _, ok := sp.(*speech.VoiceOver); !ok {
		t.Fatalf("newSpeaker(voiceover) = %T, want *speech.VoiceOver", sp)
	}
	if _, err := newSpeaker(config.Speech{Backend: "festival"}, nil); err == nil {
		t.Fatalf("newSpeaker(festival) error = nil")
	}
}

func TestNewTranslatorWithoutModel(t *testing.T) {
	t.Setenv("CLIPVOX_CONFIG_HOME", t.TempDir())
	cfg := config.Default()
	tr := newTranslator(cfg, zap.NewNop())
	if tr.HasModel() {
		t.Fatalf("HasModel = true without a command")
	}
	cfg.Translate.Command = "/bin/cat"
	if !newTranslator(cfg, zap.NewNop()).HasModel() {
		t.Fatalf("HasModel = false with a command")
	}
}
