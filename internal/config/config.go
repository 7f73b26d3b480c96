package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

type General struct {
	Language string `toml:"language"` // "zh" or "en"; empty means detect from $LANG
	Debug    bool   `toml:"debug"`
}

type History struct {
	Path            string `toml:"path"`
	MaxItems        int    `toml:"max-items"`
	AutosaveSeconds int    `toml:"autosave-seconds"`
}

type Clipboard struct {
	Enabled        *bool `toml:"enabled"`
	PollIntervalMs int   `toml:"poll-interval-ms"`
}

type Speech struct {
	Backend           string `toml:"backend"` // "voiceover" or "log"
	RepeatThresholdMs int    `toml:"repeat-threshold-ms"`
}

type Translate struct {
	Dictionary     string   `toml:"dictionary"`
	Command        string   `toml:"command"`
	Args           []string `toml:"args"`
	TimeoutSeconds int      `toml:"timeout-seconds"`
}

type Config struct {
	General   General           `toml:"general"`
	History   History           `toml:"history"`
	Clipboard Clipboard         `toml:"clipboard"`
	Speech    Speech            `toml:"speech"`
	Translate Translate         `toml:"translate"`
	Keymap    map[string]string `toml:"keymap"`
}

func Default() Config {
	enabled := true
	return Config{
		General: General{},
		History: History{
			MaxItems:        200,
			AutosaveSeconds: 15,
		},
		Clipboard: Clipboard{
			Enabled:        &enabled,
			PollIntervalMs: 200,
		},
		Speech: Speech{
			Backend:           "voiceover",
			RepeatThresholdMs: 50,
		},
		Translate: Translate{
			TimeoutSeconds: 60,
		},
		Keymap: map[string]string{
			"alt+shift+7": "prev_item",
			"alt+shift+9": "next_item",
			"up":          "prev_item",
			"down":        "next_item",
			"alt+shift+8": "prev_line",
			"alt+shift+k": "next_line",
			"k":           "prev_line",
			"j":           "next_line",
			"alt+shift+u": "prev_char",
			"alt+shift+o": "next_char",
			"h":           "prev_char",
			"l":           "next_char",
			"alt+shift+i": "explain_char",
			"i":           "explain_char",
			"alt+shift+p": "speak_line",
			"p":           "speak_line",
			"alt+shift+m": "summary",
			"?":           "summary",
			"n":           "verbalize",
			"alt+d":       "capture_phrase",
			"alt+a":       "append_phrase",
			"alt+c":       "translate_en",
			"t":           "translate_en",
			"alt+shift+c": "translate_zh",
			"T":           "translate_zh",
			"alt+shift+j": "copy_item",
			"enter":       "copy_item",
			"d":           "delete_item",
			"D":           "clear_history",
			"w":           "transform_remove_whitespace",
			"s":           "transform_merge_spaces",
			",":           "transform_punctuation_to_newline",
			"f":           "transform_fold_width",
			"e":           "edit_item",
			"alt+e":       "edit_item",
			"/":           "translate_input",
			"alt+t":       "translate_input",
			"q":           "quit",
			"ctrl+c":      "quit",
		},
	}
}

// IsEnabled reports whether clipboard polling is on.
func (c Clipboard) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

func (c Clipboard) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMs) * time.Millisecond
}

func (s Speech) RepeatThreshold() time.Duration {
	return time.Duration(s.RepeatThresholdMs) * time.Millisecond
}

func (t Translate) Timeout() time.Duration {
	return time.Duration(t.TimeoutSeconds) * time.Second
}

func (h History) AutosaveInterval() time.Duration {
	return time.Duration(h.AutosaveSeconds) * time.Second
}

func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, err
	}

	if userCfg.General.Language != "" {
		cfg.General.Language = userCfg.General.Language
	}
	if userCfg.General.Debug {
		cfg.General.Debug = true
	}
	if userCfg.History.Path != "" {
		cfg.History.Path = expandHome(userCfg.History.Path)
	}
	if userCfg.History.MaxItems > 0 {
		cfg.History.MaxItems = userCfg.History.MaxItems
	}
	if userCfg.History.AutosaveSeconds > 0 {
		cfg.History.AutosaveSeconds = userCfg.History.AutosaveSeconds
	}
	if userCfg.Clipboard.Enabled != nil {
		cfg.Clipboard.Enabled = userCfg.Clipboard.Enabled
	}
	if userCfg.Clipboard.PollIntervalMs > 0 {
		cfg.Clipboard.PollIntervalMs = userCfg.Clipboard.PollIntervalMs
	}
	if userCfg.Speech.Backend != "" {
		cfg.Speech.Backend = userCfg.Speech.Backend
	}
	if userCfg.Speech.RepeatThresholdMs > 0 {
		cfg.Speech.RepeatThresholdMs = userCfg.Speech.RepeatThresholdMs
	}
	if userCfg.Translate.Dictionary != "" {
		cfg.Translate.Dictionary = expandHome(userCfg.Translate.Dictionary)
	}
	if userCfg.Translate.Command != "" {
		cfg.Translate.Command = expandHome(userCfg.Translate.Command)
		cfg.Translate.Args = userCfg.Translate.Args
	}
	if userCfg.Translate.TimeoutSeconds > 0 {
		cfg.Translate.TimeoutSeconds = userCfg.Translate.TimeoutSeconds
	}
	for k, v := range userCfg.Keymap {
		if v == "" {
			delete(cfg.Keymap, k)
			continue
		}
		cfg.Keymap[k] = v
	}

	return cfg, nil
}

func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

func ConfigDir() (string, error) {
	if v := os.Getenv("CLIPVOX_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "clipvox"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "clipvox"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// StateDir holds the clipboard history and the log.
func StateDir() (string, error) {
	if v := os.Getenv("CLIPVOX_STATE_HOME"); v != "" {
		return v, nil
	}
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateDir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateDir, "clipvox"), nil
}

// HistoryPath returns the configured history file or the default one in
// StateDir.
func (c Config) HistoryPath() (string, error) {
	if c.History.Path != "" {
		return c.History.Path, nil
	}
	dir, err := StateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.json"), nil
}

// DictionaryPath returns the configured dictionary or dict.txt in ConfigDir.
func (c Config) DictionaryPath() (string, error) {
	if c.Translate.Dictionary != "" {
		return c.Translate.Dictionary, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "dict.txt"), nil
}
