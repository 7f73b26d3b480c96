package translate

import (
	"bufio"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Dictionary maps lowercased headwords to their meanings.
type Dictionary struct {
	entries map[string]string
}

func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string]string)}
}

// LoadDictionary reads a tab-separated word list (word, meaning, extra
// columns ignored). Malformed lines are skipped with a warning.
func LoadDictionary(path string, log *zap.Logger) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return NewDictionary(), err
	}
	defer f.Close()
	d, err := ReadDictionary(f, log)
	if err != nil {
		return d, err
	}
	if log != nil {
		log.Info("dictionary loaded", zap.String("path", path), zap.Int("entries", d.Len()))
	}
	return d, nil
}

func ReadDictionary(r io.Reader, log *zap.Logger) (*Dictionary, error) {
	if log == nil {
		log = zap.NewNop()
	}
	d := NewDictionary()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) < 2 {
			log.Warn("dictionary line skipped, need at least two fields", zap.Int("line", lineNum))
			continue
		}
		d.entries[strings.ToLower(parts[0])] = parts[1]
	}
	return d, sc.Err()
}

// Lookup is case-insensitive and ignores surrounding whitespace.
func (d *Dictionary) Lookup(word string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(word))
	if key == "" {
		return "", false
	}
	v, ok := d.entries[key]
	return v, ok
}

func (d *Dictionary) Len() int { return len(d.entries) }
