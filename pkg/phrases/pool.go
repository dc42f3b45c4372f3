// Package phrases supplies caption text from a JSON phrase pool.
//
// The pool file is a flat JSON array of strings. Every load problem short
// of an unreadable existing file degrades to an empty pool with a warning,
// and an empty pool still serves a fallback phrase, so callers always get
// usable caption text.
package phrases

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
)

// DefaultPhrase is served when the pool is empty.
const DefaultPhrase = "SAMPLE TEXT"

// Pool is an immutable set of caption phrases.
type Pool struct {
	phrases []string
}

// Load reads a phrase pool from a JSON file. A missing file or empty path
// yields an empty pool; malformed JSON and non-string entries yield
// warnings, not errors. Only an unreadable existing file is an error.
func Load(path string) (*Pool, []string, error) {
	if path == "" {
		return &Pool{}, nil, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Pool{}, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read phrase pool: %w", err)
	}

	var warnings []string
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		warnings = append(warnings, fmt.Sprintf("malformed phrase pool %s: %v — using fallback phrase", path, err))
		return &Pool{}, warnings, nil
	}

	pool := &Pool{phrases: make([]string, 0, len(raw))}
	for i, entry := range raw {
		s, ok := entry.(string)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("phrase pool %s: entry %d is not a string — skipped", path, i))
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			pool.phrases = append(pool.phrases, s)
		}
	}
	return pool, warnings, nil
}

// New builds a pool from the given phrases. Blank entries are dropped.
func New(phrases ...string) *Pool {
	p := &Pool{phrases: make([]string, 0, len(phrases))}
	for _, s := range phrases {
		if s = strings.TrimSpace(s); s != "" {
			p.phrases = append(p.phrases, s)
		}
	}
	return p
}

// Len reports the number of phrases in the pool.
func (p *Pool) Len() int { return len(p.phrases) }

// Random returns a uniformly chosen phrase, or DefaultPhrase when the pool
// is empty.
func (p *Pool) Random() string {
	if len(p.phrases) == 0 {
		return DefaultPhrase
	}
	return p.phrases[rand.IntN(len(p.phrases))]
}
