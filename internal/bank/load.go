package bank

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Warning flags a data-quality problem in a loaded bank. Warnings never stop
// a load; the affected question simply can never score correct.
type Warning struct {
	Quiz  string
	Index int
	Msg   string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s[%d]: %s", w.Quiz, w.Index, w.Msg)
}

// LoadFile reads a bank document (.json, .yaml or .yml), structurally a
// mapping from quiz name to an ordered question list. Object keys carry no
// order in Go, so quiz names are sorted to keep concatenation order
// deterministic across loads.
func LoadFile(path string) (*Bank, []Warning, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read bank: %w", err)
	}

	doc := map[string][]Question{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, nil, fmt.Errorf("parse bank %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, nil, fmt.Errorf("parse bank %s: %w", path, err)
		}
	}

	names := make([]string, 0, len(doc))
	for n := range doc {
		names = append(names, n)
	}
	sort.Strings(names)

	b := New()
	var warns []Warning
	for _, n := range names {
		qs, w := sanitize(n, doc[n])
		warns = append(warns, w...)
		b.Add(n, qs)
	}
	return b, warns, nil
}

// LoadDir merges every bank document in a directory, in file name order.
// Duplicate quiz names across files append to the same quiz.
func LoadDir(dir string) (*Bank, []Warning, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read bank dir: %w", err)
	}
	b := New()
	var warns []Warning
	loaded := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".json", ".yaml", ".yml":
		default:
			continue
		}
		fb, w, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, nil, err
		}
		warns = append(warns, w...)
		for _, name := range fb.Names() {
			q, _ := fb.Quiz(name)
			b.Add(name, q.Questions)
		}
		loaded++
	}
	if loaded == 0 {
		return nil, nil, fmt.Errorf("no bank documents in %s", dir)
	}
	return b, warns, nil
}

// sanitize tolerates malformed entries instead of failing the load: blank
// questions are dropped, unknown types fall back to single choice, and
// missing answer keys or option lists are reported but kept.
func sanitize(quiz string, in []Question) ([]Question, []Warning) {
	out := make([]Question, 0, len(in))
	var warns []Warning
	for i, q := range in {
		if strings.TrimSpace(q.Text) == "" {
			warns = append(warns, Warning{Quiz: quiz, Index: i, Msg: "empty question text, dropped"})
			continue
		}
		if !q.Type.Valid() {
			warns = append(warns, Warning{Quiz: quiz, Index: i, Msg: fmt.Sprintf("unknown type %q, treating as single", q.Type)})
			q.Type = TypeSingle
		}
		if len(q.CorrectAnswers) == 0 {
			warns = append(warns, Warning{Quiz: quiz, Index: i, Msg: "no correct answers, question can never score"})
		}
		if len(q.Options) == 0 && q.Type != TypeTrueFalse {
			warns = append(warns, Warning{Quiz: quiz, Index: i, Msg: "choice question without options"})
		}
		out = append(out, q)
	}
	return out, warns
}
