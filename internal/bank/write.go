package bank

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// WriteFile serializes the bank back to a document (.json, .yaml or .yml by
// extension). JSON object keys marshal sorted, matching LoadFile's sorted
// read order.
func WriteFile(path string, b *Bank) error {
	doc := make(map[string][]Question, b.Len())
	for _, n := range b.Names() {
		q, _ := b.Quiz(n)
		doc[n] = q.Questions
	}

	var raw []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		raw, err = yaml.Marshal(doc)
	default:
		raw, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode bank: %w", err)
	}
	return os.WriteFile(path, raw, 0o644)
}
