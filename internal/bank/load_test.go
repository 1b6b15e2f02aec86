package bank_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quizkit/quizkit/internal/bank"
)

const sampleJSON = `{
  "Networking Basics": [
    {
      "question": "What does TCP stand for?",
      "type": "single",
      "options": [
        {"text": "Transmission Control Protocol", "isCorrect": true},
        {"text": "Transfer Connection Process", "isCorrect": false}
      ],
      "correctAnswers": ["Transmission Control Protocol"]
    },
    {
      "question": "UDP is connectionless.",
      "type": "truefalse",
      "correctAnswers": ["True"]
    }
  ],
  "Go Basics": [
    {
      "question": "Which are Go keywords?",
      "type": "multiple",
      "options": [
        {"text": "func", "isCorrect": true},
        {"text": "lambda", "isCorrect": false},
        {"text": "chan", "isCorrect": true}
      ],
      "correctAnswers": ["func", "chan"]
    }
  ]
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileJSON(t *testing.T) {
	b, warns, err := bank.LoadFile(writeTemp(t, "bank.json", sampleJSON))
	if err != nil {
		t.Fatal(err)
	}
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
	// object keys are unordered, names come back sorted
	names := b.Names()
	if len(names) != 2 || names[0] != "Go Basics" || names[1] != "Networking Basics" {
		t.Fatalf("unexpected quiz names: %v", names)
	}
	q, ok := b.Quiz("Networking Basics")
	if !ok || len(q.Questions) != 2 {
		t.Fatalf("quiz lookup failed: %+v", q)
	}
	if q.Questions[1].Type != bank.TypeTrueFalse {
		t.Fatalf("type not preserved: %s", q.Questions[1].Type)
	}
}

func TestLoadFileYAML(t *testing.T) {
	const y = `
Go Basics:
  - question: What is a goroutine?
    type: single
    options:
      - text: a lightweight thread
        isCorrect: true
      - text: a package
        isCorrect: false
    correctAnswers: [a lightweight thread]
`
	b, warns, err := bank.LoadFile(writeTemp(t, "bank.yaml", y))
	if err != nil {
		t.Fatal(err)
	}
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
	q, _ := b.Quiz("Go Basics")
	if len(q.Questions) != 1 || q.Questions[0].Options[0].Text != "a lightweight thread" {
		t.Fatalf("yaml load broken: %+v", q)
	}
}

func TestLoadFileToleratesMalformedEntries(t *testing.T) {
	const malformed = `{
  "Broken": [
    {"question": "no answers here", "type": "single",
     "options": [{"text": "a", "isCorrect": false}]},
    {"question": "weird type", "type": "essay", "correctAnswers": ["x"]},
    {"question": "   "},
    {"question": "no options", "type": "multiple", "correctAnswers": ["a"]}
  ]
}`
	b, warns, err := bank.LoadFile(writeTemp(t, "bank.json", malformed))
	if err != nil {
		t.Fatal(err)
	}
	q, _ := b.Quiz("Broken")
	if len(q.Questions) != 3 {
		t.Fatalf("blank question must be dropped, others kept: %d", len(q.Questions))
	}
	if q.Questions[1].Type != bank.TypeSingle {
		t.Fatalf("unknown type must fall back to single: %s", q.Questions[1].Type)
	}
	if len(warns) < 4 {
		t.Fatalf("want warnings for each defect, got %v", warns)
	}
}

func TestLoadDirMerges(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.json"), []byte(`{"One": [{"question":"q1","type":"truefalse","correctAnswers":["True"]}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.json"), []byte(`{"Two": [{"question":"q2","type":"truefalse","correctAnswers":["False"]}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}
	b, _, err := bank.LoadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != 2 {
		t.Fatalf("want 2 quizzes, got %d", b.Len())
	}
}

func TestLoadDirEmpty(t *testing.T) {
	_, _, err := bank.LoadDir(t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "no bank documents") {
		t.Fatalf("want empty-dir error, got %v", err)
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	b, _, err := bank.LoadFile(writeTemp(t, "bank.json", sampleJSON))
	if err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "out.yaml")
	if err := bank.WriteFile(out, b); err != nil {
		t.Fatal(err)
	}
	again, _, err := bank.LoadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if again.Len() != b.Len() {
		t.Fatalf("round trip lost quizzes: %d vs %d", again.Len(), b.Len())
	}
	q1, _ := b.Quiz("Go Basics")
	q2, _ := again.Quiz("Go Basics")
	if len(q1.Questions) != len(q2.Questions) {
		t.Fatal("round trip lost questions")
	}
}

func TestQuestionCloneIsIndependent(t *testing.T) {
	q := bank.Question{
		Text: "q", Type: bank.TypeSingle,
		Options:        []bank.Option{{Text: "a", IsCorrect: true}, {Text: "b"}},
		CorrectAnswers: []string{"a"},
	}
	c := q.Clone()
	c.Options[0].Text = "mutated"
	c.CorrectAnswers[0] = "mutated"
	if q.Options[0].Text != "a" || q.CorrectAnswers[0] != "a" {
		t.Fatal("clone shares backing arrays with the original")
	}
}
