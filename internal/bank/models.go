package bank

// QuestionType enumerates the three supported question kinds.
type QuestionType string

const (
	TypeSingle    QuestionType = "single"
	TypeMultiple  QuestionType = "multiple"
	TypeTrueFalse QuestionType = "truefalse"
)

func (t QuestionType) Valid() bool {
	switch t {
	case TypeSingle, TypeMultiple, TypeTrueFalse:
		return true
	}
	return false
}

type Option struct {
	Text      string `json:"text" yaml:"text"`
	IsCorrect bool   `json:"isCorrect" yaml:"isCorrect"`
}

// Question is immutable once loaded. Sessions that need to reorder options
// must work on a Clone, never on the bank's instance.
type Question struct {
	Text           string       `json:"question" yaml:"question"`
	Type           QuestionType `json:"type" yaml:"type"`
	Options        []Option     `json:"options,omitempty" yaml:"options,omitempty"`
	CorrectAnswers []string     `json:"correctAnswers,omitempty" yaml:"correctAnswers,omitempty"`
}

// Clone returns a deep copy whose option and answer slices are independent
// of the receiver's.
func (q Question) Clone() Question {
	out := q
	if q.Options != nil {
		out.Options = make([]Option, len(q.Options))
		copy(out.Options, q.Options)
	}
	if q.CorrectAnswers != nil {
		out.CorrectAnswers = make([]string, len(q.CorrectAnswers))
		copy(out.CorrectAnswers, q.CorrectAnswers)
	}
	return out
}

// Quiz is a named ordered list of questions as authored.
type Quiz struct {
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// QuizSummary is the listing projection served to the selection screens.
type QuizSummary struct {
	Name          string `json:"name"`
	QuestionCount int    `json:"question_count"`
}

// Bank is the full loaded collection of quizzes for a session. It is built
// once at startup and read-only afterwards; quiz order is preserved.
type Bank struct {
	names   []string
	quizzes map[string][]Question
}

func New() *Bank {
	return &Bank{quizzes: map[string][]Question{}}
}

// Add appends questions under a quiz name, creating the quiz if needed.
func (b *Bank) Add(name string, qs []Question) {
	if _, ok := b.quizzes[name]; !ok {
		b.names = append(b.names, name)
	}
	b.quizzes[name] = append(b.quizzes[name], qs...)
}

func (b *Bank) Names() []string {
	out := make([]string, len(b.names))
	copy(out, b.names)
	return out
}

func (b *Bank) Len() int { return len(b.names) }

func (b *Bank) Quiz(name string) (Quiz, bool) {
	qs, ok := b.quizzes[name]
	if !ok {
		return Quiz{}, false
	}
	return Quiz{Name: name, Questions: qs}, true
}

// Questions returns the union, with multiplicity, of the named quizzes'
// question lists in the given name order. Unknown names are skipped.
func (b *Bank) Questions(names ...string) []Question {
	var out []Question
	for _, n := range names {
		out = append(out, b.quizzes[n]...)
	}
	return out
}

// AllQuestions concatenates every quiz's questions in bank order.
func (b *Bank) AllQuestions() []Question {
	return b.Questions(b.names...)
}

func (b *Bank) Summaries() []QuizSummary {
	out := make([]QuizSummary, 0, len(b.names))
	for _, n := range b.names {
		out = append(out, QuizSummary{Name: n, QuestionCount: len(b.quizzes[n])})
	}
	return out
}
