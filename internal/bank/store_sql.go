package bank

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// SQLStore persists quizzes in the quizzes table (sqlite or postgres, see
// internal/db). Questions are stored as a JSON column; the position column
// preserves authored quiz order across loads.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) PutQuiz(ctx context.Context, q Quiz) error {
	qj, err := json.Marshal(q.Questions)
	if err != nil {
		return err
	}
	// position read and insert run in one transaction so concurrent loads
	// cannot hand out the same position
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var next int
	if err := tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position),0)+1 FROM quizzes`).Scan(&next); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO quizzes (name, questions_json, position, created_at)
		 VALUES ($1,$2,$3,$4)
		 ON CONFLICT (name) DO UPDATE SET questions_json=EXCLUDED.questions_json`,
		q.Name, string(qj), next, time.Now().Unix()); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLStore) GetQuiz(ctx context.Context, name string) (Quiz, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT name, questions_json FROM quizzes WHERE name=$1`, name)
	var q Quiz
	var qjson string
	if err := row.Scan(&q.Name, &qjson); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Quiz{}, errors.New("quiz not found")
		}
		return Quiz{}, err
	}
	if err := json.Unmarshal([]byte(qjson), &q.Questions); err != nil {
		return Quiz{}, err
	}
	return q, nil
}

func (s *SQLStore) ListQuizzes(ctx context.Context) ([]QuizSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, questions_json FROM quizzes ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []QuizSummary
	for rows.Next() {
		var name, qjson string
		if err := rows.Scan(&name, &qjson); err != nil {
			return nil, err
		}
		var qs []Question
		if err := json.Unmarshal([]byte(qjson), &qs); err != nil {
			return nil, err
		}
		out = append(out, QuizSummary{Name: name, QuestionCount: len(qs)})
	}
	return out, rows.Err()
}

// LoadBank materializes the whole table as an in-memory Bank, in stored
// quiz order. Per-question sanitizing matches the file loaders.
func (s *SQLStore) LoadBank(ctx context.Context) (*Bank, []Warning, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, questions_json FROM quizzes ORDER BY position`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	b := New()
	var warns []Warning
	for rows.Next() {
		var name, qjson string
		if err := rows.Scan(&name, &qjson); err != nil {
			return nil, nil, err
		}
		var qs []Question
		if err := json.Unmarshal([]byte(qjson), &qs); err != nil {
			return nil, nil, err
		}
		clean, w := sanitize(name, qs)
		warns = append(warns, w...)
		b.Add(name, clean)
	}
	return b, warns, rows.Err()
}
