package bank_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/quizkit/quizkit/internal/bank"
	"github.com/quizkit/quizkit/internal/db"
)

func openTestStore(t *testing.T) *bank.SQLStore {
	t.Helper()
	ctx := context.Background()
	// one shared-cache memory db per test, so rows never leak across tests
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	dbh, err := db.Open(ctx, db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { dbh.Close() })
	return bank.NewSQLStore(dbh)
}

func TestSQLStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	quiz := bank.Quiz{
		Name: "Databases",
		Questions: []bank.Question{
			{
				Text: "SQLite is serverless.", Type: bank.TypeTrueFalse,
				CorrectAnswers: []string{"True"},
			},
			{
				Text: "Which are SQL keywords?", Type: bank.TypeMultiple,
				Options: []bank.Option{
					{Text: "SELECT", IsCorrect: true},
					{Text: "GOTO"},
					{Text: "WHERE", IsCorrect: true},
				},
				CorrectAnswers: []string{"SELECT", "WHERE"},
			},
		},
	}
	if err := store.PutQuiz(ctx, quiz); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetQuiz(ctx, "Databases")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Questions) != 2 || got.Questions[1].Options[2].Text != "WHERE" {
		t.Fatalf("quiz did not round-trip: %+v", got)
	}

	// upsert replaces the question list, keeps position
	quiz.Questions = quiz.Questions[:1]
	if err := store.PutQuiz(ctx, quiz); err != nil {
		t.Fatal(err)
	}
	got, err = store.GetQuiz(ctx, "Databases")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Questions) != 1 {
		t.Fatalf("upsert did not replace questions: %d", len(got.Questions))
	}
}

func TestSQLStoreOrderAndLoadBank(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		err := store.PutQuiz(ctx, bank.Quiz{Name: name, Questions: []bank.Question{
			{Text: name + " q", Type: bank.TypeTrueFalse, CorrectAnswers: []string{"True"}},
		}})
		if err != nil {
			t.Fatal(err)
		}
	}

	sums, err := store.ListQuizzes(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(sums) != 3 || sums[0].Name != "Zeta" || sums[2].Name != "Mid" {
		t.Fatalf("insertion order not preserved: %+v", sums)
	}

	b, warns, err := store.LoadBank(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
	names := b.Names()
	if len(names) != 3 || names[0] != "Zeta" {
		t.Fatalf("bank order wrong: %v", names)
	}
}

func TestSQLStorePositionsStayDistinct(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	names := []string{"One", "Two", "Three", "Four"}
	for _, n := range names {
		err := store.PutQuiz(ctx, bank.Quiz{Name: n, Questions: []bank.Question{
			{Text: n, Type: bank.TypeTrueFalse, CorrectAnswers: []string{"True"}},
		}})
		if err != nil {
			t.Fatal(err)
		}
	}
	// re-putting an early quiz must not disturb anyone's slot
	if err := store.PutQuiz(ctx, bank.Quiz{Name: "Two", Questions: []bank.Question{
		{Text: "updated", Type: bank.TypeTrueFalse, CorrectAnswers: []string{"False"}},
	}}); err != nil {
		t.Fatal(err)
	}

	sums, err := store.ListQuizzes(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(sums) != len(names) {
		t.Fatalf("want %d quizzes, got %d", len(names), len(sums))
	}
	for i, n := range names {
		if sums[i].Name != n {
			t.Fatalf("position %d: want %q, got %q", i, n, sums[i].Name)
		}
	}
}

func TestSQLStoreGetMissing(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.GetQuiz(context.Background(), "nope"); err == nil {
		t.Fatal("want error for missing quiz")
	}
}
