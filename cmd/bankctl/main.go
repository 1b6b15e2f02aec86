// bankctl maintains question-bank documents outside the serving path:
// import spreadsheets exported from quiz platforms, convert between JSON and
// YAML, load documents into the SQL store, and list or validate contents.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/quizkit/quizkit/internal/bank"
	"github.com/quizkit/quizkit/internal/db"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
	}
	var err error
	switch os.Args[1] {
	case "import":
		err = runImport(os.Args[2:])
	case "convert":
		err = runConvert(os.Args[2:])
	case "load":
		err = runLoad(os.Args[2:])
	case "list":
		err = runList(os.Args[2:])
	case "validate":
		err = runValidate(os.Args[2:])
	default:
		usage()
	}
	if err != nil {
		log.Fatalf("bankctl %s: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: bankctl <command> [flags]

commands:
  import    build a bank document from an XLSX or CSV sheet
  convert   rewrite a bank document (json <-> yaml)
  load      load a bank document into the SQL store
  list      print quiz names and sizes from a bank document
  validate  report data-quality warnings in a bank document`)
	os.Exit(2)
}

// runImport reads rows of [quiz, question, type, options] where options are
// pipe-separated and correct ones carry a leading '*'. The correct-answer
// list is derived from the starred options.
func runImport(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	in := fs.String("in", "", "input .xlsx or .csv file")
	out := fs.String("out", "bank.json", "output bank document")
	sheet := fs.String("sheet", "Sheet1", "worksheet name (xlsx only)")
	skipHeader := fs.Bool("skip-header", true, "skip the first row")
	_ = fs.Parse(args)
	if *in == "" {
		return fmt.Errorf("-in is required")
	}

	var rows [][]string
	var err error
	if strings.EqualFold(filepath.Ext(*in), ".csv") {
		rows, err = readCSV(*in)
	} else {
		rows, err = readXLSX(*in, *sheet)
	}
	if err != nil {
		return err
	}
	if *skipHeader && len(rows) > 0 {
		rows = rows[1:]
	}

	b := bank.New()
	imported := 0
	for i, row := range rows {
		if len(row) < 2 || strings.TrimSpace(row[1]) == "" {
			continue
		}
		q, err := rowToQuestion(row)
		if err != nil {
			log.Printf("row %d skipped: %v", i+1, err)
			continue
		}
		b.Add(strings.TrimSpace(row[0]), []bank.Question{q})
		imported++
	}
	if imported == 0 {
		return fmt.Errorf("no importable rows in %s", *in)
	}
	if err := bank.WriteFile(*out, b); err != nil {
		return err
	}
	log.Printf("imported %d questions into %d quizzes -> %s", imported, b.Len(), *out)
	return nil
}

func rowToQuestion(row []string) (bank.Question, error) {
	q := bank.Question{
		Text: strings.TrimSpace(row[1]),
		Type: bank.TypeSingle,
	}
	if len(row) > 2 && strings.TrimSpace(row[2]) != "" {
		q.Type = bank.QuestionType(strings.ToLower(strings.TrimSpace(row[2])))
		if !q.Type.Valid() {
			return bank.Question{}, fmt.Errorf("unknown type %q", row[2])
		}
	}
	if len(row) > 3 {
		for _, raw := range strings.Split(row[3], "|") {
			text := strings.TrimSpace(raw)
			if text == "" {
				continue
			}
			correct := strings.HasPrefix(text, "*")
			if correct {
				text = strings.TrimSpace(strings.TrimPrefix(text, "*"))
			}
			q.Options = append(q.Options, bank.Option{Text: text, IsCorrect: correct})
			if correct {
				q.CorrectAnswers = append(q.CorrectAnswers, text)
			}
		}
	}
	if q.Type == bank.TypeTrueFalse && len(q.CorrectAnswers) == 0 && len(row) > 4 {
		if v := strings.TrimSpace(row[4]); v != "" {
			q.CorrectAnswers = []string{v}
		}
	}
	return q, nil
}

func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	in := fs.String("in", "", "input bank document")
	out := fs.String("out", "", "output bank document")
	_ = fs.Parse(args)
	if *in == "" || *out == "" {
		return fmt.Errorf("-in and -out are required")
	}
	b, warns, err := bank.LoadFile(*in)
	if err != nil {
		return err
	}
	for _, w := range warns {
		log.Printf("warning: %s", w)
	}
	return bank.WriteFile(*out, b)
}

func runLoad(args []string) error {
	fs := flag.NewFlagSet("load", flag.ExitOnError)
	in := fs.String("in", "", "input bank document")
	driver := fs.String("driver", "sqlite", "sql driver: sqlite|postgres")
	dsn := fs.String("dsn", "", "database connection string")
	_ = fs.Parse(args)
	if *in == "" {
		return fmt.Errorf("-in is required")
	}
	b, warns, err := bank.LoadFile(*in)
	if err != nil {
		return err
	}
	for _, w := range warns {
		log.Printf("warning: %s", w)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	dbh, err := db.Open(ctx, db.Driver(*driver), *dsn)
	if err != nil {
		return err
	}
	defer dbh.Close()

	store := bank.NewSQLStore(dbh)
	for _, name := range b.Names() {
		q, _ := b.Quiz(name)
		if err := store.PutQuiz(ctx, q); err != nil {
			return fmt.Errorf("put quiz %q: %w", name, err)
		}
	}
	log.Printf("loaded %d quizzes into %s store", b.Len(), *driver)
	return nil
}

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	in := fs.String("in", "", "bank document")
	_ = fs.Parse(args)
	if *in == "" {
		return fmt.Errorf("-in is required")
	}
	b, _, err := bank.LoadFile(*in)
	if err != nil {
		return err
	}
	for _, s := range b.Summaries() {
		fmt.Printf("%-40s %d questions\n", s.Name, s.QuestionCount)
	}
	return nil
}

func runValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	in := fs.String("in", "", "bank document")
	_ = fs.Parse(args)
	if *in == "" {
		return fmt.Errorf("-in is required")
	}
	_, warns, err := bank.LoadFile(*in)
	if err != nil {
		return err
	}
	if len(warns) == 0 {
		log.Println("ok: no warnings")
		return nil
	}
	for _, w := range warns {
		fmt.Println(w)
	}
	return fmt.Errorf("%d warnings", len(warns))
}
