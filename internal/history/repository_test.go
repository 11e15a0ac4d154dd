package history

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"numconv/internal/migrate"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", "file::memory:?_foreign_keys=on")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// An in-memory db exists per connection; keep the pool on one.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close db: %v", err)
		}
	})
	if err := migrate.Run(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestInsertRun(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	started := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	id, err := repo.InsertRun(Run{
		Tool:       "convertnumbers",
		Source:     "TC1.txt",
		StartedAt:  started,
		Duration:   1500 * time.Millisecond,
		OKCount:    3,
		ErrorCount: 1,
	})
	if err != nil {
		t.Fatalf("InsertRun: %v", err)
	}
	if id == 0 {
		t.Fatal("InsertRun returned id 0")
	}

	runs, err := repo.GetRuns(10)
	if err != nil {
		t.Fatalf("GetRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("GetRuns: got %d runs, want 1", len(runs))
	}
	run := runs[0]
	if run.ID != id || run.Tool != "convertnumbers" || run.Source != "TC1.txt" {
		t.Errorf("run = %+v; want id %d, tool convertnumbers, source TC1.txt", run, id)
	}
	if !run.StartedAt.Equal(started) {
		t.Errorf("StartedAt = %v; want %v", run.StartedAt, started)
	}
	if run.Duration != 1500*time.Millisecond {
		t.Errorf("Duration = %v; want 1.5s", run.Duration)
	}
	if run.OKCount != 3 || run.ErrorCount != 1 {
		t.Errorf("counts = %d/%d; want 3/1", run.OKCount, run.ErrorCount)
	}
}

func TestInsertConversions(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	id, err := repo.InsertRun(Run{Tool: "convertnumbers", Source: "x.txt", StartedAt: time.Now()})
	if err != nil {
		t.Fatalf("InsertRun: %v", err)
	}

	convs := []Conversion{
		{Position: 1, Value: 5, Bin: "101", Hex: "5"},
		{Position: 2, Value: -5, Bin: "1111111011", Hex: "FFFFFFFFFB"},
	}
	if err := repo.InsertConversions(id, convs); err != nil {
		t.Fatalf("InsertConversions: %v", err)
	}

	got, err := repo.GetConversions(id)
	if err != nil {
		t.Fatalf("GetConversions: %v", err)
	}
	if len(got) != len(convs) {
		t.Fatalf("GetConversions: got %d rows, want %d", len(got), len(convs))
	}
	for i, c := range convs {
		if got[i] != c {
			t.Errorf("GetConversions[%d] = %+v; want %+v", i, got[i], c)
		}
	}
}

func TestInsertConversions_UnknownRun(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	err := repo.InsertConversions(999, []Conversion{{Position: 1, Value: 1, Bin: "1", Hex: "1"}})
	if err == nil {
		t.Fatal("InsertConversions with unknown run id: want foreign key error, got nil")
	}
}

func TestInsertWordCounts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	id, err := repo.InsertRun(Run{Tool: "wordcount", Source: "words.txt", StartedAt: time.Now()})
	if err != nil {
		t.Fatalf("InsertRun: %v", err)
	}
	counts := []WordCount{{Word: "apple", Count: 3}, {Word: "pear", Count: 1}}
	if err := repo.InsertWordCounts(id, counts); err != nil {
		t.Fatalf("InsertWordCounts: %v", err)
	}

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM word_counts WHERE run_id = ?`, id).Scan(&n); err != nil {
		t.Fatalf("count word_counts: %v", err)
	}
	if n != 2 {
		t.Errorf("word_counts rows = %d; want 2", n)
	}
}
