package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jaroslaw-wieczorek/cubik"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("MigrateUp: %v", err)
	}
	return db
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("second MigrateUp: %v", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	id, err := sessions.Create("test notes", "T D' F", "0.1.0")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	s, err := sessions.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if s.EndedAt != nil {
		t.Error("new session should not be ended")
	}
	if s.ShuffleText == nil || *s.ShuffleText != "T D' F" {
		t.Errorf("shuffle text = %v", s.ShuffleText)
	}

	if err := sessions.End(id); err != nil {
		t.Fatalf("End: %v", err)
	}
	s, err = sessions.Get(id)
	if err != nil {
		t.Fatalf("Get after end: %v", err)
	}
	if s.EndedAt == nil || s.DurationMs == nil {
		t.Error("ended session should have end time and duration")
	}
}

func TestMoveBatchRoundTrip(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create("", "", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	now := time.Now()
	batch := []cubik.Move{
		{Face: cubik.FaceTop, Dir: cubik.Forward, Key: 't', Time: now},
		{Face: cubik.FaceBottom, Dir: cubik.Reverse, Key: 'd', Time: now},
	}
	if err := moves.CreateBatch(id, batch, 0, "shuffle"); err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	got, err := moves.GetBySession(id)
	if err != nil {
		t.Fatalf("GetBySession: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d moves, want 2", len(got))
	}
	if got[0].Notation != "T" || got[1].Notation != "D'" {
		t.Errorf("notations = %s, %s", got[0].Notation, got[1].Notation)
	}
	if got[1].Direction != -1 {
		t.Errorf("direction = %d, want -1", got[1].Direction)
	}
	if got[0].Source != "shuffle" {
		t.Errorf("source = %q, want shuffle", got[0].Source)
	}

	count, err := moves.CountBySession(id)
	if err != nil || count != 2 {
		t.Errorf("count = %d (%v), want 2", count, err)
	}
}

func TestListNewestFirst(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	if _, err := sessions.Create("first", "", ""); err != nil {
		t.Fatal(err)
	}
	time.Sleep(1100 * time.Millisecond) // RFC3339 second resolution
	second, err := sessions.Create("second", "", "")
	if err != nil {
		t.Fatal(err)
	}

	list, err := sessions.List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d sessions, want 2", len(list))
	}
	if list[0].SessionID != second {
		t.Error("list should be newest first")
	}
}
