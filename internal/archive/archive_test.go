package archive

import (
	"os"
	"testing"
	"time"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	f, err := os.CreateTemp("", "qienn-archive-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	db, err := Open(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveHistoryNewestFirst(t *testing.T) {
	db := testDB(t)
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		if err := db.RecordSave("cs", int64(100+i), base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatal(err)
		}
	}

	rows, err := db.Saves(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, want 2 (limit)", len(rows))
	}
	if rows[0].Size != 102 || rows[1].Size != 101 {
		t.Errorf("order = [%d %d], want newest first", rows[0].Size, rows[1].Size)
	}
}

func TestSavesEmpty(t *testing.T) {
	db := testDB(t)
	rows, err := db.Saves(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

func TestWinnerTally(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	for _, w := range []string{"拉麵", "壽司", "拉麵", "拉麵", "咖哩飯"} {
		if err := db.RecordSpin(w, 1930.5, now); err != nil {
			t.Fatal(err)
		}
	}

	tally, err := db.WinnerTally()
	if err != nil {
		t.Fatal(err)
	}
	if len(tally) != 3 {
		t.Fatalf("tally = %v, want 3 entries", tally)
	}
	if tally[0].Winner != "拉麵" || tally[0].Count != 3 {
		t.Errorf("tally[0] = %+v, want 拉麵 x3", tally[0])
	}
}
