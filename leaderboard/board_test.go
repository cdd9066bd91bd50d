package leaderboard

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func fullBoard(t *testing.T) *Board {
	t.Helper()
	b := Open(nil, 10)
	for i := 0; i < 10; i++ {
		b.Insert(Entry{Name: "p", Score: 100 - i*5}) // 100 .. 55
	}
	return b
}

func TestInsertKeepsDescendingOrder(t *testing.T) {
	b := Open(nil, 10)
	for _, s := range []int{30, 50, 10, 40, 20} {
		b.Insert(Entry{Name: "x", Score: s})
	}

	got := b.Entries()
	want := []int{50, 40, 30, 20, 10}
	for i, e := range got {
		if e.Score != want[i] {
			t.Fatalf("entries = %+v, want scores %v", got, want)
		}
	}
}

func TestInsertRanks(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  int
	}{
		{"new best", 500, 1},
		{"middle", 82, 5},
		{"tie in the middle", 80, 6},
		{"ties go after existing", 100, 2},
		{"last slot", 56, 10},
		{"lower than all", 10, 0},
		{"equal to lowest", 55, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := fullBoard(t)
			if got := b.Insert(Entry{Name: "new", Score: tt.score}); got != tt.want {
				t.Errorf("Insert(%d) rank = %d, want %d", tt.score, got, tt.want)
			}
			if b.Len() != 10 {
				t.Errorf("len = %d, want 10", b.Len())
			}
		})
	}
}

func TestFullBoardDropsLowerScore(t *testing.T) {
	b := fullBoard(t)
	before := b.Entries()

	if rank := b.Insert(Entry{Name: "low", Score: 1}); rank != 0 {
		t.Errorf("rank = %d, want 0", rank)
	}

	after := b.Entries()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("board changed at %d: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestRecordPersists(t *testing.T) {
	store := &MemoryStore{}
	b := Open(store, 10)

	b.Record("ana", 42)
	b.Record("bo", 17)

	if store.Saves() != 2 {
		t.Errorf("saves = %d, want 2", store.Saves())
	}
	reopened := Open(store, 10)
	got := reopened.Entries()
	if len(got) != 2 || got[0] != (Entry{Name: "ana", Score: 42}) {
		t.Errorf("reopened = %+v", got)
	}
}

type failingStore struct{}

func (failingStore) Load() ([]Entry, error) { return nil, errors.New("unavailable") }
func (failingStore) Save([]Entry) error     { return errors.New("unavailable") }

func TestStoreFailuresFallBackToMemory(t *testing.T) {
	b := Open(failingStore{}, 10)
	if b.Len() != 0 {
		t.Fatalf("len = %d, want empty board", b.Len())
	}

	if rank := b.Record("ana", 12); rank != 1 {
		t.Errorf("rank = %d, want 1", rank)
	}
	if b.Len() != 1 {
		t.Errorf("in-memory board lost the entry")
	}
}

func TestOpenNormalizesLoadedData(t *testing.T) {
	store := &MemoryStore{}
	raw := []Entry{{"a", 5}, {"", 99}, {"b", 50}, {"  ", 70}, {"c", -1}, {"d", 20}}
	if err := store.Save(raw); err != nil {
		t.Fatal(err)
	}

	b := Open(store, 2)
	got := b.Entries()
	if len(got) != 2 || got[0].Name != "b" || got[1].Name != "d" {
		t.Errorf("entries = %+v, want [b d]", got)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "board.json")
	store := NewFileStore(path)
	if store.Path() != path {
		t.Errorf("Path() = %q, want %q", store.Path(), path)
	}

	b := Open(store, 10)
	b.Record("ana", 30)
	b.Record("bo", 45)

	reopened := Open(NewFileStore(path), 10)
	got := reopened.Entries()
	if len(got) != 2 || got[0].Name != "bo" || got[1].Name != "ana" {
		t.Errorf("entries = %+v", got)
	}
}

func TestFileStoreMissingAndCorrupt(t *testing.T) {
	dir := t.TempDir()

	missing := NewFileStore(filepath.Join(dir, "none.json"))
	entries, err := missing.Load()
	if err != nil || len(entries) != 0 {
		t.Errorf("missing file: entries=%v err=%v, want empty/nil", entries, err)
	}

	corruptPath := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(corruptPath, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(corruptPath).Load(); err == nil {
		t.Error("expected parse error for corrupt file")
	}
	if b := Open(NewFileStore(corruptPath), 10); b.Len() != 0 {
		t.Errorf("corrupt file board len = %d, want 0", b.Len())
	}
}
