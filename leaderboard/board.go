// Package leaderboard keeps the persisted top-N score list.
package leaderboard

import (
	"log/slog"
	"sort"
	"strings"
)

// Entry is one leaderboard row.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Store reads and writes the persisted list.
type Store interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// Board is the in-memory top-N list, sorted by descending score.
// Equal scores keep arrival order.
type Board struct {
	entries []Entry
	maxSize int
	store   Store
}

// Open reads the board from store once. A failed or malformed read yields
// an empty board; the failure is logged and never surfaced.
func Open(store Store, maxSize int) *Board {
	b := &Board{
		entries: make([]Entry, 0, maxSize),
		maxSize: maxSize,
		store:   store,
	}
	if store == nil {
		return b
	}

	loaded, err := store.Load()
	if err != nil {
		slog.Warn("leaderboard_load_failed", "error", err)
		return b
	}
	for _, e := range loaded {
		if strings.TrimSpace(e.Name) == "" || e.Score < 0 {
			continue
		}
		b.entries = b.insertEntry(b.entries, e)
	}
	return b
}

// Insert adds an entry and returns its 1-based rank, or 0 when the board is
// full and the score does not beat the lowest entry.
func (b *Board) Insert(e Entry) int {
	idx := b.searchIndex(e.Score)
	if idx >= b.maxSize {
		return 0
	}
	b.entries = b.insertEntry(b.entries, e)
	return idx + 1
}

// Record inserts a finished session's score and persists the board.
// Persistence failures are logged and the in-memory board is kept.
func (b *Board) Record(name string, score int) int {
	rank := b.Insert(Entry{Name: name, Score: score})
	if b.store == nil {
		return rank
	}
	if err := b.store.Save(b.Entries()); err != nil {
		slog.Warn("leaderboard_save_failed", "error", err)
	}
	return rank
}

// Entries returns a copy of the board, best first.
func (b *Board) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of entries.
func (b *Board) Len() int {
	return len(b.entries)
}

// searchIndex returns where a score would land: after every entry with an
// equal or higher score.
func (b *Board) searchIndex(score int) int {
	return sort.Search(len(b.entries), func(i int) bool {
		return b.entries[i].Score < score
	})
}

// insertEntry adds an entry maintaining descending order and trims to maxSize.
func (b *Board) insertEntry(entries []Entry, e Entry) []Entry {
	idx := b.searchIndex(e.Score)
	if len(entries) >= b.maxSize && idx >= b.maxSize {
		return entries
	}

	entries = append(entries, Entry{})
	copy(entries[idx+1:], entries[idx:])
	entries[idx] = e

	if len(entries) > b.maxSize {
		entries = entries[:b.maxSize]
	}
	return entries
}
