package ranking

import (
	"math/rand"
	"testing"
)

func TestRankOrdersByScoreDescending(t *testing.T) {
	entries := []Entry{
		{PlayerID: 1, Score: 40},
		{PlayerID: 2, Score: 90},
		{PlayerID: 3, Score: 65},
	}
	Rank(entries)
	if entries[0].PlayerID != 2 || entries[1].PlayerID != 3 || entries[2].PlayerID != 1 {
		t.Fatalf("unexpected order: %+v", entries)
	}
}

func TestRankBreaksTiesByPlayerID(t *testing.T) {
	entries := []Entry{
		{PlayerID: 9, Score: 70},
		{PlayerID: 3, Score: 70},
		{PlayerID: 7, Score: 70},
	}
	Rank(entries)
	want := []uint64{3, 7, 9}
	for i, id := range want {
		if entries[i].PlayerID != id {
			t.Fatalf("tie order: got %d at %d, want %d", entries[i].PlayerID, i, id)
		}
	}
}

func TestPaginateConcatenationCoversAll(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	entries := make([]Entry, 137)
	for i := range entries {
		entries[i] = Entry{PlayerID: uint64(i + 1), Score: float64(rng.Intn(20))}
	}
	Rank(entries)

	seen := make(map[uint64]bool)
	var order []uint64
	page := 1
	for {
		items, meta := Paginate(entries, page, 25)
		for _, e := range items {
			if seen[e.PlayerID] {
				t.Fatalf("player %d appeared twice", e.PlayerID)
			}
			seen[e.PlayerID] = true
			order = append(order, e.PlayerID)
		}
		if !meta.HasNext {
			break
		}
		page++
	}
	if len(order) != len(entries) {
		t.Fatalf("pages covered %d of %d entries", len(order), len(entries))
	}
	for i, e := range entries {
		if order[i] != e.PlayerID {
			t.Fatalf("page concatenation diverged at %d", i)
		}
	}
}

func TestPaginatePastEndIsEmpty(t *testing.T) {
	entries := []Entry{{PlayerID: 1, Score: 50}}
	items, meta := Paginate(entries, 5, 25)
	if len(items) != 0 {
		t.Fatalf("expected empty page, got %d items", len(items))
	}
	if meta.Total != 1 || meta.HasNext {
		t.Fatalf("unexpected meta: %+v", meta)
	}
}

func TestPaginateMeta(t *testing.T) {
	entries := make([]Entry, 51)
	for i := range entries {
		entries[i] = Entry{PlayerID: uint64(i + 1)}
	}
	_, meta := Paginate(entries, 1, 25)
	if meta.TotalPages != 3 {
		t.Fatalf("total pages: got %d, want 3", meta.TotalPages)
	}
	if !meta.HasNext {
		t.Fatal("expected has_next on first of three pages")
	}
	items, meta := Paginate(entries, 3, 25)
	if len(items) != 1 || meta.HasNext {
		t.Fatalf("last page: %d items, has_next=%v", len(items), meta.HasNext)
	}
}
