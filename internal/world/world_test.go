package world

import (
	"testing"

	"github.com/udisondev/lifegrid/internal/model"
)

func TestGet_OutOfBounds(t *testing.T) {
	w := New(3)
	w.Put(model.NewLocation(0, 0), model.NewLife(5))

	tests := []struct {
		name string
		loc  model.Location
	}{
		{name: "negative row", loc: model.NewLocation(-1, 0)},
		{name: "negative col", loc: model.NewLocation(0, -1)},
		{name: "row past edge", loc: model.NewLocation(3, 0)},
		{name: "col past edge", loc: model.NewLocation(0, 3)},
		{name: "far away", loc: model.NewLocation(100, -100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Get(tt.loc); !got.IsEmpty() {
				t.Errorf("Get(%+v) = %v, want empty", tt.loc, got)
			}
		})
	}
}

func TestSet_DoesNotMutateReceiver(t *testing.T) {
	w := New(3)
	loc := model.NewLocation(1, 1)

	next := w.Set(loc, model.NewResource(4))

	if got := w.Get(loc); !got.IsEmpty() {
		t.Errorf("original world mutated: Get(%+v) = %v", loc, got)
	}
	if got := next.Get(loc); got != model.NewResource(4) {
		t.Errorf("new world Get(%+v) = %v, want R4", loc, got)
	}
}

func TestSet_OutOfBoundsDropped(t *testing.T) {
	w := New(3)
	next := w.Set(model.NewLocation(-1, 5), model.NewResource(4))
	for _, c := range next.Scan() {
		if !c.Tile.IsEmpty() {
			t.Fatalf("out-of-bounds Set leaked into the grid at %+v", c.Loc)
		}
	}
}

func TestClone_SharesNoStorage(t *testing.T) {
	w := New(3)
	loc := model.NewLocation(2, 2)
	clone := w.Clone()
	clone.Put(loc, model.NewEgg(20))

	if got := w.Get(loc); !got.IsEmpty() {
		t.Errorf("Put on clone leaked into original: %v", got)
	}
}

func TestNeighbors_FixedOrder(t *testing.T) {
	w := New(5)
	origin := model.NewLocation(2, 2)

	want := []model.Location{
		{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3},
		{Row: 2, Col: 1}, {Row: 2, Col: 3},
		{Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 3, Col: 3},
	}

	got := w.Neighbors(origin)
	if len(got) != 8 {
		t.Fatalf("Neighbors() returned %d cells, want 8", len(got))
	}
	for i, cell := range got {
		if cell.Loc != want[i] {
			t.Errorf("Neighbors()[%d].Loc = %+v, want %+v", i, cell.Loc, want[i])
		}
	}
}

func TestNeighbors_OffGridResolveToEmpty(t *testing.T) {
	w := New(3)
	got := w.Neighbors(model.NewLocation(0, 0))
	if len(got) != 8 {
		t.Fatalf("corner Neighbors() returned %d cells, want 8 (off-grid not omitted)", len(got))
	}
	// First neighbor of the corner is (-1,-1), off grid.
	if got[0].Loc != model.NewLocation(-1, -1) || !got[0].Tile.IsEmpty() {
		t.Errorf("off-grid neighbor = %+v, want empty at (-1,-1)", got[0])
	}
}

func TestFirstNeighborMatching_Order(t *testing.T) {
	w := New(5)
	origin := model.NewLocation(2, 2)
	// Two resources; (1,3) comes before (3,1) in the fixed offset order.
	w.Put(model.NewLocation(3, 1), model.NewResource(9))
	w.Put(model.NewLocation(1, 3), model.NewResource(1))

	got, ok := w.FirstNeighborMatching(origin, model.Tile.IsResource)
	if !ok {
		t.Fatal("FirstNeighborMatching() found nothing")
	}
	if got.Loc != model.NewLocation(1, 3) {
		t.Errorf("FirstNeighborMatching() = %+v, want (1,3)", got.Loc)
	}

	if _, ok := w.FirstNeighborMatching(origin, model.Tile.IsLife); ok {
		t.Error("FirstNeighborMatching() matched life on a lifeless grid")
	}
}

func TestScan_ColumnMajorOrder(t *testing.T) {
	w := New(3)
	cells := w.Scan()
	if len(cells) != 9 {
		t.Fatalf("Scan() returned %d cells, want 9", len(cells))
	}

	// Outer loop over columns ascending, inner loop over rows ascending.
	want := []model.Location{
		{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0},
		{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1},
		{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2},
	}
	for i, c := range cells {
		if c.Loc != want[i] {
			t.Errorf("Scan()[%d].Loc = %+v, want %+v", i, c.Loc, want[i])
		}
	}
}

func TestString(t *testing.T) {
	w := New(3)
	w.Put(model.NewLocation(0, 1), model.NewResource(5))
	w.Put(model.NewLocation(1, 0), model.NewLife(3))
	w.Put(model.NewLocation(2, 2), model.NewEgg(20))

	want := ".R.\nL..\n..o"
	if got := w.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
