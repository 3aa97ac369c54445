package world

import (
	"strings"

	"github.com/udisondev/lifegrid/internal/model"
)

// neighborOffsets is the fixed 8-neighbor visitation order (dRow, dCol).
// The order is load-bearing: it decides which candidate wins ties during
// foraging and reproduction-site selection.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Cell pairs a location with the tile occupying it.
type Cell struct {
	Loc  model.Location
	Tile model.Tile
}

// World is a fixed size×size grid of tiles. Value semantics at turn
// boundaries: Set and Clone never alias the receiver's backing storage.
// In-place mutation (Put) is reserved for turn-scoped working copies.
type World struct {
	size  int
	tiles []model.Tile
}

// New allocates an empty world with the given dimension.
func New(size int) World {
	if size <= 0 {
		size = 1
	}
	return World{size: size, tiles: make([]model.Tile, size*size)}
}

// Size returns the grid dimension.
func (w World) Size() int { return w.size }

// InBounds reports whether loc addresses a cell inside the grid.
func (w World) InBounds(loc model.Location) bool {
	return loc.Row >= 0 && loc.Row < w.size && loc.Col >= 0 && loc.Col < w.size
}

func (w World) index(loc model.Location) int {
	return loc.Row*w.size + loc.Col
}

// Get returns the tile at loc. Out-of-bounds locations resolve to Empty,
// never an error.
func (w World) Get(loc model.Location) model.Tile {
	if !w.InBounds(loc) {
		return model.Empty()
	}
	return w.tiles[w.index(loc)]
}

// Clone returns a deep copy sharing no storage with the receiver.
func (w World) Clone() World {
	tiles := make([]model.Tile, len(w.tiles))
	copy(tiles, w.tiles)
	return World{size: w.size, tiles: tiles}
}

// Set returns a new world with the single cell at loc replaced. The
// receiver is left untouched. Out-of-bounds writes are dropped.
func (w World) Set(loc model.Location, tile model.Tile) World {
	next := w.Clone()
	next.Put(loc, tile)
	return next
}

// Put replaces the cell at loc in place. Only turn-scoped working copies
// may be mutated this way; out-of-bounds writes are dropped.
func (w *World) Put(loc model.Location, tile model.Tile) {
	if !w.InBounds(loc) {
		return
	}
	w.tiles[w.index(loc)] = tile
}

// Neighbors returns the 8 neighboring cells of loc in the fixed visitation
// order, each resolved through Get (off-grid neighbors resolve to Empty
// rather than being omitted).
func (w World) Neighbors(loc model.Location) []Cell {
	cells := make([]Cell, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		n := loc.Offset(off[0], off[1])
		cells = append(cells, Cell{Loc: n, Tile: w.Get(n)})
	}
	return cells
}

// FirstNeighborMatching returns the first neighbor of loc (in the fixed
// order) whose tile satisfies pred.
func (w World) FirstNeighborMatching(loc model.Location, pred func(model.Tile) bool) (Cell, bool) {
	for _, off := range neighborOffsets {
		n := loc.Offset(off[0], off[1])
		if t := w.Get(n); pred(t) {
			return Cell{Loc: n, Tile: t}, true
		}
	}
	return Cell{}, false
}

// Scan returns every cell in column-major order: outer loop over columns
// ascending, inner loop over rows ascending. This order determines the
// processing order of life tiles within a turn and must not change.
func (w World) Scan() []Cell {
	cells := make([]Cell, 0, len(w.tiles))
	for col := 0; col < w.size; col++ {
		for row := 0; row < w.size; row++ {
			loc := model.NewLocation(row, col)
			cells = append(cells, Cell{Loc: loc, Tile: w.tiles[w.index(loc)]})
		}
	}
	return cells
}

// String renders the grid one rune per tile, row 0 on top. Debug aid for
// logs and the terminal dump, not a wire format.
func (w World) String() string {
	var b strings.Builder
	for row := 0; row < w.size; row++ {
		for col := 0; col < w.size; col++ {
			b.WriteRune(w.tiles[w.index(model.NewLocation(row, col))].Rune())
		}
		if row != w.size-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
