package engine

import (
	"github.com/udisondev/lifegrid/internal/model"
	"github.com/udisondev/lifegrid/internal/world"
)

// staticPass computes a new tile for every cell using only the prior
// snapshot. No cell's result depends on another cell's result, so the
// scan order here carries no meaning (unlike the life pass).
func (e *Engine) staticPass(prev world.World) world.World {
	next := world.New(prev.Size())
	for _, c := range prev.Scan() {
		next.Put(c.Loc, e.staticTile(prev, c.Loc, c.Tile))
	}
	return next
}

// staticTile is the per-cell rule of the static pass.
func (e *Engine) staticTile(prev world.World, loc model.Location, tile model.Tile) model.Tile {
	switch tile.Kind() {
	case model.KindLife, model.KindResource:
		// Life is handled by the life pass; resources only change through
		// foraging and exogenous growth.
		return tile

	case model.KindEgg:
		if steps := tile.HatchSteps(); steps == 1 {
			return model.NewLife(e.rules.StartingLifeEnergy)
		}
		return model.NewEgg(tile.HatchSteps() - 1)

	case model.KindEmpty:
		return e.bloom(prev, loc)

	default:
		return tile
	}
}

// bloom decides whether an empty cell spontaneously becomes a resource.
// A life neighbor suppresses blooming entirely; otherwise exactly
// BloomNeighborCount resource neighbors yield Resource(1), and a summed
// neighbor energy of at least BloomEnergyThreshold yields Resource(2).
func (e *Engine) bloom(prev world.World, loc model.Location) model.Tile {
	if _, ok := prev.FirstNeighborMatching(loc, model.Tile.IsLife); ok {
		return model.Empty()
	}

	count, sum := 0, 0
	for _, n := range prev.Neighbors(loc) {
		if n.Tile.IsResource() {
			count++
			sum += n.Tile.Energy()
		}
	}

	switch {
	case count == e.rules.BloomNeighborCount:
		return model.NewResource(1)
	case sum >= e.rules.BloomEnergyThreshold:
		return model.NewResource(2)
	default:
		return model.Empty()
	}
}
