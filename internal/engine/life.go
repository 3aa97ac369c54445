package engine

import (
	"fmt"

	"github.com/udisondev/lifegrid/internal/model"
	"github.com/udisondev/lifegrid/internal/world"
)

// lifePass runs the sequential fold over life tiles. Locations are
// captured once from the post-static grid before any mutation, so an
// organism processed later in the scan order sees earlier organisms'
// moves and foraging already applied. A tile that was still an egg in the
// pre-pass snapshot hatched this very turn and acts starting next turn
// only, so it is excluded from the capture.
func (e *Engine) lifePass(prev, afterStatic world.World) (world.World, error) {
	var lifeLocs []model.Location
	for _, c := range afterStatic.Scan() {
		if c.Tile.IsLife() && !prev.Get(c.Loc).IsEgg() {
			lifeLocs = append(lifeLocs, c.Loc)
		}
	}

	working := afterStatic.Clone()
	for _, loc := range lifeLocs {
		if err := e.processLife(&working, loc); err != nil {
			return world.World{}, err
		}
	}
	return working, nil
}

// processLife commits one organism's action to the working world:
// death, then reproduction, then foraging, then movement.
func (e *Engine) processLife(w *world.World, loc model.Location) error {
	tile := w.Get(loc)
	if !tile.IsLife() {
		return fmt.Errorf("captured life at (%d,%d) is now %s: %w",
			loc.Row, loc.Col, tile.Kind(), model.ErrInvalidState)
	}
	energy := tile.Energy()

	if energy <= 0 {
		w.Put(loc, model.Empty())
		return nil
	}

	if energy >= e.rules.ReproduceThreshold {
		if spawn, ok := w.FirstNeighborMatching(loc, model.Tile.IsEmpty); ok {
			w.Put(loc, model.NewLife(energy-e.rules.StartingLifeEnergy))
			w.Put(spawn.Loc, model.NewEgg(e.rules.EggHatchSteps()))
			return nil
		}
		// No room to lay an egg: forage instead.
	}

	if res, ok := w.FirstNeighborMatching(loc, model.Tile.IsResource); ok {
		return forage(w, loc, res.Loc)
	}

	return e.moveTowardBestResource(w, loc, energy)
}

// forage moves one unit of energy from the resource at resLoc to the
// organism at lifeLoc. A Resource(1) is consumed entirely and its cell
// becomes empty.
func forage(w *world.World, lifeLoc, resLoc model.Location) error {
	res := w.Get(resLoc)
	if re := res.Energy(); re > 1 {
		w.Put(resLoc, model.NewResource(re-1))
	} else {
		w.Put(resLoc, model.Empty())
	}

	fed, err := w.Get(lifeLoc).GrantEnergy()
	if err != nil {
		return fmt.Errorf("foraging at (%d,%d): %w", lifeLoc.Row, lifeLoc.Col, err)
	}
	w.Put(lifeLoc, fed)
	return nil
}
