package engine

import (
	"log/slog"

	"github.com/udisondev/lifegrid/internal/model"
	"github.com/udisondev/lifegrid/internal/world"
)

// moveTowardBestResource relocates an organism one step toward the most
// attractive resource, or leaves it in place losing one energy when no
// resource exists anywhere. Only reached when no neighbor holds a
// resource (foraging runs first).
func (e *Engine) moveTowardBestResource(w *world.World, loc model.Location, energy int) error {
	target, ok := bestResource(*w, loc)
	if !ok {
		// Nowhere to go: energy spent standing idle. Death, if this drops
		// the organism to zero, happens next turn.
		w.Put(loc, model.NewLife(energy-1))
		return nil
	}

	dest, ok := stepToward(loc, target.Loc)
	if !ok {
		// The target is already within arrival tolerance yet no axis move
		// applies (diagonal adjacency). Resolved as "already adjacent":
		// forage from the target instead of moving.
		slog.Debug("no legal move toward adjacent resource, foraging instead",
			"life_row", loc.Row, "life_col", loc.Col,
			"resource_row", target.Loc.Row, "resource_col", target.Loc.Col)
		return forage(w, loc, target.Loc)
	}

	moved := energy - 1
	if prior := w.Get(dest); prior.IsLife() {
		// Collision merge: the two organisms' energies sum.
		moved += prior.Energy()
	}
	// A prior egg at dest is destroyed by the move.
	w.Put(dest, model.NewLife(moved))
	w.Put(loc, model.Empty())
	return nil
}

// bestResource scores every resource in the grid as energy minus euclidean
// distance from loc and returns the maximum. Ties go to the resource
// appearing last in column-major scan order: the scan accepts any
// candidate scoring at least as high as the current best.
func bestResource(w world.World, loc model.Location) (world.Cell, bool) {
	var (
		best      world.Cell
		bestScore float64
		found     bool
	)
	for _, c := range w.Scan() {
		if !c.Tile.IsResource() {
			continue
		}
		score := float64(c.Tile.Energy()) - loc.Distance(c.Loc)
		if !found || score >= bestScore {
			best, bestScore, found = c, score, true
		}
	}
	return best, found
}

// stepToward returns the one-step destination from life toward target,
// column axis first. It reports false when the organism is already within
// arrival tolerance (distance at most 1 on both axes) and no movement
// branch applies.
func stepToward(life, target model.Location) (model.Location, bool) {
	switch {
	case life.Col > target.Col+1:
		return life.Offset(0, -1), true
	case life.Col < target.Col-1:
		return life.Offset(0, 1), true
	case life.Row > target.Row+1:
		return life.Offset(-1, 0), true
	case life.Row < target.Row-1:
		return life.Offset(1, 0), true
	default:
		return model.Location{}, false
	}
}
