// Package engine implements the per-turn grid transition: the static tile
// pass (hatching and blooming) followed by the sequential life-processing
// pass (death, reproduction, foraging, movement). The engine is pure and
// single-threaded; each turn takes one World value and produces a new one.
package engine

import (
	"github.com/udisondev/lifegrid/internal/model"
	"github.com/udisondev/lifegrid/internal/world"
)

// Engine applies turns under a fixed set of rules.
type Engine struct {
	rules Rules
}

// New creates an engine with the given rules.
func New(rules Rules) *Engine {
	return &Engine{rules: rules}
}

// Rules returns the engine's rule constants.
func (e *Engine) Rules() Rules { return e.rules }

// NextTurn computes the next world state: the static tile pass over the
// prior snapshot, then the life-processing pass over its result. The input
// world is never mutated. An error means a core invariant was violated and
// no partial turn is returned.
func (e *Engine) NextTurn(w world.World) (world.World, error) {
	afterStatic := e.staticPass(w)
	next, err := e.lifePass(w, afterStatic)
	if err != nil {
		return world.World{}, err
	}
	return next, nil
}

// ApplyExogenousGrowth injects amount units of energy at loc: an empty
// cell becomes Resource(amount), a resource gains amount, living and
// dormant organisms are unaffected. Applied by the driver between turns.
func (e *Engine) ApplyExogenousGrowth(w world.World, loc model.Location, amount int) world.World {
	return w.Set(loc, w.Get(loc).GrowExogenous(amount))
}

// IsTerminal reports whether the simulation is over: the summed energy of
// all life tiles is zero and no eggs remain.
func (e *Engine) IsTerminal(w world.World) bool {
	totalLifeEnergy := 0
	for _, c := range w.Scan() {
		switch {
		case c.Tile.IsLife():
			totalLifeEnergy += c.Tile.Energy()
		case c.Tile.IsEgg():
			return false
		}
	}
	return totalLifeEnergy == 0
}
