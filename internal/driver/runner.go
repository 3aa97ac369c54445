// Package driver owns the simulation loop around the pure engine: it holds
// the current World, requests turns on a timer or on demand, injects random
// exogenous growth events between turns, and stops on terminal worlds.
package driver

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/udisondev/lifegrid/internal/engine"
	"github.com/udisondev/lifegrid/internal/model"
	"github.com/udisondev/lifegrid/internal/world"
)

// Options configures a Runner.
type Options struct {
	TickInterval time.Duration
	MaxTurns     int // 0 means unlimited

	// Per-turn probability of one exogenous growth event at a uniformly
	// random location, with a uniform amount in [1, GrowthMaxAmount].
	GrowthChance    float64
	GrowthMaxAmount int

	Seed int64 // 0 means time-based
}

// Runner drives the engine turn by turn. The current World is replaced
// atomically between turns; readers use Snapshot.
type Runner struct {
	eng    *engine.Engine
	opts   Options
	rng    *rand.Rand
	stopCh chan struct{}

	mu      sync.RWMutex
	current world.World
	turn    int
}

// New creates a runner starting from the given world.
func New(eng *engine.Engine, start world.World, opts Options) *Runner {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Runner{
		eng:     eng,
		opts:    opts,
		rng:     rand.New(rand.NewSource(seed)),
		stopCh:  make(chan struct{}),
		current: start,
	}
}

// Snapshot returns the current world and turn counter. The returned World
// is immutable by contract; callers must not Put into it.
func (r *Runner) Snapshot() (world.World, int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current, r.turn
}

// Start runs turns on the configured interval until the context is
// canceled, Stop is called, the world turns terminal, or MaxTurns is
// reached (blocks for the whole run).
func (r *Runner) Start(ctx context.Context) error {
	ticker := time.NewTicker(r.opts.TickInterval)
	defer ticker.Stop()

	slog.Info("simulation started",
		"interval", r.opts.TickInterval,
		"max_turns", r.opts.MaxTurns)

	for {
		select {
		case <-ctx.Done():
			slog.Info("simulation stopping", "turn", r.currentTurn())
			return ctx.Err()

		case <-r.stopCh:
			slog.Info("simulation stopped", "turn", r.currentTurn())
			return nil

		case <-ticker.C:
			done, err := r.step()
			if err != nil {
				return err
			}
			if done {
				return nil
			}
		}
	}
}

// Stop stops a running simulation.
func (r *Runner) Stop() {
	close(r.stopCh)
}

// RunTurns advances the simulation by up to n turns without a ticker
// (manual stepping). It returns early on a terminal world.
func (r *Runner) RunTurns(n int) error {
	for i := 0; i < n; i++ {
		done, err := r.step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	return nil
}

// step computes one turn, applies at most one growth event, and commits
// the result. It reports done=true when the run is over.
func (r *Runner) step() (bool, error) {
	current, turn := r.Snapshot()

	next, err := r.eng.NextTurn(current)
	if err != nil {
		return false, fmt.Errorf("turn %d: %w", turn+1, err)
	}

	if r.opts.GrowthChance > 0 && r.rng.Float64() < r.opts.GrowthChance {
		loc := model.NewLocation(r.rng.Intn(next.Size()), r.rng.Intn(next.Size()))
		amount := 1 + r.rng.Intn(r.opts.GrowthMaxAmount)
		next = r.eng.ApplyExogenousGrowth(next, loc, amount)
		slog.Debug("exogenous growth",
			"row", loc.Row, "col", loc.Col, "amount", amount)
	}

	r.mu.Lock()
	r.current = next
	r.turn = turn + 1
	r.mu.Unlock()

	r.logTurn(next, turn+1)

	if r.eng.IsTerminal(next) {
		slog.Info("population extinct", "turn", turn+1)
		return true, nil
	}
	if r.opts.MaxTurns > 0 && turn+1 >= r.opts.MaxTurns {
		slog.Info("max turns reached", "turn", turn+1)
		return true, nil
	}
	return false, nil
}

func (r *Runner) currentTurn() int {
	_, turn := r.Snapshot()
	return turn
}

func (r *Runner) logTurn(w world.World, turn int) {
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	lives, eggs, resources, lifeEnergy := 0, 0, 0, 0
	for _, c := range w.Scan() {
		switch {
		case c.Tile.IsLife():
			lives++
			lifeEnergy += c.Tile.Energy()
		case c.Tile.IsEgg():
			eggs++
		case c.Tile.IsResource():
			resources++
		}
	}
	slog.Debug("turn complete",
		"turn", turn,
		"lives", lives,
		"life_energy", lifeEnergy,
		"eggs", eggs,
		"resources", resources)
	slog.Debug("grid\n" + w.String())
}
