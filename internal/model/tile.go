package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState means an operation expecting a specific tile variant
	// was invoked on a different one. Core invariant violation, fatal.
	ErrInvalidState = errors.New("tile is not in the expected state")
)

// TileKind tags the tile variant. The set is closed: every transition in
// the engine switches exhaustively over these four values.
type TileKind uint8

const (
	KindEmpty TileKind = iota
	KindResource
	KindLife
	KindEgg
)

// String returns the kind name for logs and errors.
func (k TileKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindResource:
		return "resource"
	case KindLife:
		return "life"
	case KindEgg:
		return "egg"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Tile is the state of one grid cell: Empty, Resource(energy), Life(energy)
// or Egg(stepsToHatch). Value type; the zero value is Empty.
type Tile struct {
	kind  TileKind
	value int // energy for Resource/Life, stepsToHatch for Egg
}

// Empty returns the unoccupied tile.
func Empty() Tile {
	return Tile{}
}

// NewResource creates a harvestable energy store.
func NewResource(energy int) Tile {
	return Tile{kind: KindResource, value: energy}
}

// NewLife creates a living organism with the given energy.
func NewLife(energy int) Tile {
	return Tile{kind: KindLife, value: energy}
}

// NewEgg creates a dormant organism hatching after steps turns.
func NewEgg(steps int) Tile {
	return Tile{kind: KindEgg, value: steps}
}

// Kind returns the variant tag.
func (t Tile) Kind() TileKind { return t.kind }

func (t Tile) IsEmpty() bool    { return t.kind == KindEmpty }
func (t Tile) IsResource() bool { return t.kind == KindResource }
func (t Tile) IsLife() bool     { return t.kind == KindLife }
func (t Tile) IsEgg() bool      { return t.kind == KindEgg }

// Energy returns the payload energy for Resource and Life, 0 otherwise.
func (t Tile) Energy() int {
	switch t.kind {
	case KindResource, KindLife:
		return t.value
	default:
		return 0
	}
}

// HatchSteps returns the remaining hatch countdown for Egg, 0 otherwise.
func (t Tile) HatchSteps() int {
	if t.kind == KindEgg {
		return t.value
	}
	return 0
}

// GrowExogenous applies an external energy injection: Empty becomes
// Resource(amount), Resource gains amount. Life and Egg reject external
// energy and are returned unchanged.
func (t Tile) GrowExogenous(amount int) Tile {
	switch t.kind {
	case KindEmpty:
		return NewResource(amount)
	case KindResource:
		return NewResource(t.value + amount)
	default:
		return t
	}
}

// GrantEnergy gives a living organism one unit of energy. Calling it on
// anything but Life violates the contract: it is only ever invoked on a
// location already confirmed to hold Life.
func (t Tile) GrantEnergy() (Tile, error) {
	if t.kind != KindLife {
		return t, fmt.Errorf("grant energy on %s tile: %w", t.kind, ErrInvalidState)
	}
	return NewLife(t.value + 1), nil
}

// Rune returns a single-character representation for grid dumps.
func (t Tile) Rune() rune {
	switch t.kind {
	case KindResource:
		return 'R'
	case KindLife:
		return 'L'
	case KindEgg:
		return 'o'
	default:
		return '.'
	}
}

// String returns a compact human-readable form, e.g. "L5" or "o3".
func (t Tile) String() string {
	switch t.kind {
	case KindEmpty:
		return "."
	default:
		return fmt.Sprintf("%c%d", t.Rune(), t.value)
	}
}
