package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/lifegrid/internal/model"
	"github.com/udisondev/lifegrid/internal/world"
)

func TestIsTerminal(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name  string
		tiles map[model.Location]model.Tile
		want  bool
	}{
		{
			name:  "empty world",
			tiles: nil,
			want:  true,
		},
		{
			name: "life with energy",
			tiles: map[model.Location]model.Tile{
				{Row: 1, Col: 1}: model.NewLife(3),
			},
			want: false,
		},
		{
			name: "only exhausted life",
			tiles: map[model.Location]model.Tile{
				{Row: 1, Col: 1}: model.NewLife(0),
			},
			want: true,
		},
		{
			name: "egg keeps the run alive",
			tiles: map[model.Location]model.Tile{
				{Row: 1, Col: 1}: model.NewEgg(20),
			},
			want: false,
		},
		{
			name: "exhausted life plus egg",
			tiles: map[model.Location]model.Tile{
				{Row: 0, Col: 0}: model.NewLife(0),
				{Row: 2, Col: 2}: model.NewEgg(1),
			},
			want: false,
		},
		{
			name: "resources alone are terminal",
			tiles: map[model.Location]model.Tile{
				{Row: 1, Col: 1}: model.NewResource(40),
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := world.New(4)
			for loc, tile := range tt.tiles {
				w.Put(loc, tile)
			}
			assert.Equal(t, tt.want, e.IsTerminal(w))
		})
	}
}

func TestApplyExogenousGrowth(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name   string
		before model.Tile
		amount int
		want   model.Tile
	}{
		{name: "empty becomes resource", before: model.Empty(), amount: 4, want: model.NewResource(4)},
		{name: "resource accumulates", before: model.NewResource(2), amount: 4, want: model.NewResource(6)},
		{name: "life unaffected", before: model.NewLife(7), amount: 4, want: model.NewLife(7)},
		{name: "egg unaffected", before: model.NewEgg(10), amount: 4, want: model.NewEgg(10)},
	}

	loc := model.NewLocation(1, 2)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := world.New(4)
			w.Put(loc, tt.before)

			got := e.ApplyExogenousGrowth(w, loc, tt.amount)
			assert.Equal(t, tt.want, got.Get(loc))
			assert.Equal(t, tt.before, w.Get(loc), "input world must stay untouched")
		})
	}
}

func TestRules_Validate(t *testing.T) {
	require.NoError(t, DefaultRules().Validate())

	tests := []struct {
		name   string
		mutate func(*Rules)
	}{
		{name: "zero starting energy", mutate: func(r *Rules) { r.StartingLifeEnergy = 0 }},
		{name: "threshold below starting energy", mutate: func(r *Rules) { r.ReproduceThreshold = 5 }},
		{name: "neighbor count too high", mutate: func(r *Rules) { r.BloomNeighborCount = 9 }},
		{name: "zero energy threshold", mutate: func(r *Rules) { r.BloomEnergyThreshold = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultRules()
			tt.mutate(&r)
			assert.Error(t, r.Validate())
		})
	}
}

func TestRules_EggHatchSteps(t *testing.T) {
	assert.Equal(t, 20, DefaultRules().EggHatchSteps())
}
