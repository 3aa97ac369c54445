package engine

import "fmt"

// Rules holds the fixed constants governing a simulation. One Rules value
// is shared by every turn of a run; it never changes mid-run.
type Rules struct {
	// StartingLifeEnergy is the energy of a freshly hatched organism and
	// the energy a parent pays when laying an egg.
	StartingLifeEnergy int

	// ReproduceThreshold is the minimum energy at which an organism tries
	// to reproduce instead of foraging.
	ReproduceThreshold int

	// BloomNeighborCount is the exact number of resource neighbors that
	// turns an empty cell into Resource(1).
	BloomNeighborCount int

	// BloomEnergyThreshold is the summed neighbor resource energy that
	// turns an empty cell into Resource(2).
	BloomEnergyThreshold int
}

// DefaultRules returns the reference constants.
func DefaultRules() Rules {
	return Rules{
		StartingLifeEnergy:   10,
		ReproduceThreshold:   50,
		BloomNeighborCount:   4,
		BloomEnergyThreshold: 20,
	}
}

// EggHatchSteps is the countdown a new egg starts with.
func (r Rules) EggHatchSteps() int {
	return 2 * r.StartingLifeEnergy
}

// Validate checks the rule constants are usable.
func (r Rules) Validate() error {
	if r.StartingLifeEnergy <= 0 {
		return fmt.Errorf("starting life energy must be positive, got %d", r.StartingLifeEnergy)
	}
	if r.ReproduceThreshold <= r.StartingLifeEnergy {
		return fmt.Errorf("reproduce threshold %d must exceed starting life energy %d",
			r.ReproduceThreshold, r.StartingLifeEnergy)
	}
	if r.BloomNeighborCount <= 0 || r.BloomNeighborCount > 8 {
		return fmt.Errorf("bloom neighbor count must be in [1,8], got %d", r.BloomNeighborCount)
	}
	if r.BloomEnergyThreshold <= 0 {
		return fmt.Errorf("bloom energy threshold must be positive, got %d", r.BloomEnergyThreshold)
	}
	return nil
}
