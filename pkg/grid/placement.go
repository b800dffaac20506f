package grid

import (
	"fmt"
	"math/rand"

	"github.com/cbodonnell/snaky/pkg/game/types"
)

// PlaceRandom draws uniform positions until one is free in occ, giving up
// after maxAttempts draws.
func (g Grid) PlaceRandom(rng *rand.Rand, occ *Occupancy, maxAttempts int) (types.Position, error) {
	for attempts := 0; attempts < maxAttempts; attempts++ {
		p := g.RandomPosition(rng)
		if occ.Free(p) {
			return p, nil
		}
	}
	return types.Position{}, fmt.Errorf("no free cell on %dx%d grid after %d attempts: %w", g.size, g.size, maxAttempts, ErrPlacementExhausted)
}
