package food

import (
	"fmt"
	"math/rand"

	"github.com/cbodonnell/snaky/pkg/game/constants"
	"github.com/cbodonnell/snaky/pkg/game/types"
	"github.com/cbodonnell/snaky/pkg/grid"
)

// Field holds the food currently on the board.
type Field struct {
	grid        grid.Grid
	rng         *rand.Rand
	items       []types.Food
	maxAttempts int
}

// NewFieldOptions contains options for creating a new Field.
type NewFieldOptions struct {
	Grid grid.Grid
	Rand *rand.Rand
	// MaxAttempts bounds the random draws spent placing one item
	MaxAttempts int
}

// NewField creates an empty field. Call Regenerate to place food.
func NewField(opts NewFieldOptions) *Field {
	return &Field{
		grid:        opts.Grid,
		rng:         opts.Rand,
		maxAttempts: opts.MaxAttempts,
	}
}

// BatchKinds splits a batch of n items into kinds: 60% normal, 20% super
// (both rounded down) and the remainder slow.
func BatchKinds(n int) []types.FoodKind {
	normal := int(float64(n) * constants.NormalFoodRatio)
	super := int(float64(n) * constants.SuperFoodRatio)
	slow := n - normal - super

	kinds := make([]types.FoodKind, 0, n)
	for i := 0; i < normal; i++ {
		kinds = append(kinds, types.FoodKindNormal)
	}
	for i := 0; i < super; i++ {
		kinds = append(kinds, types.FoodKindSuper)
	}
	for i := 0; i < slow; i++ {
		kinds = append(kinds, types.FoodKindSlow)
	}
	return kinds
}

// Regenerate replaces the field with a new batch of between MinFoodBatch
// and MaxFoodBatch items, each on a cell free of the snake, the obstacles
// and the rest of the batch. On error the field is left empty.
func (f *Field) Regenerate(snakeBody []types.Position, obstacles []types.Position) error {
	f.items = nil

	n := constants.MinFoodBatch + f.rng.Intn(constants.MaxFoodBatch-constants.MinFoodBatch+1)
	kinds := BatchKinds(n)
	f.rng.Shuffle(len(kinds), func(i, j int) {
		kinds[i], kinds[j] = kinds[j], kinds[i]
	})

	occ := f.grid.NewOccupancy()
	occ.MarkAll(snakeBody, grid.TagSnake)
	occ.MarkAll(obstacles, grid.TagObstacle)

	items := make([]types.Food, 0, n)
	for _, kind := range kinds {
		pos, err := f.grid.PlaceRandom(f.rng, occ, f.maxAttempts)
		if err != nil {
			return fmt.Errorf("failed to place %s food %d of %d: %w", kind, len(items)+1, n, err)
		}
		occ.Mark(pos, grid.TagFood)
		items = append(items, types.Food{Position: pos, Kind: kind})
	}
	f.items = items
	return nil
}

// Set replaces the field contents.
func (f *Field) Set(items []types.Food) {
	f.items = make([]types.Food, len(items))
	copy(f.items, items)
}

// Consume removes the food at p and returns its kind, or false if there
// is none. Applying the effect is left to the caller.
func (f *Field) Consume(p types.Position) (types.FoodKind, bool) {
	for i, item := range f.items {
		if item.Position == p {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return item.Kind, true
		}
	}
	return 0, false
}

func (f *Field) Empty() bool {
	return len(f.items) == 0
}

func (f *Field) Len() int {
	return len(f.items)
}

// Items returns a copy of the food on the board.
func (f *Field) Items() []types.Food {
	out := make([]types.Food, len(f.items))
	copy(out, f.items)
	return out
}

// Positions returns the food positions.
func (f *Field) Positions() []types.Position {
	out := make([]types.Position, len(f.items))
	for i, item := range f.items {
		out[i] = item.Position
	}
	return out
}
