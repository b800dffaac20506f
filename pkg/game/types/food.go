package types

import "fmt"

type FoodKind uint8

const (
	FoodKindNormal FoodKind = iota
	FoodKindSuper
	FoodKindSlow
)

// ScoreDelta returns the points awarded for eating food of this kind.
func (k FoodKind) ScoreDelta() int {
	switch k {
	case FoodKindNormal:
		return 10
	case FoodKindSuper:
		return 20
	case FoodKindSlow:
		return 5
	default:
		return 0
	}
}

// SpeedMultiplier returns the snake speed multiplier the food applies,
// and false when eating it leaves the multiplier untouched.
func (k FoodKind) SpeedMultiplier() (float64, bool) {
	if k == FoodKindSlow {
		return 0.8, true
	}
	return 0, false
}

func (k FoodKind) String() string {
	switch k {
	case FoodKindNormal:
		return "normal"
	case FoodKindSuper:
		return "super"
	case FoodKindSlow:
		return "slow"
	default:
		return fmt.Sprintf("FoodKind(%d)", uint8(k))
	}
}

type Food struct {
	Position Position `json:"position"`
	Kind     FoodKind `json:"kind"`
}
