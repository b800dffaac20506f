package game

import (
	"fmt"
	"time"

	"github.com/cbodonnell/snaky/pkg/game/constants"
)

// Settings holds the tunables of a session.
type Settings struct {
	GridSize             int
	MoveInterval         time.Duration
	ObstacleMoveInterval time.Duration
	ObstacleCount        int
	BaseSpeed            float64
	// WallMode makes the grid boundary lethal; otherwise the grid wraps
	WallMode bool
	// MaxPlacementAttempts bounds random placement of a single item
	MaxPlacementAttempts int
}

// DefaultSettings returns the standard game: a 50x50 grid with lethal
// walls and ten obstacles.
func DefaultSettings() Settings {
	return Settings{
		GridSize:             constants.GridSize,
		MoveInterval:         constants.MoveInterval,
		ObstacleMoveInterval: constants.ObstacleMoveInterval,
		ObstacleCount:        constants.ObstacleCount,
		BaseSpeed:            constants.BaseSpeed,
		WallMode:             true,
		MaxPlacementAttempts: constants.MaxPlacementAttempts,
	}
}

// Validate checks that a session can be built from the settings.
func (s Settings) Validate() error {
	if s.GridSize <= 0 {
		return fmt.Errorf("grid size must be positive, got %d", s.GridSize)
	}
	if s.MoveInterval < 0 {
		return fmt.Errorf("move interval must not be negative, got %s", s.MoveInterval)
	}
	if s.ObstacleMoveInterval <= 0 {
		return fmt.Errorf("obstacle move interval must be positive, got %s", s.ObstacleMoveInterval)
	}
	if s.ObstacleCount < 0 {
		return fmt.Errorf("obstacle count must not be negative, got %d", s.ObstacleCount)
	}
	if s.BaseSpeed <= 0 {
		return fmt.Errorf("base speed must be positive, got %v", s.BaseSpeed)
	}
	if s.MaxPlacementAttempts <= 0 {
		return fmt.Errorf("max placement attempts must be positive, got %d", s.MaxPlacementAttempts)
	}
	// the snake, the obstacles and the largest food batch must all fit
	if need := 1 + s.ObstacleCount + constants.MaxFoodBatch; need > s.GridSize*s.GridSize {
		return fmt.Errorf("grid of %dx%d is too small for %d obstacles and %d food", s.GridSize, s.GridSize, s.ObstacleCount, constants.MaxFoodBatch)
	}
	return nil
}
