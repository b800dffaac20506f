package constants

import "time"

const (
	// GridSize is the number of cells along each side of the board
	GridSize int = 50

	// MoveInterval is the minimum time between two snake moves
	MoveInterval time.Duration = 50 * time.Millisecond
	// ObstacleMoveInterval is the time between two obstacle relocations
	ObstacleMoveInterval time.Duration = 5 * time.Second
	// ObstacleCount is the number of obstacles placed on reset
	ObstacleCount int = 10

	// BaseSpeed is the snake speed before score and food effects
	BaseSpeed float64 = 8.0
	// SpeedScoreStep is the score needed for each speed increase
	SpeedScoreStep int = 20
	// SpeedStepIncrease is the speed factor gained per SpeedScoreStep
	SpeedStepIncrease float64 = 0.1
	// MaxSpeedFactor caps the score-driven speed factor
	MaxSpeedFactor float64 = 1.5

	// MinFoodBatch is the smallest number of food items placed at once
	MinFoodBatch int = 5
	// MaxFoodBatch is the largest number of food items placed at once
	MaxFoodBatch int = 10
	// NormalFoodRatio is the share of a batch that is normal food
	NormalFoodRatio float64 = 0.6
	// SuperFoodRatio is the share of a batch that is super food.
	// Slow food takes whatever is left.
	SuperFoodRatio float64 = 0.2

	// MaxPlacementAttempts bounds the random draws spent placing one item
	MaxPlacementAttempts int = 1000

	// TickRate is the number of driver iterations per second
	TickRate int = 60
	// InputQueueSize is the buffer size of the input queue
	InputQueueSize int = 1024
)
