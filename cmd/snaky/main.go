package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/snaky/pkg/autopilot"
	"github.com/cbodonnell/snaky/pkg/game"
	"github.com/cbodonnell/snaky/pkg/game/constants"
	"github.com/cbodonnell/snaky/pkg/game/types"
	"github.com/cbodonnell/snaky/pkg/log"
	"github.com/cbodonnell/snaky/pkg/queue"
	"github.com/cbodonnell/snaky/pkg/state"
	"github.com/cbodonnell/snaky/pkg/workers"
)

func main() {
	gridSize := flag.Int("grid-size", constants.GridSize, "Width and height of the grid")
	obstacleCount := flag.Int("obstacles", constants.ObstacleCount, "Number of moving obstacles")
	wallMode := flag.Bool("wall-mode", true, "Make the grid boundary lethal instead of wrapping")
	seed := flag.Int64("seed", 0, "Random seed, 0 for a time based seed")
	duration := flag.Duration("duration", 30*time.Second, "How long to run, 0 to run until interrupted")
	tickRate := flag.Int("tick-rate", constants.TickRate, "Game loop iterations per second")
	useAutopilot := flag.Bool("autopilot", true, "Steer the snake toward food automatically")
	restart := flag.Bool("restart", false, "Restart automatically after game over (autopilot only)")
	stopOnGameOver := flag.Bool("stop-on-game-over", true, "Exit once the game is over")
	reportInterval := flag.Duration("report-interval", 5*time.Second, "Interval between status lines")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	if *tickRate <= 0 {
		panic(fmt.Sprintf("Tick rate must be positive, got %d", *tickRate))
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Info("Using seed %d", *seed)

	settings := game.DefaultSettings()
	settings.GridSize = *gridSize
	settings.ObstacleCount = *obstacleCount
	settings.WallMode = *wallMode

	session, err := game.NewSession(game.NewSessionOptions{
		Settings: settings,
		Rand:     rand.New(rand.NewSource(*seed)),
		Now:      time.Now(),
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create session: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	inputQueue := queue.NewInMemoryQueue[types.Input](constants.InputQueueSize)
	stateManager := state.NewInMemoryStateManager()

	if *useAutopilot {
		pilot := autopilot.NewPilot(autopilot.NewPilotOptions{
			StateManager:      stateManager,
			InputQueue:        inputQueue,
			RestartOnGameOver: *restart,
		})
		go func() {
			if err := pilot.Run(ctx); err != nil {
				log.Error("Autopilot stopped: %v", err)
			}
		}()
	}

	statsWorker := workers.NewStatsWorker(workers.NewStatsWorkerOptions{
		StateManager: stateManager,
		Interval:     *reportInterval,
	})
	go statsWorker.Start(ctx)

	gameManager := game.NewGameManager(game.NewGameManagerOptions{
		Session:        session,
		InputQueue:     inputQueue,
		StateManager:   stateManager,
		TickInterval:   time.Second / time.Duration(*tickRate),
		StopOnGameOver: *stopOnGameOver && !*restart,
	})

	log.Info("Starting game manager")
	if err := gameManager.Start(ctx); err != nil {
		panic(fmt.Sprintf("Game manager stopped: %v", err))
	}

	final, err := stateManager.Get(context.Background())
	if errors.Is(err, state.ErrNoSnapshot) {
		return
	}
	if err != nil {
		panic(fmt.Sprintf("Failed to get final snapshot: %v", err))
	}
	stats := statsWorker.Observe(final)
	log.Info("Final board:\n%s", final.Board())
	log.Info("Played %d sessions, %d moves, best score %d", stats.Sessions, stats.Moves, stats.BestScore)
}
