package game

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"testing"
	"time"

	queuemocks "github.com/cbodonnell/snaky/mocks/github.com/cbodonnell/snaky/pkg/queue"
	statemocks "github.com/cbodonnell/snaky/mocks/github.com/cbodonnell/snaky/pkg/state"
	"github.com/cbodonnell/snaky/pkg/game/constants"
	"github.com/cbodonnell/snaky/pkg/game/types"
	"github.com/cbodonnell/snaky/pkg/log"
	"github.com/cbodonnell/snaky/pkg/queue"
	"github.com/cbodonnell/snaky/pkg/snake"
	"github.com/cbodonnell/snaky/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0, log.LogLevelTrace)
}

// newTestSession returns a 10x10 session without obstacles, the snake at
// (5,5) heading right and a single food item in the far corner.
func newTestSession(t *testing.T) *Session {
	t.Helper()
	settings := DefaultSettings()
	settings.GridSize = 10
	settings.ObstacleCount = 0
	s, err := NewSession(NewSessionOptions{
		Settings: settings,
		Rand:     rand.New(rand.NewSource(1)),
		Now:      testStart,
	})
	require.NoError(t, err)
	s.food.Set([]types.Food{{Position: types.Position{X: 0, Y: 0}, Kind: types.FoodKindNormal}})
	return s
}

func placeSnake(s *Session, head types.Position, heading types.Direction) {
	s.snake = snake.New(snake.NewSnakeOptions{
		Grid:         s.grid,
		Start:        head,
		Heading:      heading,
		MoveInterval: s.settings.MoveInterval,
		Now:          testStart,
	})
}

func TestGameManager_processInputs(t *testing.T) {
	tests := []struct {
		name     string
		inputs   []types.Input
		wantHead types.Position
		check    func(t *testing.T, snapshot types.Snapshot, before types.Snapshot)
	}{
		{
			name:     "no input keeps heading",
			inputs:   nil,
			wantHead: types.Position{X: 6, Y: 5},
		},
		{
			name: "last direction wins",
			inputs: []types.Input{
				types.DirectionInput(types.DirectionDown),
				types.DirectionInput(types.DirectionUp),
			},
			wantHead: types.Position{X: 5, Y: 4},
		},
		{
			name:     "reversal is dropped",
			inputs:   []types.Input{types.DirectionInput(types.DirectionLeft)},
			wantHead: types.Position{X: 6, Y: 5},
		},
		{
			name:     "pause stops the snake",
			inputs:   []types.Input{types.CommandInput(types.CommandTogglePause)},
			wantHead: types.Position{X: 5, Y: 5},
			check: func(t *testing.T, snapshot types.Snapshot, _ types.Snapshot) {
				assert.True(t, snapshot.Paused)
				assert.Equal(t, types.StatePaused, snapshot.State)
			},
		},
		{
			name: "direction given with pause is dropped",
			inputs: []types.Input{
				types.DirectionInput(types.DirectionUp),
				types.CommandInput(types.CommandTogglePause),
			},
			wantHead: types.Position{X: 5, Y: 5},
			check: func(t *testing.T, snapshot types.Snapshot, _ types.Snapshot) {
				assert.Equal(t, types.DirectionRight, snapshot.Heading)
			},
		},
		{
			name:     "toggle wall mode",
			inputs:   []types.Input{types.CommandInput(types.CommandToggleWallMode)},
			wantHead: types.Position{X: 6, Y: 5},
			check: func(t *testing.T, snapshot types.Snapshot, _ types.Snapshot) {
				assert.False(t, snapshot.WallMode)
			},
		},
		{
			name:     "restart is ignored while running",
			inputs:   []types.Input{types.CommandInput(types.CommandRestart)},
			wantHead: types.Position{X: 6, Y: 5},
			check: func(t *testing.T, snapshot types.Snapshot, before types.Snapshot) {
				assert.Equal(t, before.SessionID, snapshot.SessionID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueue := queuemocks.NewQueue[types.Input](t)
			mockState := statemocks.NewStateManager(t)
			mockQueue.EXPECT().ReadAll().Return(tt.inputs).Once()
			mockState.EXPECT().Set(mock.Anything, mock.Anything).Return(nil).Once()

			session := newTestSession(t)
			before := session.Snapshot()
			gm := NewGameManager(NewGameManagerOptions{
				Session:      session,
				InputQueue:   mockQueue,
				StateManager: mockState,
				Logger:       quietLogger(),
			})

			snapshot, err := gm.Step(context.Background(), testStart.Add(constants.MoveInterval))
			require.NoError(t, err)
			head, ok := snapshot.Head()
			require.True(t, ok)
			assert.Equal(t, tt.wantHead, head)
			if tt.check != nil {
				tt.check(t, snapshot, before)
			}
		})
	}
}

func TestGameManager_Step_restartAfterGameOver(t *testing.T) {
	session := newTestSession(t)
	placeSnake(session, types.Position{X: 9, Y: 5}, types.DirectionRight)

	q := queue.NewInMemoryQueue[types.Input](8)
	sm := state.NewInMemoryStateManager()
	gm := NewGameManager(NewGameManagerOptions{
		Session:      session,
		InputQueue:   q,
		StateManager: sm,
		Logger:       quietLogger(),
	})
	ctx := context.Background()

	over, err := gm.Step(ctx, testStart.Add(constants.MoveInterval))
	require.NoError(t, err)
	assert.True(t, over.GameOver)

	// ticks and intents are ignored once the game is over
	require.NoError(t, q.Enqueue(types.DirectionInput(types.DirectionUp)))
	still, err := gm.Step(ctx, testStart.Add(2*constants.MoveInterval))
	require.NoError(t, err)
	assert.True(t, still.GameOver)
	assert.Equal(t, over.Snake, still.Snake)

	require.NoError(t, q.Enqueue(types.CommandInput(types.CommandRestart)))
	restarted, err := gm.Step(ctx, testStart.Add(3*constants.MoveInterval))
	require.NoError(t, err)
	assert.False(t, restarted.GameOver)
	assert.Equal(t, types.StateRunning, restarted.State)
	assert.NotEqual(t, over.SessionID, restarted.SessionID)
	assert.Equal(t, 0, restarted.Score)
	assert.Equal(t, []types.Segment{{Position: types.Position{X: 5, Y: 5}, Head: true}}, restarted.Snake)

	published, err := sm.Get(ctx)
	require.NoError(t, err)
	assert.True(t, restarted.Equal(published))
}

func TestGameManager_Step_publishError(t *testing.T) {
	mockQueue := queuemocks.NewQueue[types.Input](t)
	mockState := statemocks.NewStateManager(t)
	errPublish := errors.New("store unavailable")
	mockQueue.EXPECT().ReadAll().Return(nil).Once()
	mockState.EXPECT().Set(mock.Anything, mock.Anything).Return(errPublish).Once()

	gm := NewGameManager(NewGameManagerOptions{
		Session:      newTestSession(t),
		InputQueue:   mockQueue,
		StateManager: mockState,
		Logger:       quietLogger(),
	})
	_, err := gm.Step(context.Background(), testStart.Add(constants.MoveInterval))
	assert.ErrorIs(t, err, errPublish)
}

func TestGameManager_Start_stopOnGameOver(t *testing.T) {
	session := newTestSession(t)
	placeSnake(session, types.Position{X: 7, Y: 5}, types.DirectionRight)

	now := testStart
	clock := func() time.Time {
		now = now.Add(constants.MoveInterval)
		return now
	}
	sm := state.NewInMemoryStateManager()
	gm := NewGameManager(NewGameManagerOptions{
		Session:        session,
		InputQueue:     queue.NewInMemoryQueue[types.Input](8),
		StateManager:   sm,
		TickInterval:   time.Millisecond,
		Clock:          clock,
		StopOnGameOver: true,
		Logger:         quietLogger(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, gm.Start(ctx))
	require.NoError(t, ctx.Err(), "manager should stop on game over, not on timeout")

	snapshot, err := sm.Get(ctx)
	require.NoError(t, err)
	assert.True(t, snapshot.GameOver)
	assert.Equal(t, uint64(2), snapshot.Ticks)
	head, _ := snapshot.Head()
	assert.Equal(t, types.Position{X: 9, Y: 5}, head)
}

func TestGameManager_Start_contextDone(t *testing.T) {
	sm := state.NewInMemoryStateManager()
	gm := NewGameManager(NewGameManagerOptions{
		Session:      newTestSession(t),
		InputQueue:   queue.NewInMemoryQueue[types.Input](8),
		StateManager: sm,
		TickInterval: time.Millisecond,
		Logger:       quietLogger(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.NoError(t, gm.Start(ctx))

	_, err := sm.Get(context.Background())
	assert.NoError(t, err)
}

func TestNewGameManager_defaults(t *testing.T) {
	tests := []struct {
		name         string
		tickInterval time.Duration
		want         time.Duration
	}{
		{name: "zero uses tick rate", tickInterval: 0, want: time.Second / time.Duration(constants.TickRate)},
		{name: "negative uses tick rate", tickInterval: -time.Second, want: time.Second / 60},
		{name: "explicit", tickInterval: 5 * time.Millisecond, want: 5 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gm := NewGameManager(NewGameManagerOptions{
				Session:      newTestSession(t),
				InputQueue:   queue.NewInMemoryQueue[types.Input](8),
				StateManager: state.NewInMemoryStateManager(),
				TickInterval: tt.tickInterval,
			})
			assert.Equal(t, tt.want, gm.tickInterval)
			assert.NotNil(t, gm.clock)
			assert.NotNil(t, gm.logger)
		})
	}
}

func TestGameManager_Step_restartDropsEarlierIntents(t *testing.T) {
	tests := []struct {
		name        string
		inputs      []types.Input
		wantPending types.Direction
	}{
		{
			name: "intent before restart",
			inputs: []types.Input{
				types.DirectionInput(types.DirectionUp),
				types.CommandInput(types.CommandRestart),
			},
			wantPending: types.DirectionRight,
		},
		{
			name: "intent after restart",
			inputs: []types.Input{
				types.DirectionInput(types.DirectionUp),
				types.CommandInput(types.CommandRestart),
				types.DirectionInput(types.DirectionDown),
			},
			wantPending: types.DirectionDown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := newTestSession(t)
			placeSnake(session, types.Position{X: 9, Y: 5}, types.DirectionRight)
			q := queue.NewInMemoryQueue[types.Input](8)
			gm := NewGameManager(NewGameManagerOptions{
				Session:      session,
				InputQueue:   q,
				StateManager: state.NewInMemoryStateManager(),
				Logger:       quietLogger(),
			})
			ctx := context.Background()

			over, err := gm.Step(ctx, testStart.Add(constants.MoveInterval))
			require.NoError(t, err)
			require.True(t, over.GameOver)

			for _, input := range tt.inputs {
				require.NoError(t, q.Enqueue(input))
			}
			restarted, err := gm.Step(ctx, testStart.Add(2*constants.MoveInterval))
			require.NoError(t, err)
			assert.Equal(t, types.StateRunning, restarted.State)
			assert.NotEqual(t, over.SessionID, restarted.SessionID)
			assert.Equal(t, tt.wantPending, session.snake.PendingHeading())
		})
	}
}
