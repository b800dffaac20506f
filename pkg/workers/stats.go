package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/cbodonnell/snaky/pkg/game/types"
	"github.com/cbodonnell/snaky/pkg/log"
	"github.com/cbodonnell/snaky/pkg/state"
)

// Stats summarises every session a worker has observed.
type Stats struct {
	Sessions  int
	GamesOver int
	BestScore int
	LastScore int
	Moves     uint64
}

// StatsWorker periodically samples the published snapshot, keeps running
// totals across sessions and logs a status line.
type StatsWorker struct {
	stateManager state.StateManager
	interval     time.Duration
	logger       *log.Logger

	lock        sync.Mutex
	stats       Stats
	lastSession string
	lastTicks   uint64
	lastOver    bool
}

type NewStatsWorkerOptions struct {
	StateManager state.StateManager
	Interval     time.Duration
	Logger       *log.Logger
}

func NewStatsWorker(opts NewStatsWorkerOptions) *StatsWorker {
	interval := opts.Interval
	if interval <= 0 {
		interval = time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default().With("stats")
	}
	return &StatsWorker{
		stateManager: opts.StateManager,
		interval:     interval,
		logger:       logger,
	}
}

func (w *StatsWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snapshot, err := w.stateManager.Get(ctx)
			if errors.Is(err, state.ErrNoSnapshot) {
				continue
			}
			if err != nil {
				w.logger.Error("Failed to get current snapshot: %v", err)
				continue
			}
			stats := w.Observe(snapshot)
			w.logger.Info("Session %s %s: score %d, length %d, speed %.2f, best %d over %d sessions",
				snapshot.SessionID, snapshot.State, snapshot.Score, len(snapshot.Snake), snapshot.Speed, stats.BestScore, stats.Sessions)
		}
	}
}

// Observe folds a snapshot into the running totals and returns them.
// Snapshots may be skipped; moves are counted from the tick counter.
func (w *StatsWorker) Observe(snapshot types.Snapshot) Stats {
	w.lock.Lock()
	defer w.lock.Unlock()

	if snapshot.SessionID != w.lastSession {
		w.stats.Sessions++
		w.lastSession = snapshot.SessionID
		w.lastTicks = 0
		w.lastOver = false
	}
	if snapshot.Ticks > w.lastTicks {
		w.stats.Moves += snapshot.Ticks - w.lastTicks
		w.lastTicks = snapshot.Ticks
	}
	if snapshot.GameOver && !w.lastOver {
		w.stats.GamesOver++
		w.lastOver = true
	}
	w.stats.LastScore = snapshot.Score
	w.stats.BestScore = max(w.stats.BestScore, snapshot.Score)
	return w.stats
}

func (w *StatsWorker) Stats() Stats {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.stats
}
