package state

import (
	"context"
	"errors"

	gametypes "github.com/cbodonnell/snaky/pkg/game/types"
)

// ErrNoSnapshot is returned by Get before the first Set.
var ErrNoSnapshot = errors.New("no snapshot published yet")

// StateManager provides shared access to the latest session snapshot.
// Implementations must be thread-safe.
type StateManager interface {
	// Get returns a copy of the latest snapshot.
	Get(ctx context.Context) (gametypes.Snapshot, error)
	// Set replaces the latest snapshot.
	Set(ctx context.Context, snapshot gametypes.Snapshot) error
}
