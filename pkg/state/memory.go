package state

import (
	"context"
	"sync"

	gametypes "github.com/cbodonnell/snaky/pkg/game/types"
)

type InMemoryStateManager struct {
	lock     sync.RWMutex
	snapshot gametypes.Snapshot
	set      bool
}

func NewInMemoryStateManager() *InMemoryStateManager {
	return &InMemoryStateManager{}
}

func (m *InMemoryStateManager) Get(ctx context.Context) (gametypes.Snapshot, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	if !m.set {
		return gametypes.Snapshot{}, ErrNoSnapshot
	}
	return m.snapshot.Copy(), nil
}

func (m *InMemoryStateManager) Set(ctx context.Context, snapshot gametypes.Snapshot) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.snapshot = snapshot.Copy()
	m.set = true
	return nil
}
