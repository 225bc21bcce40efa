package game

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Manager struct {
	mu    sync.RWMutex
	games map[string]*Game
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*Game)}
}

func (m *Manager) NewGame() *Game {
	m.mu.Lock()
	defer m.mu.Unlock()

	g := New(uuid.NewString())
	m.games[g.ID] = g
	return g
}

// Add 登记一个外面构造好的对局（比如 NewWithBoard）
func (m *Manager) Add(g *Game) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
}

func (m *Manager) Get(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// EvictIdle 删掉 before 之前就没动过的对局，返回被删的 id
func (m *Manager) EvictIdle(before time.Time) []string {
	m.mu.RLock()
	var stale []string
	for id, g := range m.games {
		if g.LastActive().Before(before) {
			stale = append(stale, id)
		}
	}
	m.mu.RUnlock()

	for _, id := range stale {
		m.Remove(id)
	}
	return stale
}

// RunJanitor 每隔 interval 清一次闲置超过 maxIdle 的对局，ctx 结束即返回
func (m *Manager) RunJanitor(ctx context.Context, interval, maxIdle time.Duration) {
	if interval <= 0 || maxIdle <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if ids := m.EvictIdle(now.Add(-maxIdle)); len(ids) > 0 {
				log.Info().Int("evicted", len(ids)).Int("remaining", m.Len()).Msg("idle games removed")
			}
		}
	}
}
