package ai

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// TickManager drives all registered controllers at a fixed rate.
type TickManager struct {
	controllers     sync.Map // map[uint32]Controller
	interval        time.Duration
	ticker          *time.Ticker
	stopCh          chan struct{}
	stopOnce        sync.Once
	controllerCount atomic.Int32 // cached count of controllers (O(1) access)
	ticks           atomic.Uint64
}

// NewTickManager creates new tick manager. Non-positive intervals fall back to one second.
func NewTickManager(interval time.Duration) *TickManager {
	if interval <= 0 {
		interval = time.Second
	}
	return &TickManager{
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Register registers and starts a controller
func (m *TickManager) Register(id uint32, controller Controller) {
	if _, loaded := m.controllers.LoadOrStore(id, controller); loaded {
		slog.Warn("controller already registered", "id", id)
		return
	}
	m.controllerCount.Add(1)
	controller.Start()

	slog.Debug("controller registered", "id", id)
}

// Unregister stops and removes a controller
func (m *TickManager) Unregister(id uint32) {
	value, ok := m.controllers.LoadAndDelete(id)
	if !ok {
		return
	}

	m.controllerCount.Add(-1)

	controller := value.(Controller)
	controller.Stop()

	slog.Debug("controller unregistered", "id", id)
}

// Start runs the tick loop (blocks until context is canceled or Stop is called)
func (m *TickManager) Start(ctx context.Context) error {
	m.ticker = time.NewTicker(m.interval)
	defer m.ticker.Stop()

	slog.Info("tick manager started", "interval", m.interval)

	dt := m.interval.Seconds()
	for {
		select {
		case <-ctx.Done():
			slog.Info("tick manager stopping", "ticks", m.ticks.Load())
			return ctx.Err()

		case <-m.stopCh:
			slog.Info("tick manager stopped", "ticks", m.ticks.Load())
			return nil

		case <-m.ticker.C:
			m.tickAll(dt)
		}
	}
}

// Stop stops the tick loop. Safe to call more than once.
func (m *TickManager) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

// tickAll ticks all registered controllers
func (m *TickManager) tickAll(dt float64) {
	count := 0

	m.controllers.Range(func(_, value any) bool {
		controller := value.(Controller)
		controller.Tick(dt)
		count++
		return true
	})

	m.ticks.Add(1)

	if count > 0 && IsDebugEnabled() {
		slog.Debug("tick completed", "controllers", count, "dt", dt)
	}
}

// Count returns number of registered controllers (O(1) cached count)
func (m *TickManager) Count() int {
	return int(m.controllerCount.Load())
}

// Ticks returns the number of completed ticks
func (m *TickManager) Ticks() uint64 {
	return m.ticks.Load()
}

// GetController returns a registered controller
func (m *TickManager) GetController(id uint32) (Controller, error) {
	value, ok := m.controllers.Load(id)
	if !ok {
		return nil, fmt.Errorf("controller not found for id %d", id)
	}
	return value.(Controller), nil
}
