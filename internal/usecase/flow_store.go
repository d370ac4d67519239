package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"guestlink/internal/pkg/clock"
	"guestlink/internal/usecase/metrics"

	"github.com/google/uuid"
)

type storedFlow struct {
	flow      *Flow
	expiresAt time.Time
}

// FlowStore keeps flow instances in memory. Entries expire after ttl without access.
type FlowStore struct {
	mu      sync.RWMutex
	flows   map[uuid.UUID]*storedFlow
	ttl     time.Duration
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewFlowStore(ttl time.Duration, clk clock.Clock, m *metrics.Metrics) *FlowStore {
	return &FlowStore{
		flows:   make(map[uuid.UUID]*storedFlow),
		ttl:     ttl,
		clock:   clk,
		metrics: m,
	}
}

func (s *FlowStore) Put(f *Flow) {
	s.mu.Lock()
	s.flows[f.ID()] = &storedFlow{flow: f, expiresAt: s.clock.Now().Add(s.ttl)}
	n := len(s.flows)
	s.mu.Unlock()

	s.metrics.SetActiveFlows(n)
}

// Get returns the flow and extends its lifetime.
func (s *FlowStore) Get(id uuid.UUID) (*Flow, bool) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.flows[id]
	if !ok {
		return nil, false
	}
	if now.After(entry.expiresAt) {
		delete(s.flows, id)
		s.metrics.SetActiveFlows(len(s.flows))
		return nil, false
	}
	entry.expiresAt = now.Add(s.ttl)
	return entry.flow, true
}

func (s *FlowStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.flows)
}

// Sweep removes expired flows and returns how many were removed.
func (s *FlowStore) Sweep() int {
	now := s.clock.Now()

	s.mu.Lock()
	removed := 0
	for id, entry := range s.flows {
		if now.After(entry.expiresAt) {
			delete(s.flows, id)
			removed++
		}
	}
	n := len(s.flows)
	s.mu.Unlock()

	s.metrics.SetActiveFlows(n)
	return removed
}

// Run sweeps every interval until ctx is done.
func (s *FlowStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Sweep(); removed > 0 {
				slog.Debug("expired registration flows removed", "count", removed)
			}
		}
	}
}
