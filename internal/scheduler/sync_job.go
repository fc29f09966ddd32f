package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

// ErrSyncAlreadyRunning é devolvido quando um disparo manual encontra a mesma
// sincronização ainda em execução
var ErrSyncAlreadyRunning = errors.New("sincronização já em andamento")

// AdStatusEvaluator reavalia todos os anúncios com histórico gravado
type AdStatusEvaluator interface {
	EvaluateAll(ctx context.Context) (*domain.EvaluationRun, error)
}

// Reconciler concilia os pedidos e envios gravados
type Reconciler interface {
	Run(ctx context.Context) (*domain.MatchSummary, error)
}

// syncState controla a execução única de uma sincronização
type syncState struct {
	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       string
}

func (s *syncState) begin(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return false
	}
	s.running = true
	s.lastStartedAt = now
	return true
}

func (s *syncState) finish(now time.Time, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.running = false
	s.lastCompletedAt = now
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
}

func (s *syncState) status() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"sync_running":           s.running,
		"last_sync_started_at":   s.lastStartedAt,
		"last_sync_completed_at": s.lastCompletedAt,
		"last_sync_error":        s.lastError,
	}
}
