package scaling

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vfg2006/scaling-engine-api/internal/domain"
)

// BatchResult é o resultado por anúncio de uma avaliação em lote: ou a
// avaliação ou o erro que a impediu.
type BatchResult struct {
	Assessment domain.ScalingAssessment `json:"assessment"`
	Err        error                    `json:"-"`
}

// Failed indica se o anúncio terminou em erro
func (r BatchResult) Failed() bool {
	return r.Err != nil
}

// HistoryLoader carrega o histórico de um anúncio
type HistoryLoader func(ctx context.Context, adName string) ([]domain.AdDailyRecord, error)

// EvaluateAdStatusBatch avalia vários históricos com a configuração padrão
func EvaluateAdStatusBatch(histories map[string][]domain.AdDailyRecord) map[string]BatchResult {
	names := make([]string, 0, len(histories))
	for name := range histories {
		names = append(names, name)
	}
	sort.Strings(names)

	loader := func(_ context.Context, name string) ([]domain.AdDailyRecord, error) {
		return histories[name], nil
	}
	return defaultEvaluator.EvaluateBatch(context.Background(), names, loader, 1)
}

// EvaluateBatch avalia cada anúncio de forma isolada com no máximo workers em
// paralelo. Falhas ao carregar ou avaliar um anúncio viram resultado de erro e
// não interrompem os demais.
func (e *Evaluator) EvaluateBatch(ctx context.Context, adNames []string, load HistoryLoader, workers int) map[string]BatchResult {
	if workers < 1 {
		workers = 1
	}

	results := make(map[string]BatchResult, len(adNames))
	var mu sync.Mutex
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)

	for _, name := range adNames {
		if err := ctx.Err(); err != nil {
			mu.Lock()
			results[name] = e.errorResult(name, err)
			mu.Unlock()
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(adName string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			result := e.evaluateOne(ctx, adName, load)

			mu.Lock()
			results[adName] = result
			mu.Unlock()
		}(name)
	}

	wg.Wait()
	return results
}

func (e *Evaluator) evaluateOne(ctx context.Context, adName string, load HistoryLoader) (result BatchResult) {
	defer func() {
		if r := recover(); r != nil {
			result = e.errorResult(adName, fmt.Errorf("panic ao avaliar anúncio: %v", r))
		}
	}()

	history, err := load(ctx, adName)
	if err != nil {
		return e.errorResult(adName, err)
	}

	return BatchResult{Assessment: e.Evaluate(adName, history)}
}

func (e *Evaluator) errorResult(adName string, err error) BatchResult {
	return BatchResult{
		Assessment: domain.ScalingAssessment{
			AdName:       adName,
			Phase:        domain.PhaseError,
			Status:       domain.StatusError,
			Reason:       err.Error(),
			ErrorMessage: err.Error(),
			Trend:        domain.TrendInsufficient,
		},
		Err: err,
	}
}
