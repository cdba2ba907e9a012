package engine

import (
	"context"
	"sync"

	"github.com/learn2codblog/AITradingLab-sub000/internal/model"

	"go.uber.org/zap"
)

// FoldRunner executes one fold by index.
type FoldRunner func(ctx context.Context, index int) (*model.Fold, error)

// WorkerPool fans fold jobs out over a fixed set of workers. Results land
// in a slice indexed by fold, so the output is identical to a sequential
// run regardless of scheduling; on failure the lowest failing index wins.
type WorkerPool struct {
	workerCount int
	logger      *zap.Logger
}

func NewWorkerPool(workerCount int, logger *zap.Logger) *WorkerPool {
	if workerCount < 1 {
		workerCount = 1
	}
	return &WorkerPool{
		workerCount: workerCount,
		logger:      logger,
	}
}

func (p *WorkerPool) Run(ctx context.Context, jobs int, run FoldRunner) ([]*model.Fold, error) {
	jobQueue := make(chan int, jobs)
	folds := make([]*model.Fold, jobs)
	errs := make([]error, jobs)

	var wg sync.WaitGroup
	for i := 0; i < p.workerCount; i++ {
		wg.Add(1)
		go p.worker(ctx, &wg, jobQueue, run, folds, errs)
	}
	p.logger.Info("started worker pool", zap.Int("workers", p.workerCount), zap.Int("jobs", jobs))

	for k := 0; k < jobs; k++ {
		jobQueue <- k
	}
	close(jobQueue)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return folds, nil
}

func (p *WorkerPool) worker(ctx context.Context, wg *sync.WaitGroup, jobQueue <-chan int, run FoldRunner, folds []*model.Fold, errs []error) {
	defer wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case k, ok := <-jobQueue:
			if !ok {
				return
			}
			fold, err := run(ctx, k)
			if err != nil {
				errs[k] = err
				continue
			}
			folds[k] = fold
		}
	}
}
