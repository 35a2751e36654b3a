package analyzer

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	apperrors "github.com/anime-shed/text-insight-go/internal/errors"
	"github.com/anime-shed/text-insight-go/pkg/models"
)

// WorkerPool manages concurrent analysis tasks
type WorkerPool struct {
	workers  int
	jobQueue chan func()
	once     sync.Once
}

// NewWorkerPool creates a new worker pool with the specified number of workers
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &WorkerPool{
		workers:  workers,
		jobQueue: make(chan func(), workers*2),
	}
}

// Start initializes and starts all workers in the pool
func (wp *WorkerPool) Start() {
	wp.once.Do(func() {
		for i := 0; i < wp.workers; i++ {
			go wp.worker()
		}
	})
}

// worker processes jobs from the job queue
func (wp *WorkerPool) worker() {
	for job := range wp.jobQueue {
		job()
	}
}

// Submit adds a job to the worker pool queue
func (wp *WorkerPool) Submit(job func()) {
	wp.jobQueue <- job
}

// Close shuts down the worker pool
func (wp *WorkerPool) Close() {
	close(wp.jobQueue)
}

// BatchRunner applies the dispatcher across an ordered batch of inputs.
// Items are analyzed concurrently but results are index-addressed, so
// output order always matches input order regardless of scheduling. Every
// analyzer is a pure function of its input, so no coordination beyond the
// final wait is needed.
type BatchRunner struct {
	dispatcher   *Dispatcher
	pool         *WorkerPool
	maxBatchSize int
}

// NewBatchRunner creates a batch runner with its own worker pool.
// workers <= 0 uses the CPU count.
func NewBatchRunner(dispatcher *Dispatcher, maxBatchSize, workers int) *BatchRunner {
	pool := NewWorkerPool(workers)
	pool.Start()

	return &BatchRunner{
		dispatcher:   dispatcher,
		pool:         pool,
		maxBatchSize: maxBatchSize,
	}
}

// Run analyzes every item independently. A failing item produces a failure
// response at its position rather than aborting the batch, so the result
// slice always has one entry per input item.
func (r *BatchRunner) Run(items []string, analysisType models.AnalysisType, options AnalysisOptions) (*models.BatchResult, error) {
	if len(items) == 0 {
		return nil, apperrors.NewEmptyBatchError("batch contains no items")
	}
	if len(items) > r.maxBatchSize {
		return nil, apperrors.NewBatchTooLargeError(
			fmt.Sprintf("batch size %d exceeds the limit of %d items", len(items), r.maxBatchSize))
	}

	results := make([]models.AnalysisResponse, len(items))
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		index, content := i, item
		r.pool.Submit(func() {
			defer wg.Done()

			response := r.dispatcher.Dispatch(analysisType, content, options)
			itemIndex := index
			response.Metadata = &models.ResponseMetadata{
				Timestamp:  time.Now().UTC().Format(time.RFC3339),
				TextLength: len(content),
				ItemIndex:  &itemIndex,
			}
			results[index] = response
		})
	}
	wg.Wait()

	successful := 0
	for _, response := range results {
		if response.Success {
			successful++
		}
	}

	return &models.BatchResult{
		Success:         true,
		TotalItems:      len(items),
		SuccessfulItems: successful,
		Results:         results,
		Summary:         summarize(results, analysisType),
	}, nil
}

// Close shuts down the underlying worker pool
func (r *BatchRunner) Close() {
	r.pool.Close()
}

// summarize aggregates statistics over the successful items of a batch
func summarize(results []models.AnalysisResponse, analysisType models.AnalysisType) *models.BatchSummary {
	var successful []models.AnalysisResponse
	for _, response := range results {
		if response.Success {
			successful = append(successful, response)
		}
	}
	if len(successful) == 0 {
		return nil
	}

	summary := &models.BatchSummary{
		SuccessRate: float64(len(successful)) / float64(len(results)),
	}

	totalLength := 0
	for _, response := range successful {
		if response.Metadata != nil {
			totalLength += response.Metadata.TextLength
		}
	}
	summary.AverageTextLength = float64(totalLength) / float64(len(successful))

	switch analysisType {
	case models.AnalysisTypeSentiment:
		distribution := make(map[string]int)
		totalScore := 0.0
		for _, response := range successful {
			if s := response.Result.Sentiment; s != nil {
				distribution[s.Label]++
				totalScore += s.Score
			}
		}
		summary.SentimentDistribution = distribution
		summary.AverageScore = totalScore / float64(len(successful))
	case models.AnalysisTypeText, models.AnalysisTypeComprehensive:
		totalWords := 0
		counted := 0
		for _, response := range successful {
			var stats *models.TextStatsResult
			if response.Result.TextStats != nil {
				stats = response.Result.TextStats
			} else if c := response.Result.Comprehensive; c != nil && c.TextStats != nil {
				stats = c.TextStats
			}
			if stats != nil {
				totalWords += stats.WordCount
				counted++
			}
		}
		if counted > 0 {
			summary.TotalWords = totalWords
			summary.AverageWordCount = float64(totalWords) / float64(counted)
		}
	}

	return summary
}
