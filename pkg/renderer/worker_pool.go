package renderer

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

const (
	// sharedQueueSize bounds the pending tasks of a shared pool; SubmitTask blocks beyond it
	sharedQueueSize = 256
	// idleWorkerTimeout is handed to the pool constructor; workers live for the whole process
	idleWorkerTimeout = time.Second
)

var (
	sharedPoolsMu sync.Mutex
	sharedPools   = make(map[int]worker.DynamicWorkerPool)
)

// sharedPool returns the process-wide pool with numWorkers workers, creating it
// on first use. Pool workers never exit, so renders must reuse them.
func sharedPool(numWorkers int) worker.DynamicWorkerPool {
	sharedPoolsMu.Lock()
	defer sharedPoolsMu.Unlock()

	pool, ok := sharedPools[numWorkers]
	if !ok {
		pool = worker.NewDynamicWorkerPool(numWorkers, sharedQueueSize, idleWorkerTimeout)
		sharedPools[numWorkers] = pool
		logger.Debugf("started shared worker pool with %d workers", numWorkers)
	}
	return pool
}

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile       *Tile
	TaskID     int            // For deterministic ordering
	PixelStats [][]PixelStats // Shared pixel stats array to write to
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID  int
	Samples int
	Error   error
}

// WorkerPool tracks one render's tile tasks on a shared set of goroutines
type WorkerPool struct {
	pool        worker.DynamicWorkerPool
	renderer    *TileRenderer
	resultQueue chan TileResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool prepares a render able to hold maxTasks results.
// A non-positive numWorkers uses one worker per CPU.
func NewWorkerPool(renderer *TileRenderer, numWorkers, maxTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		pool:        sharedPool(numWorkers),
		renderer:    renderer,
		resultQueue: make(chan TileResult, maxTasks),
		numWorkers:  numWorkers,
	}
}

// SubmitTask queues a tile for rendering
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.wg.Add(1)
	wp.pool.SubmitTask(worker.Task{
		ID: task.TaskID,
		Do: func() (any, error) {
			defer wp.wg.Done()

			samples, err := wp.renderer.RenderTile(task.Tile, task.PixelStats)
			logger.Debugf("tile %d %v done: %d samples", task.Tile.ID, task.Tile.Bounds, samples)
			wp.resultQueue <- TileResult{TaskID: task.TaskID, Samples: samples, Error: err}
			return nil, nil
		},
	})
}

// Wait blocks until every task of this render has finished and closes the result queue
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
	close(wp.resultQueue)
}

// Results returns the result queue; it is closed by Wait
func (wp *WorkerPool) Results() <-chan TileResult {
	return wp.resultQueue
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}
