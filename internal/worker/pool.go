// Package worker provides a worker pool for counting positions in parallel.
package worker

import "sync"

// WorkItem is a position to be processed. Each item is parsed into its own
// board by the worker, so no board is shared between goroutines.
type WorkItem struct {
	FEN   string
	Depth int
	Index int // Original index for ordering results
}

// ProcessResult is the outcome of processing one position.
type ProcessResult struct {
	Index  int
	FEN    string
	Nodes  uint64
	Divide map[string]uint64 // Nodes below each root move, when requested
	Error  error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a fixed set of goroutines applying a ProcessFunc.
type Pool struct {
	numWorkers  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
}

// NewPool creates a pool with numWorkers goroutines and the given channel
// buffer size. Values below one are raised to one.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Pool{
		numWorkers:  numWorkers,
		workChan:    make(chan WorkItem, bufferSize),
		resultChan:  make(chan ProcessResult, bufferSize),
		processFunc: processFunc,
	}
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Close closes the work channel, waits for the workers and then closes
// the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// Run processes items on a fresh pool and returns the results in item order.
func Run(numWorkers int, items []WorkItem, processFunc ProcessFunc) []ProcessResult {
	p := NewPool(numWorkers, len(items), processFunc)
	p.Start()
	for _, item := range items {
		p.Submit(item)
	}
	go p.Close()

	byIndex := make(map[int]ProcessResult, len(items))
	for r := range p.Results() {
		byIndex[r.Index] = r
	}

	results := make([]ProcessResult, 0, len(byIndex))
	for _, item := range items {
		if r, ok := byIndex[item.Index]; ok {
			results = append(results, r)
		}
	}
	return results
}
