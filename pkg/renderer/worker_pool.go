package renderer

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int // Submission order
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID   int
	Tile     *Tile
	WorkerID int
	Pixels   int
	Duration time.Duration
}

// WorkerPool renders tiles on a fixed number of goroutines
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool; numWorkers <= 0 uses the CPU count
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Run hands every tile to render on some worker and reports each finished tile on results.
// Once ctx is done no further tiles are handed out; tiles already in progress still finish.
// Run returns after all workers have exited, with ctx's error if it stopped early.
func (wp *WorkerPool) Run(ctx context.Context, tiles []*Tile, render func(*Tile) int, results chan<- TileResult) error {
	g, ctx := errgroup.WithContext(ctx)
	tasks := make(chan TileTask)

	g.Go(func() error {
		defer close(tasks)
		for i, tile := range tiles {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case tasks <- TileTask{Tile: tile, TaskID: i}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for id := range wp.numWorkers {
		g.Go(func() error {
			for task := range tasks {
				start := time.Now()
				pixels := render(task.Tile)

				result := TileResult{
					TaskID:   task.TaskID,
					Tile:     task.Tile,
					WorkerID: id,
					Pixels:   pixels,
					Duration: time.Since(start),
				}
				select {
				case results <- result:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	return g.Wait()
}
