package board

import (
	"context"
	"fmt"
	"io"
	"log"
)

// LoadResult describes what Load produced.
type LoadResult struct {
	Tasks []Task
	// Fallback is true when the built-in dataset replaced the source.
	Fallback bool
	// Err is the load failure that triggered the fallback, if any.
	Err error
}

// Load reads tasks from source. It never fails: when the source cannot be
// fetched or decoded, the failure is logged and FallbackTasks is returned.
func Load(ctx context.Context, source Source, logger *log.Logger) LoadResult {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	tasks, err := fetchTasks(ctx, source)
	if err != nil {
		logger.Printf("error loading data: %v; using built-in sample data", err)
		return LoadResult{Tasks: FallbackTasks(), Fallback: true, Err: err}
	}
	normalizeStatuses(tasks, logger)
	return LoadResult{Tasks: tasks}
}

func fetchTasks(ctx context.Context, source Source) ([]Task, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: no source configured", ErrDataUnavailable)
	}
	data, err := source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}
	return Decode(data, source.Format())
}

func normalizeStatuses(tasks []Task, logger *log.Logger) {
	for i := range tasks {
		if tasks[i].Status.IsValid() {
			continue
		}
		logger.Printf("task %q has unknown status %q; showing it as %s", tasks[i].ID, tasks[i].Status, StatusPending)
		tasks[i].Status = StatusPending
	}
}
