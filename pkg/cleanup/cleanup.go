// Package cleanup collects shutdown jobs registered during wiring and
// runs them once when the process exits.
package cleanup

import (
	"log/slog"
	"sync"
)

type Job struct {
	Name string
	F    func() error
}

var (
	mu   sync.Mutex
	jobs []*Job
)

func Register(j *Job) {
	mu.Lock()
	defer mu.Unlock()
	jobs = append(jobs, j)
}

// CleanUp runs every registered job in registration order. A failing
// job is logged and does not stop the rest.
func CleanUp() {
	mu.Lock()
	defer mu.Unlock()
	for _, j := range jobs {
		if err := j.F(); err != nil {
			slog.Error("cleanup job failed", slog.String("job", j.Name), slog.String("error", err.Error()))
			continue
		}
		slog.Info("cleanup job finished", slog.String("job", j.Name))
	}
}
