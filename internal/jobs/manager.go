package jobs

import (
	"fmt"
	"sync"
	"time"

	"github.com/hiraku/hondana/internal/config"
	"github.com/hiraku/hondana/internal/library"
	"github.com/hiraku/hondana/internal/websocket"
)

// JobContext provides the dependencies a job needs to run. The core.App
// struct implements this interface.
type JobContext interface {
	Config() *config.Config
	Library() *library.Service
	WsHub() *websocket.Hub
	JobManager() *JobManager
}

type jobTask func(ctx JobContext)

type JobStatus struct {
	Name      string    `json:"name"`
	Status    string    `json:"status"` // "idle", "running", "success"
	StartTime time.Time `json:"start_time,omitempty"`
	EndTime   time.Time `json:"end_time,omitempty"`
}

// JobManager serializes background jobs: at most one job runs at a time, so
// a manual trigger cannot race a scheduled one.
type JobManager struct {
	mu      sync.Mutex
	jobs    map[string]jobTask
	status  map[string]*JobStatus
	running bool
}

func NewManager() *JobManager {
	return &JobManager{
		jobs:   make(map[string]jobTask),
		status: make(map[string]*JobStatus),
	}
}

func (jm *JobManager) Register(name string, task jobTask) {
	jm.mu.Lock()
	defer jm.mu.Unlock()
	jm.jobs[name] = task
	jm.status[name] = &JobStatus{Name: name, Status: "idle"}
}

// RunJob starts the named job in a new goroutine. It fails when the job is
// unknown or another job is already running.
func (jm *JobManager) RunJob(name string, ctx JobContext) error {
	jm.mu.Lock()
	defer jm.mu.Unlock()

	task, ok := jm.jobs[name]
	if !ok {
		return fmt.Errorf("unknown job: %s", name)
	}
	if jm.running {
		return fmt.Errorf("another job is already running")
	}
	jm.running = true
	jm.status[name].Status = "running"
	jm.status[name].StartTime = time.Now()

	go func() {
		defer func() {
			jm.mu.Lock()
			jm.running = false
			jm.status[name].Status = "success"
			jm.status[name].EndTime = time.Now()
			jm.mu.Unlock()
		}()
		task(ctx)
	}()
	return nil
}

// Status returns a snapshot of all registered jobs.
func (jm *JobManager) Status() []JobStatus {
	jm.mu.Lock()
	defer jm.mu.Unlock()

	out := make([]JobStatus, 0, len(jm.status))
	for _, st := range jm.status {
		out = append(out, *st)
	}
	return out
}
