package core

import (
	"fmt"
	"log"

	"github.com/hiraku/hondana/internal/config"
	"github.com/hiraku/hondana/internal/jobs"
	"github.com/hiraku/hondana/internal/library"
	"github.com/hiraku/hondana/internal/websocket"
)

// App holds the core components of the application that are shared
// between the server and the CLI.
type App struct {
	cfg        *config.Config
	library    *library.Service
	wsHub      *websocket.Hub
	jobManager *jobs.JobManager
}

// New loads the configuration and sets up a new App instance.
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return NewWithConfig(cfg)
}

// NewWithConfig sets up the core components around an already-loaded
// configuration: the catalog service over the configured roots, the
// websocket hub and the job manager.
func NewWithConfig(cfg *config.Config) (*App, error) {
	if len(cfg.Library.Paths) == 0 {
		return nil, fmt.Errorf("no library roots configured")
	}

	hub := websocket.NewHub()
	go hub.Run()

	app := &App{
		cfg:        cfg,
		library:    library.New(cfg.Library.Paths),
		wsHub:      hub,
		jobManager: jobs.NewManager(),
	}
	log.Println("Core application setup complete.")
	return app, nil
}

func (a *App) Config() *config.Config       { return a.cfg }
func (a *App) Library() *library.Service    { return a.library }
func (a *App) WsHub() *websocket.Hub        { return a.wsHub }
func (a *App) JobManager() *jobs.JobManager { return a.jobManager }
