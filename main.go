package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hiraku/hondana/internal/api"
	"github.com/hiraku/hondana/internal/core"
	"github.com/hiraku/hondana/internal/jobs"
	"github.com/hiraku/hondana/internal/library"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Initialize the core application components
	app, err := core.New()
	if err != nil {
		log.Fatalf("Fatal error during application setup: %v", err)
	}

	// Materialize covers once on startup, then on the configured interval.
	jobs.StartJobs(app)
	if err := app.JobManager().RunJob(jobs.CoverSweepJob, app); err != nil {
		log.Printf("Warning: startup cover sweep could not start: %v", err)
	}

	// Watch the library roots and notify connected clients when the
	// filesystem settles after a change.
	if app.Config().Library.Watch {
		watcher := library.NewWatcher(app.Config().Library.Paths, func(paths []string) {
			log.Printf("Library changed (%d paths), refreshing covers...", len(paths))
			app.WsHub().BroadcastJSON(map[string]interface{}{
				"event": "library-changed",
				"paths": paths,
			})
			if err := app.JobManager().RunJob(jobs.CoverSweepJob, app); err != nil {
				log.Printf("Warning: cover sweep after library change could not start: %v", err)
			}
		})
		if err := watcher.Start(); err != nil {
			log.Printf("Warning: could not start library watcher: %v", err)
		} else {
			defer watcher.Stop()
		}
	}

	// Setup the API server
	server := api.NewServer(app)
	addr := fmt.Sprintf(":%d", app.Config().Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: server.Router(),
	}

	// --- Graceful Shutdown ---
	// Start the server in a goroutine so it doesn't block.
	go func() {
		log.Printf("Starting web server on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not start server: %v", err)
		}
	}()

	// Wait for an interrupt signal.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Create a context with a timeout to allow existing connections to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
