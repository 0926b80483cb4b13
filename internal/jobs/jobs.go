package jobs

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/hiraku/hondana/internal/models"
)

// CoverSweepJob is the registered name of the cover materialization sweep.
const CoverSweepJob = "cover-sweep"

// StartJobs registers the background jobs and starts the scheduler.
func StartJobs(app JobContext) {
	app.JobManager().Register(CoverSweepJob, CoverSweep)

	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()

	interval := app.Config().ScanInterval
	if interval == 0 {
		log.Println("Scan interval is 0, scheduled cover sweep is disabled.")
		return
	}
	log.Printf("Scheduling job: '%s' to run every %d minutes.", CoverSweepJob, interval)

	_, err := s.Every(interval).Minutes().Do(func() {
		if err := app.JobManager().RunJob(CoverSweepJob, app); err != nil {
			log.Printf("Scheduled job '%s' could not start: %v", CoverSweepJob, err)
		}
	})
	if err != nil {
		log.Printf("Error scheduling '%s' job: %v", CoverSweepJob, err)
	}

	log.Println("Starting background job scheduler...")
	s.StartAsync()
}

// CoverSweep walks every series in the catalog and materializes missing
// cover files, so interactive listings afterwards hit the fast path. Series
// failures are already isolated inside the library service; the sweep just
// reports progress.
func CoverSweep(ctx JobContext) {
	svc := ctx.Library()
	sendProgress(ctx, CoverSweepJob, "Starting cover sweep...", 0, false)

	names := svc.SeriesNames()
	for i, name := range names {
		if _, err := svc.EnsureCover(name); err != nil {
			log.Printf("Cover sweep failed for series %s: %v", name, err)
		}
		progress := float64(i+1) / float64(len(names)) * 100
		sendProgress(ctx, CoverSweepJob, "Swept cover for "+name, progress, false)
	}

	sendProgress(ctx, CoverSweepJob, "Cover sweep complete.", 100, true)
	log.Println("Job finished:", CoverSweepJob)
}

func sendProgress(ctx JobContext, jobID, message string, progress float64, done bool) {
	ctx.WsHub().BroadcastJSON(models.ProgressUpdate{
		JobID:    jobID,
		Message:  message,
		Progress: progress,
		Done:     done,
	})
}
