package scheduler

import (
	"context"
	"log"
	"time"
)

// Job is one scheduled unit of work. Jobs report partial failures through
// their own logging; an error here means the whole run failed.
type Job func(ctx context.Context) error

const (
	WeatherInterval    = 6 * time.Hour
	PredictionInterval = 24 * time.Hour
)

type Scheduler struct {
	weatherJob    Job
	predictionJob Job
	quit          chan struct{}
}

func New(weatherJob, predictionJob Job) *Scheduler {
	return &Scheduler{
		weatherJob:    weatherJob,
		predictionJob: predictionJob,
		quit:          make(chan struct{}),
	}
}

// Start launches both timers. Each job also runs once immediately so a fresh
// deployment has data without waiting for the first tick.
func (s *Scheduler) Start() {
	go s.loop("weather sync", WeatherInterval, s.weatherJob)
	go s.loop("price prediction sync", PredictionInterval, s.predictionJob)
}

func (s *Scheduler) Stop() {
	close(s.quit)
}

func (s *Scheduler) loop(name string, every time.Duration, job Job) {
	s.runOnce(name, job)

	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.runOnce(name, job)
		case <-s.quit:
			return
		}
	}
}

// runOnce executes one job invocation. Panics and errors are logged and
// swallowed — a bad run must never take the process down or cancel future
// ticks.
func (s *Scheduler) runOnce(name string, job Job) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("scheduled %s panicked: %v", name, r)
		}
	}()

	start := time.Now()
	if err := job(context.Background()); err != nil {
		log.Printf("scheduled %s failed: %v", name, err)
		return
	}
	log.Printf("scheduled %s completed in %s", name, time.Since(start).Round(time.Millisecond))
}
