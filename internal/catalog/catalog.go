// Package catalog assembles the fixed collection of job postings shown by the
// board. The collection is loaded once at startup and never changes.
package catalog

import (
	"context"
	"fmt"
	"sync"

	"github.com/pr-poehali-dev/java-vacancy-bot/internal/logger"
	"github.com/pr-poehali-dev/java-vacancy-bot/internal/models"
)

type Source interface {
	Name() string
	Load(ctx context.Context) ([]models.Job, error)
}

type Catalog struct {
	sources []Source
}

func New(sources ...Source) *Catalog {
	return &Catalog{sources: sources}
}

// Load reads every source and concatenates the results in source order.
// A job whose ID was already seen is dropped, so the returned slice never
// holds two postings with the same ID.
func (c *Catalog) Load(ctx context.Context) ([]models.Job, error) {
	log := logger.Component("catalog")

	var (
		wg      sync.WaitGroup
		batches = make([][]models.Job, len(c.sources))
		errs    = make([]error, len(c.sources))
	)

	for i, source := range c.sources {
		wg.Add(1)
		go func(i int, s Source) {
			defer wg.Done()
			batches[i], errs[i] = s.Load(ctx)
		}(i, source)
	}
	wg.Wait()

	seen := make(map[int]bool)
	var jobs []models.Job
	for i, batch := range batches {
		name := c.sources[i].Name()
		if errs[i] != nil {
			return nil, fmt.Errorf("loading %s: %w", name, errs[i])
		}
		for _, job := range batch {
			if err := validate(job); err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			if seen[job.ID] {
				log.Warn().Str("source", name).Int("id", job.ID).Msg("Skipping duplicate job id")
				continue
			}
			seen[job.ID] = true
			jobs = append(jobs, job)
		}
		log.Debug().Str("source", name).Int("job_count", len(batch)).Msg("Loaded source")
	}

	log.Info().Int("job_count", len(jobs)).Msg("Catalog ready")
	return jobs, nil
}

func validate(job models.Job) error {
	if job.Title == "" {
		return fmt.Errorf("job %d has no title", job.ID)
	}
	return nil
}
