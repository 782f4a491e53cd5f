// Package session holds the per-browser state of the job board: the current
// criteria and the result list derived from them.
package session

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/pr-poehali-dev/java-vacancy-bot/internal/filter"
	"github.com/pr-poehali-dev/java-vacancy-bot/internal/logger"
	"github.com/pr-poehali-dev/java-vacancy-bot/internal/models"
)

// View is one page view. Every filter change recomputes Results from the
// full seed; EnableLocation instead reorders whatever is currently shown, so
// a later recompute drops the distance order while LocationEnabled stays on.
type View struct {
	mu       sync.Mutex
	seed     []models.Job
	criteria filter.Criteria
	results  []models.Job
	log      zerolog.Logger
}

// Snapshot is a consistent copy of a view's state.
type Snapshot struct {
	Criteria filter.Criteria `json:"criteria"`
	Jobs     []models.Job    `json:"jobs"`
}

func NewView(seed []models.Job) *View {
	v := &View{
		seed:     seed,
		criteria: filter.DefaultCriteria(),
		log:      logger.Component("view"),
	}
	v.results = filter.Apply(v.seed, v.criteria)
	return v
}

func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

// snapshotLocked copies the state; v.mu must be held.
func (v *View) snapshotLocked() Snapshot {
	jobs := make([]models.Job, len(v.results))
	copy(jobs, v.results)
	return Snapshot{Criteria: v.criteria, Jobs: jobs}
}

// Search submits a new query.
func (v *View) Search(query string) Snapshot {
	return v.update(func(c *filter.Criteria) { c.Query = query })
}

// SetMinSalary moves the salary slider; the value is clamped and snapped to
// the slider's step.
func (v *View) SetMinSalary(thousands int) Snapshot {
	return v.update(func(c *filter.Criteria) { c.MinSalaryThousands = filter.ClampSalary(thousands) })
}

func (v *View) SetExperience(band filter.ExperienceBand) Snapshot {
	return v.update(func(c *filter.Criteria) { c.Experience = band })
}

// EnableLocation turns on the location flag and sorts the jobs currently on
// screen by distance. Calling it again re-sorts the current list.
func (v *View) EnableLocation() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.criteria.LocationEnabled = true
	v.results = filter.SortByDistance(v.results)
	v.log.Debug().Int("job_count", len(v.results)).Msg("Sorted by distance")
	return v.snapshotLocked()
}

// ToggleNotifications flips the notifications flag. It has no effect on the
// result list.
func (v *View) ToggleNotifications() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.criteria.NotificationsEnabled = !v.criteria.NotificationsEnabled
	return v.snapshotLocked()
}

func (v *View) update(change func(*filter.Criteria)) Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	next := v.criteria
	change(&next)
	v.criteria = next
	v.results = filter.Apply(v.seed, next)
	v.log.Debug().
		Str("query", next.Query).
		Int("min_salary_k", next.MinSalaryThousands).
		Str("experience", string(next.Experience)).
		Int("job_count", len(v.results)).
		Msg("Recomputed results")
	return v.snapshotLocked()
}
