package filter

import (
	"sort"

	"github.com/pr-poehali-dev/java-vacancy-bot/internal/models"
)

// SortByDistance returns a copy of jobs ordered by ascending DistanceValue.
// The sort is stable, so jobs with equal keys keep their relative order.
// Callers pass the result currently on screen, not the seed catalog.
func SortByDistance(jobs []models.Job) []models.Job {
	sorted := make([]models.Job, len(jobs))
	copy(sorted, jobs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return DistanceValue(sorted[i].Distance) < DistanceValue(sorted[j].Distance)
	})
	return sorted
}
