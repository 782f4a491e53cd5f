package filter

import (
	"strings"

	"github.com/pr-poehali-dev/java-vacancy-bot/internal/models"
)

// experienceMarkers maps each band to the label substrings that select it.
// Labels that contain none of a band's markers never match that band.
var experienceMarkers = map[ExperienceBand][]string{
	ExperienceJunior: {"0-1", "junior"},
	ExperienceMiddle: {"3-5", "middle"},
	ExperienceSenior: {"5+", "7+", "senior"},
}

// Apply returns the jobs that survive every enabled stage of c, in seed
// order. It always starts from jobs and never returns a record that is not
// in jobs.
func Apply(jobs []models.Job, c Criteria) []models.Job {
	results := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if c.Query != "" && !matchesQuery(job, c.Query) {
			continue
		}
		if c.Experience != "" && c.Experience != ExperienceAll && !matchesExperience(job, c.Experience) {
			continue
		}
		if floor := float64(c.MinSalaryThousands) * 1000; floor > 0 && !meetsSalary(job, floor) {
			continue
		}
		results = append(results, job)
	}
	return results
}

func matchesQuery(job models.Job, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(job.Title), q) || strings.Contains(strings.ToLower(job.Company), q) {
		return true
	}
	for _, tag := range job.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func matchesExperience(job models.Job, band ExperienceBand) bool {
	label := strings.ToLower(job.Experience)
	for _, marker := range experienceMarkers[band] {
		if strings.Contains(label, marker) {
			return true
		}
	}
	return false
}

func meetsSalary(job models.Job, floor float64) bool {
	v, ok := SalaryValue(job.Salary)
	return ok && v >= floor
}
