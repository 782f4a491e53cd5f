// Package filter derives the visible job list from the seed catalog and the
// user's current criteria. Everything here is a pure function of its inputs.
package filter

import (
	"fmt"
	"strings"
)

// ExperienceBand is the coarse experience bucket picked in the UI.
type ExperienceBand string

const (
	ExperienceAll    ExperienceBand = "all"
	ExperienceJunior ExperienceBand = "junior"
	ExperienceMiddle ExperienceBand = "middle"
	ExperienceSenior ExperienceBand = "senior"
)

// Salary slider bounds, in thousands of currency units.
const (
	SalaryStepThousands = 50
	SalaryMaxThousands  = 500
)

// ParseExperience converts a raw form value to an ExperienceBand. The empty
// string is treated as ExperienceAll.
func ParseExperience(s string) (ExperienceBand, error) {
	band := ExperienceBand(strings.ToLower(strings.TrimSpace(s)))
	switch band {
	case "":
		return ExperienceAll, nil
	case ExperienceAll, ExperienceJunior, ExperienceMiddle, ExperienceSenior:
		return band, nil
	}
	return "", fmt.Errorf("unknown experience band %q", s)
}

// ExperienceBands lists the selectable bands in display order.
func ExperienceBands() []ExperienceBand {
	return []ExperienceBand{ExperienceAll, ExperienceJunior, ExperienceMiddle, ExperienceSenior}
}

// Criteria is one snapshot of the user's choices. It is a value type: each
// interaction produces a new Criteria rather than mutating a shared one.
type Criteria struct {
	Query                string         `json:"query"`
	MinSalaryThousands   int            `json:"min_salary_thousands"`
	Experience           ExperienceBand `json:"experience"`
	LocationEnabled      bool           `json:"location_enabled"`
	NotificationsEnabled bool           `json:"notifications_enabled"`
}

// DefaultCriteria returns the criteria a fresh view starts with.
func DefaultCriteria() Criteria {
	return Criteria{Experience: ExperienceAll}
}

// ClampSalary bounds a slider value to [0, SalaryMaxThousands] and snaps it
// down to the nearest SalaryStepThousands.
func ClampSalary(thousands int) int {
	if thousands < 0 {
		return 0
	}
	if thousands > SalaryMaxThousands {
		thousands = SalaryMaxThousands
	}
	return thousands - thousands%SalaryStepThousands
}
