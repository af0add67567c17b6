package domain

import "errors"

var ErrSkillNotFound = errors.New("skill not found")

// Skill is a single entry on the skills grid. Level is a 1-100 proficiency
// value rendered as a progress bar by the frontend.
type Skill struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Level     int    `json:"level"`
	SortOrder int    `json:"sort_order"`
}
