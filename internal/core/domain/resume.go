package domain

import (
	"errors"
	"time"
)

// ResumeKind distinguishes the two timeline sections of the resume page.
type ResumeKind string

const (
	ResumeEducation  ResumeKind = "education"
	ResumeExperience ResumeKind = "experience"
)

var ErrResumeEntryNotFound = errors.New("resume entry not found")
var ErrInvalidResumeKind = errors.New("resume kind must be education or experience")

// ResumeEntry is one item on the education or experience timeline.
// EndDate is zero for ongoing entries.
type ResumeEntry struct {
	ID           string     `json:"id"`
	Kind         ResumeKind `json:"kind"`
	Title        string     `json:"title"`
	Organization string     `json:"organization"`
	Location     string     `json:"location,omitempty"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      time.Time  `json:"end_date,omitempty"`
	Description  string     `json:"description,omitempty"`
	SortOrder    int        `json:"sort_order"`
}

// Valid reports whether k names a known resume section.
func (k ResumeKind) Valid() bool {
	return k == ResumeEducation || k == ResumeExperience
}
