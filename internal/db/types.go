package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents a scoring run record
type Run struct {
	ID           uuid.UUID  `json:"id"`
	Source       string     `json:"source"`
	Status       string     `json:"status"`
	Participants int        `json:"participants"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// Run status values
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ArtifactStep constants for known artifact types
const (
	StepSurveySpan   = "survey_span"
	StepParticipants = "participants"
	StepReportBook   = "report_workbook"
)

// Artifact category constants
const (
	CategoryIntake  = "intake"
	CategoryScoring = "scoring"
	CategoryReport  = "report"
)
