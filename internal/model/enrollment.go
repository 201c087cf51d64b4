package model

import "time"

type EnrollmentStatus string

const (
	StatusNotStarted EnrollmentStatus = "not_started"
	StatusInProgress EnrollmentStatus = "in_progress"
	StatusCompleted  EnrollmentStatus = "completed"
)

func (s EnrollmentStatus) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Enrollment links a user to a course. At most one exists per (UserID, CourseID);
// the enrollment service checks before creating. Status and progress are not
// cross-validated: progress may reach 100 while the status is still in_progress.
type Enrollment struct {
	ID             string           `json:"id"`
	UserID         string           `json:"userId"`
	CourseID       string           `json:"courseId"`
	CourseTitle    string           `json:"courseTitle"`
	CourseCategory string           `json:"courseCategory"`
	Status         EnrollmentStatus `json:"status"`
	Progress       int              `json:"progress"`
	Score          int              `json:"score"`
	CreatedAt      time.Time        `json:"createdAt"`
	CompletedAt    *time.Time       `json:"completedAt"`
}

type EnrollmentInput struct {
	UserID         string
	CourseID       string
	CourseTitle    string
	CourseCategory string
}

type EnrollmentUpdate struct {
	Status      *EnrollmentStatus `json:"status,omitempty"`
	Progress    *int              `json:"progress,omitempty"`
	Score       *int              `json:"score,omitempty"`
	CompletedAt *time.Time        `json:"completedAt,omitempty"`
}

func (e *Enrollment) Apply(upd EnrollmentUpdate) {
	if upd.Status != nil {
		e.Status = *upd.Status
	}
	if upd.Progress != nil {
		e.Progress = *upd.Progress
	}
	if upd.Score != nil {
		e.Score = *upd.Score
	}
	if upd.CompletedAt != nil {
		t := *upd.CompletedAt
		e.CompletedAt = &t
	}
}
