package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ApplicationStatusPending indicates that the application is waiting for employer review
	ApplicationStatusPending = "pending"
	// ApplicationStatusAccepted indicates that the employer accepted the candidate
	ApplicationStatusAccepted = "accepted"
	// ApplicationStatusRejected indicates that the application has been rejected
	ApplicationStatusRejected = "rejected"
)

// Application represents a job application record.
// The (job_id, candidate_id) pair is unique at the storage level, the index is
// the single authority for duplicate detection.
type Application struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Status    string    `gorm:"type:text;default:'pending'" json:"status"`

	JobID uint `gorm:"not null;index;uniqueIndex:idx_applications_job_candidate" json:"job_id"`
	Job   Job  `gorm:"foreignKey:JobID;references:ID" json:"-"`

	CandidateID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_applications_job_candidate" json:"candidate_id"`
	Candidate   User      `gorm:"foreignKey:CandidateID;references:ID" json:"-"`

	CoverLetter string `gorm:"type:text" json:"cover_letter"`
	ResumeURL   string `gorm:"type:text" json:"resume_url"`
}

// ValidApplicationStatus reports whether s is a known application status.
func ValidApplicationStatus(s string) bool {
	return s == ApplicationStatusPending || s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// Transition moves the application to newStatus, enforcing the lifecycle rules:
// a rejected candidate cannot be accepted afterwards, and a reviewed application
// never goes back to pending. Re-applying the current status is a no-op.
func (a *Application) Transition(newStatus string) error {
	if !ValidApplicationStatus(newStatus) {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if newStatus == a.Status {
		return nil
	}

	if a.Status == ApplicationStatusRejected && newStatus == ApplicationStatusAccepted {
		return fmt.Errorf("cannot accept a previously rejected candidate")
	}

	if newStatus == ApplicationStatusPending {
		return fmt.Errorf("cannot move a reviewed application back to pending")
	}

	a.Status = newStatus
	return nil
}

// ApplicationResponse is application with resolved job and candidate summary
type ApplicationResponse struct {
	ID             uint      `json:"id"`
	JobID          uint      `json:"job_id"`
	JobTitle       string    `json:"job_title"`
	CandidateEmail string    `json:"candidate_email"`
	CoverLetter    string    `json:"cover_letter"`
	ResumeURL      string    `json:"resume_url"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToApplicationResponse flattens the preloaded Job and Candidate associations
func (a *Application) ToApplicationResponse() ApplicationResponse {
	return ApplicationResponse{
		ID:             a.ID,
		JobID:          a.JobID,
		JobTitle:       a.Job.Title,
		CandidateEmail: a.Candidate.Email,
		CoverLetter:    a.CoverLetter,
		ResumeURL:      a.ResumeURL,
		Status:         a.Status,
		CreatedAt:      a.CreatedAt,
	}
}
