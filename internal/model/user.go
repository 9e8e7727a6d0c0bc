// Package model contain gorm model for recording data to database
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	// RoleEmployer is role of user that can post and manage jobs
	RoleEmployer = "employer"
	// RoleCandidate is role of user that can apply to jobs
	RoleCandidate = "candidate"
)

// User is gorm model for store account data in DB.
// Every user carry exactly one role and the matching profile record.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Email     string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Username  string    `gorm:"type:text" json:"username"`
	Password  string    `gorm:"type:text" json:"-"`
	Role      string    `gorm:"type:text;not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`

	EmployerProfile  *EmployerProfile  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"employer_profile,omitempty"`
	CandidateProfile *CandidateProfile `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"candidate_profile,omitempty"`
}

// EditableEmployerInfo is part of employer profile that can be edited
type EditableEmployerInfo struct {
	CompanyName string `gorm:"type:text" json:"company_name"`
	Website     string `gorm:"type:text" json:"website"`
	Industry    string `gorm:"type:text" json:"industry"`
	Description string `gorm:"type:text" json:"description"`
}

// EmployerProfile is one-to-one company information of an employer user
type EmployerProfile struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	EditableEmployerInfo
}

// EditableCandidateInfo is part of candidate profile that can be edited
type EditableCandidateInfo struct {
	Title       string         `gorm:"type:text" json:"title"`
	Bio         string         `gorm:"type:text" json:"bio"`
	ResumeURL   string         `gorm:"type:text" json:"resume_url"`
	Skills      pq.StringArray `gorm:"type:text[]" json:"skills"`
	GithubURL   string         `gorm:"type:text" json:"github_url"`
	LinkedinURL string         `gorm:"type:text" json:"linkedin_url"`
}

// CandidateProfile is one-to-one bio of a candidate user
type CandidateProfile struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	EditableCandidateInfo
}
