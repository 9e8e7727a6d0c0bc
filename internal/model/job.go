package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Job type choices
var (
	JobTypeFullTime   = "full_time"
	JobTypePartTime   = "part_time"
	JobTypeContract   = "contract"
	JobTypeFreelance  = "freelance"
	JobTypeInternship = "internship"
)

// Remote status choices
var (
	RemoteStatusOnsite = "onsite"
	RemoteStatusRemote = "remote"
	RemoteStatusHybrid = "hybrid"
)

// Experience level choices
var (
	ExperienceJunior = "junior"
	ExperienceMid    = "mid"
	ExperienceSenior = "senior"
	ExperienceLead   = "lead"
)

// EditableJobInfo is part of job that can be edited by its owner
type EditableJobInfo struct {
	Title           string     `gorm:"type:text" json:"title" binding:"required"`
	CompanyName     string     `gorm:"type:text" json:"company_name"`
	Description     string     `gorm:"type:text" json:"description"`
	Requirements    string     `gorm:"type:text" json:"requirements"`
	Location        string     `gorm:"type:text" json:"location"`
	Salary          *int64     `json:"salary"`
	SalaryRange     string     `gorm:"type:text" json:"salary_range"`
	JobType         string     `gorm:"type:text;default:'full_time'" json:"job_type" binding:"omitempty,oneof=full_time part_time contract freelance internship"`
	RemoteStatus    string     `gorm:"type:text;default:'onsite'" json:"remote_status" binding:"omitempty,oneof=onsite remote hybrid"`
	ExperienceLevel string     `gorm:"type:text;default:'mid'" json:"experience_level" binding:"omitempty,oneof=junior mid senior lead"`
	Deadline        *time.Time `gorm:"type:timestamp" json:"deadline,omitempty"`
}

// Job is gorm model for store job posting data in DB
type Job struct {
	ID         uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	EmployerID uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"employer_id"`
	Employer   User      `gorm:"foreignKey:EmployerID;references:ID" json:"-"`
	EditableJobInfo
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"applications,omitempty"`
	BookmarkedBy []User        `gorm:"many2many:job_bookmarks;constraint:OnDelete:CASCADE" json:"-"`
}

// JobResponse is the response struct for job with per-viewer state
type JobResponse struct {
	ID         uint      `json:"id"`
	EmployerID uuid.UUID `json:"employer_id"`
	EditableJobInfo
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	DaysAgo     int       `json:"days_ago"`
	UserApplied bool      `json:"user_applied"`
	Bookmarked  bool      `json:"bookmarked"`
}

// ToJobResponse converts Job to JobResponse, resolving viewer specific fields.
// Zero-value user (guest) yields user_applied=false and bookmarked=false.
func (j *Job) ToJobResponse(user User) (JobResponse, error) {

	var resp JobResponse

	b, err := json.Marshal(j)
	if err != nil {
		return resp, err
	}

	err = json.Unmarshal(b, &resp)
	if err != nil {
		return resp, err
	}

	userApplied := false

	if user.Role == RoleCandidate {
		for _, application := range j.Applications {
			if application.CandidateID.String() == user.ID.String() {
				userApplied = true
				break
			}
		}
	}
	resp.UserApplied = userApplied

	for _, bookmarker := range j.BookmarkedBy {
		if bookmarker.ID.String() == user.ID.String() {
			resp.Bookmarked = true
			break
		}
	}

	resp.DaysAgo = int(time.Since(j.CreatedAt).Hours() / 24)

	return resp, nil
}
