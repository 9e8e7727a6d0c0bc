// Package application provides HTTP handlers for the application pipeline.
package application

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"talentbridge-backend/internal/database"
	"talentbridge-backend/internal/model"
	"talentbridge-backend/internal/notify"
	"talentbridge-backend/internal/utilities"
)

// ApplicationController handles application related endpoints
type ApplicationController struct {
	DB *database.DBinstanceStruct
	// Notifier is optional. A nil notifier skips employer notification.
	Notifier notify.Publisher
	Log      *logrus.Logger
}

// NewApplicationController creates a new instance of ApplicationController
func NewApplicationController(db *database.DBinstanceStruct, notifier notify.Publisher) *ApplicationController {
	return &ApplicationController{
		DB:       db,
		Notifier: notifier,
		Log:      logrus.New(),
	}
}

type applyRequest struct {
	CoverLetter string `json:"cover_letter"`
	ResumeURL   string `json:"resume_url"`
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Apply submits an application for the calling candidate.
// @Summary Apply to the given job
// @Description Only candidate users have access to this endpoint. One application per candidate per job.
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of desired job"
// @Param Application body applyRequest true "Cover letter and resume URL"
// @Success 201 {object} model.Application "Successfully applied"
// @Failure 400 {object} utilities.ErrorResponse "Already applied, or invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as candidate"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id}/apply [post]
func (ac *ApplicationController) Apply(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id := c.Param("id")

	req := applyRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	job := model.Job{}
	if err := ac.DB.Preload("Employer").Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}

	if !job.IsActive {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Job is no longer accepting applications",
		})
		return
	}

	application := model.Application{
		JobID:       job.ID,
		CandidateID: user.ID,
		Status:      model.ApplicationStatusPending,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
	}

	if err := ac.DB.Create(&application).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
					Error: "You have already applied to this job",
				})
				return
			case "23503":
				c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
					Error: "Referenced job or candidate no longer exists",
				})
				return
			}
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create application: %s", err.Error()),
		})
		return
	}

	// Employer notification is best effort. The application row is already
	// committed, so an enqueue failure is only logged.
	if ac.Notifier != nil {
		notification := notify.ApplicationNotification{
			EmployerEmail:  job.Employer.Email,
			JobTitle:       job.Title,
			CandidateEmail: user.Email,
		}
		if err := ac.Notifier.PublishApplicationNotification(notification); err != nil {
			ac.Log.WithError(err).WithFields(logrus.Fields{
				"job_id":       job.ID,
				"candidate_id": user.ID,
			}).Error("Failed to enqueue application notification")
		}
	}

	c.JSON(http.StatusCreated, application)
}

// ListJobApplications lists every application for a job the caller owns.
// @Summary List applications for the given job
// @Description Only the employer that owns the job has access to this endpoint
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of desired job"
// @Success 200 {array} model.ApplicationResponse "Return applications"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Do not have permission to view applications"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id}/applications [get]
func (ac *ApplicationController) ListJobApplications(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id := c.Param("id")

	job := model.Job{}
	if err := ac.DB.Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}

	if job.EmployerID.String() != user.ID.String() {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "You are not allowed to view applications for this job",
		})
		return
	}

	var rawApplications []model.Application
	if err := ac.DB.Preload("Job").Preload("Candidate").
		Where("job_id = ?", job.ID).
		Order("created_at DESC").
		Find(&rawApplications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve applications: %s", err.Error()),
		})
		return
	}

	applications := []model.ApplicationResponse{}
	for _, a := range rawApplications {
		applications = append(applications, a.ToApplicationResponse())
	}

	c.JSON(http.StatusOK, applications)
}

// UpdateApplicationStatus moves an application through its review lifecycle.
// @Summary Update status of the given application
// @Description Only the employer that owns the applied job has access to this endpoint
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of desired application"
// @Param Status body statusRequest true "New status, one of pending accepted rejected"
// @Success 200 {object} model.ApplicationResponse "Successfully updated"
// @Failure 400 {object} utilities.ErrorResponse "Disallowed status transition, or invalid request body"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Do not have permission to review this application"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/applications/{id} [patch]
func (ac *ApplicationController) UpdateApplicationStatus(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id := c.Param("id")

	req := statusRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	application := model.Application{}
	if err := ac.DB.Preload("Job").Preload("Candidate").
		Where("id = ?", id).
		First(&application).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Application not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve application: %s", err.Error()),
		})
		return
	}

	if application.Job.EmployerID.String() != user.ID.String() {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "You are not allowed to review this application",
		})
		return
	}

	if err := application.Transition(req.Status); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	if err := ac.DB.Model(&application).Update("status", application.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update application: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, application.ToApplicationResponse())
}

// MyApplications lists the calling candidate's applications.
// @Summary List caller's own applications
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.ApplicationResponse "Return caller's applications"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as candidate"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/applications/me [get]
func (ac *ApplicationController) MyApplications(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var rawApplications []model.Application
	if err := ac.DB.Preload("Job").Preload("Candidate").
		Where("candidate_id = ?", user.ID.String()).
		Order("created_at DESC").
		Find(&rawApplications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve applications: %s", err.Error()),
		})
		return
	}

	applications := []model.ApplicationResponse{}
	for _, a := range rawApplications {
		applications = append(applications, a.ToApplicationResponse())
	}

	c.JSON(http.StatusOK, applications)
}
