// Package job provides HTTP handlers for job catalog operations.
package job

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"talentbridge-backend/internal/database"
	"talentbridge-backend/internal/model"
	"talentbridge-backend/internal/utilities"
)

// JobController handles job catalog related endpoints
type JobController struct {
	DB *database.DBinstanceStruct
}

// NewJobController creates a new instance of JobController
func NewJobController(db *database.DBinstanceStruct) *JobController {
	return &JobController{
		DB: db,
	}
}

// CreateJobHandler handles the creation of a new job by an employer user.
// @Summary Create job based on given json structure
// @Description Only employer users have access to this endpoint. Blank company name is filled from the employer profile.
// @Tags Job
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Job body model.EditableJobInfo true "Input job information"
// @Success 201 {object} model.Job "Successfully create job"
// @Failure 400 {object} utilities.ErrorResponse "Invalid authorization header, or invalid job struct"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as employer"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [post]
func (jc *JobController) CreateJobHandler(c *gin.Context) {

	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	job := model.Job{}
	if err := c.ShouldBindJSON(&job.EditableJobInfo); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	// Blank company name defaults from the employer profile
	if job.CompanyName == "" {
		var profile model.EmployerProfile
		if err := jc.DB.Where("user_id = ?", user.ID.String()).First(&profile).Error; err == nil {
			job.CompanyName = profile.CompanyName
		}
	}

	job.EmployerID = user.ID
	if err := jc.DB.Create(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to create job: ", err),
		})
		return
	}

	c.JSON(http.StatusCreated, job)
}

// GetJobs fetches all active jobs that match query from the database
// and returns them as a JSON response.
// @Summary Get active jobs based on query
// @Description Every query are not required, but they have specific use defined in their description
// @Tags Job
// @Produce json
// @Param search query string false "Search from job title with substring matching and case insensitive"
// @Param job_type query string false "Job type field, must exactly match to get result"
// @Param remote_status query string false "Remote status field, must exactly match to get result"
// @Param experience_level query string false "Experience level field, must exactly match to get result"
// @Param location query string false "Search from location with substring matching and case insensitive"
// @Param min_salary query integer false "Lower bound on the numeric salary field"
// @Param max_salary query integer false "Upper bound on the numeric salary field"
// @Param order_by query string false "Sort column, 'created_at' (default) or 'salary'"
// @Param desc query boolean false "Sorting in descending order if true, otherwise ascending"
// @Success 200 {array} model.JobResponse "Return active job(s)"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs [get]
func (jc *JobController) GetJobs(c *gin.Context) {

	// Guest viewers get the zero user
	user, _ := utilities.ExtractUser(c)

	rawSearch := c.Query("search")
	rawJobType := c.Query("job_type")
	rawRemote := c.Query("remote_status")
	rawExp := c.Query("experience_level")
	rawLocation := c.Query("location")
	rawMinSalary := c.Query("min_salary")
	rawMaxSalary := c.Query("max_salary")
	rawOrderBy := c.Query("order_by")
	rawDesc := c.Query("desc")

	var rawJobs []model.Job

	result := jc.DB.Preload("Applications").
		Preload("BookmarkedBy").
		Where("is_active = ?", true)

	if rawSearch != "" {
		result = result.Where("title ILIKE ?", "%"+rawSearch+"%")
	}

	if rawJobType != "" {
		result = result.Where("job_type = ?", rawJobType)
	}

	if rawRemote != "" {
		result = result.Where("remote_status = ?", rawRemote)
	}

	if rawExp != "" {
		result = result.Where("experience_level = ?", rawExp)
	}

	if rawLocation != "" {
		result = result.Where("location ILIKE ?", "%"+rawLocation+"%")
	}

	if rawMinSalary != "" {
		if minSalary, err := strconv.ParseInt(rawMinSalary, 10, 64); err == nil {
			result = result.Where("salary >= ?", minSalary)
		}
	}

	if rawMaxSalary != "" {
		if maxSalary, err := strconv.ParseInt(rawMaxSalary, 10, 64); err == nil {
			result = result.Where("salary <= ?", maxSalary)
		}
	}

	orderColumn := "created_at"
	if rawOrderBy == "salary" {
		orderColumn = "salary"
	}

	result = result.Order(clause.OrderByColumn{
		Column: clause.Column{Name: orderColumn},
		Desc:   strings.ToLower(rawDesc) == "true",
	}).Find(&rawJobs)

	if err := result.Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to fetch jobs: ", err.Error()),
		})
		return
	}

	jobs := []model.JobResponse{}
	for _, rawJob := range rawJobs {
		resp, err := rawJob.ToJobResponse(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprint("Failed to process job: ", err.Error()),
			})
			return
		}
		jobs = append(jobs, resp)
	}

	c.JSON(http.StatusOK, jobs)
}

// GetJobByID fetches a job by its ID from the database
// and returns it as a JSON response.
// @Summary Get job by ID
// @Description Retrieve a specific job using its unique ID
// @Tags Job
// @Produce json
// @Param id path integer true "ID of desired job"
// @Success 200 {object} model.JobResponse "Return the job with the specified ID"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [get]
func (jc *JobController) GetJobByID(c *gin.Context) {
	id := c.Param("id")

	user, _ := utilities.ExtractUser(c)

	job := model.Job{}
	if err := jc.DB.
		Preload("Applications").
		Preload("BookmarkedBy").
		Where("id = ?", id).
		First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}

	resp, err := job.ToJobResponse(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprint("Failed to process job: ", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// EditJob allows an employer to update a job they own.
// @Summary Edit job based on given json structure
// @Description Only the employer that owns the job has access to this endpoint
// @Tags Job
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of desired job"
// @Param Job body model.EditableJobInfo true "Input job information"
// @Success 200 {object} model.Job "Successfully update job"
// @Failure 400 {object} utilities.ErrorResponse "Invalid authorization header, or invalid job struct"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Do not have permission to edit"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [put]
func (jc *JobController) EditJob(c *gin.Context) {

	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id := c.Param("id")

	job := model.Job{}

	// Find existing job
	if err := jc.DB.Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}

	// Verify ownership: the job must belong to the requesting employer.
	// Compare as strings to avoid type mismatches
	if job.EmployerID.String() != user.ID.String() {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "You are not allowed to edit this job",
		})
		return
	}

	// Bind incoming JSON to a temporary struct to avoid overwriting ownership fields
	updated := model.Job{}
	if err := c.ShouldBindJSON(&updated.EditableJobInfo); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to parse request body: %s", err.Error()),
		})
		return
	}

	// Update fields on the existing job record without saving associations
	if err := jc.DB.Model(&job).Updates(updated).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update job: %s", err.Error()),
		})
		return
	}

	// Reload the job to return the latest data
	if err := jc.DB.Where("id = ?", job.ID).First(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve updated job: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob allows an employer to delete a job they own.
// @Summary Delete given job ID
// @Description Only the employer that owns the job has access to this endpoint
// @Tags Job
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of desired job"
// @Success 200 {object} utilities.MessageResponse "Successfully delete job"
// @Failure 400 {object} utilities.ErrorResponse "Invalid authorization header"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Do not have permission to delete this job"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id} [delete]
func (jc *JobController) DeleteJob(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id := c.Param("id")

	job := model.Job{}
	if err := jc.DB.Where("id = ?", id).First(&job).Error; err != nil {
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
			Error: "You are not allowed to delete this job",
		})
		return
	}

	if err := jc.DB.Select(clause.Associations).Delete(&job).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to delete job: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Job deleted"})
}

// MyJobs lists every job owned by the calling employer, active or not.
// @Summary List caller's own jobs
// @Tags Job
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.Job "Return caller's jobs"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Not logged in as employer"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/my-jobs [get]
func (jc *JobController) MyJobs(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var jobs []model.Job
	if err := jc.DB.Where("employer_id = ?", user.ID.String()).
		Order("created_at DESC").
		Find(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve jobs: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// ToggleBookmark adds the job to the caller's bookmarks, or removes it when
// already present.
// @Summary Toggle bookmark membership for the given job
// @Tags Job
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path integer true "ID of desired job"
// @Success 200 {object} map[string]bool "bookmarked reports the new state"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Job not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/{id}/bookmark [post]
func (jc *JobController) ToggleBookmark(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	id := c.Param("id")

	job := model.Job{}
	if err := jc.DB.Preload("BookmarkedBy").Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve job: %s", err.Error()),
		})
		return
	}

	bookmarked := false
	for _, bookmarker := range job.BookmarkedBy {
		if bookmarker.ID.String() == user.ID.String() {
			bookmarked = true
			break
		}
	}

	assoc := jc.DB.Model(&job).Association("BookmarkedBy")
	if bookmarked {
		err = assoc.Delete(&user)
	} else {
		err = assoc.Append(&user)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update bookmark: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookmarked": !bookmarked})
}

// Bookmarks lists the jobs bookmarked by the caller.
// @Summary List caller's bookmarked jobs
// @Tags Job
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.Job "Return bookmarked jobs"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /jobs/bookmarks [get]
func (jc *JobController) Bookmarks(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var jobs []model.Job
	if err := jc.DB.
		Joins("JOIN job_bookmarks ON job_bookmarks.job_id = jobs.id").
		Where("job_bookmarks.user_id = ?", user.ID.String()).
		Order("jobs.created_at DESC").
		Find(&jobs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve bookmarks: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, jobs)
}
