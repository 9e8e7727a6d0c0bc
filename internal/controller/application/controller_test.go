package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"talentbridge-backend/internal/auth"
	"talentbridge-backend/internal/database"
	"talentbridge-backend/internal/middleware"
	"talentbridge-backend/internal/model"
	"talentbridge-backend/internal/notify"
	"talentbridge-backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
}

// recordPublisher captures enqueued notifications.
type recordPublisher struct {
	published []notify.ApplicationNotification
}

func (p *recordPublisher) PublishApplicationNotification(n notify.ApplicationNotification) error {
	p.published = append(p.published, n)
	return nil
}

// failPublisher always fails to enqueue.
type failPublisher struct{}

func (p *failPublisher) PublishApplicationNotification(notify.ApplicationNotification) error {
	return errors.New("broker unavailable")
}

func newRouter(notifier notify.Publisher) (*gin.Engine, *ApplicationController) {
	r := gin.Default()
	ac := NewApplicationController(testDB, notifier)
	r.POST("/jobs/:id/apply", middleware.RequireAuth(testDB), middleware.CheckRole(model.RoleCandidate), ac.Apply)
	r.GET("/jobs/:id/applications", middleware.RequireAuth(testDB), middleware.CheckRole(model.RoleEmployer), ac.ListJobApplications)
	r.PATCH("/jobs/applications/:id", middleware.RequireAuth(testDB), middleware.CheckRole(model.RoleEmployer), ac.UpdateApplicationStatus)
	r.GET("/jobs/applications/me", middleware.RequireAuth(testDB), middleware.CheckRole(model.RoleCandidate), ac.MyApplications)
	return r, ac
}

func TestApply_successAndDuplicate(t *testing.T) {
	userToken, err := auth.GetAccessToken(t, testDB, database.TestUserCandidate1.Email, database.TestSeedPassword)
	assert.NoError(t, err)
	publisher := &recordPublisher{}
	r, _ := newRouter(publisher)

	endpoint := fmt.Sprintf("/jobs/%d/apply", database.TestJob1.ID)

	rec, resp := testutil.MakeJSONRequest(gin.H{
		"cover_letter": "I build Go services.",
		"resume_url":   "https://example.com/cv.pdf",
	}, userToken, r, endpoint, http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "pending", resp["status"])
	assert.Equal(t, float64(database.TestJob1.ID), resp["job_id"])
	assert.Equal(t, database.TestUserCandidate1.ID.String(), resp["candidate_id"])

	// Notification enqueued with the employer's address and the job title
	if assert.Len(t, publisher.published, 1) {
		assert.Equal(t, database.TestUserEmployer1.Email, publisher.published[0].EmployerEmail)
		assert.Equal(t, database.TestJob1.Title, publisher.published[0].JobTitle)
		assert.Equal(t, database.TestUserCandidate1.Email, publisher.published[0].CandidateEmail)
	}

	// Second application to the same job is rejected by the unique index
	rec, resp = testutil.MakeJSONRequest(gin.H{}, userToken, r, endpoint, http.MethodPost)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "already applied")

	var count int64
	assert.NoError(t, testDB.Model(&model.Application{}).
		Where("job_id = ? AND candidate_id = ?", database.TestJob1.ID, database.TestUserCandidate1.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestApply_statusCannotBeForced(t *testing.T) {
	userToken, err := auth.GetAccessToken(t, testDB, database.TestUserCandidate2.Email, database.TestSeedPassword)
	assert.NoError(t, err)
	r, _ := newRouter(&recordPublisher{})

	// The request cannot choose its own status
	rec, resp := testutil.MakeJSONRequest(gin.H{
		"status": "accepted",
	}, userToken, r, fmt.Sprintf("/jobs/%d/apply", database.TestJob2.ID), http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "pending", resp["status"])
}

func TestApply_employerForbidden(t *testing.T) {
	userToken, err := auth.GetAccessToken(t, testDB, database.TestUserEmployer1.Email, database.TestSeedPassword)
	assert.NoError(t, err)
	r, _ := newRouter(&recordPublisher{})

	rec, _ := testutil.MakeJSONRequest(gin.H{}, userToken, r, fmt.Sprintf("/jobs/%d/apply", database.TestJob1.ID), http.MethodPost)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestApply_jobNotFound(t *testing.T) {
	userToken, err := auth.GetAccessToken(t, testDB, database.TestUserCandidate1.Email, database.TestSeedPassword)
	assert.NoError(t, err)
	r, _ := newRouter(&recordPublisher{})

	rec, _ := testutil.MakeJSONRequest(gin.H{}, userToken, r, "/jobs/99999/apply", http.MethodPost)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApply_inactiveJob(t *testing.T) {
	userToken, err := auth.GetAccessToken(t, testDB, database.TestUserCandidate1.Email, database.TestSeedPassword)
	assert.NoError(t, err)
	r, _ := newRouter(&recordPublisher{})

	assert.NoError(t, testDB.Model(&model.Job{}).Where("id = ?", database.TestJob3.ID).Update("is_active", false).Error)
	defer func() {
		_ = testDB.Model(&model.Job{}).Where("id = ?", database.TestJob3.ID).Update("is_active", true).Error
	}()

	rec, _ := testutil.MakeJSONRequest(gin.H{}, userToken, r, fmt.Sprintf("/jobs/%d/apply", database.TestJob3.ID), http.MethodPost)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApply_enqueueFailureKeepsApplication(t *testing.T) {
	userToken, err := auth.GetAccessToken(t, testDB, database.TestUserCandidate1.Email, database.TestSeedPassword)
	assert.NoError(t, err)
	r, _ := newRouter(&failPublisher{})

	rec, _ := testutil.MakeJSONRequest(gin.H{
		"cover_letter": "Still interested despite broker trouble.",
	}, userToken, r, fmt.Sprintf("/jobs/%d/apply", database.TestJob2.ID), http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var count int64
	assert.NoError(t, testDB.Model(&model.Application{}).
		Where("job_id = ? AND candidate_id = ?", database.TestJob2.ID, database.TestUserCandidate1.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestListJobApplications_ownerSeesAll(t *testing.T) {
	userToken, err := auth.GetAccessToken(t, testDB, database.TestUserEmployer1.Email, database.TestSeedPassword)
	assert.NoError(t, err)
	r, _ := newRouter(&recordPublisher{})

	rec, _ := testutil.MakeJSONRequest(nil, userToken, r, fmt.Sprintf("/jobs/%d/applications", database.TestJob1.ID), http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	var applications []model.ApplicationResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &applications))
	assert.NotEmpty(t, applications)
	for _, a := range applications {
		assert.Equal(t, database.TestJob1.ID, a.JobID)
		assert.Equal(t, database.TestJob1.Title, a.JobTitle)
	}
}

func TestListJobApplications_nonOwnerForbidden(t *testing.T) {
	userToken, err := auth.GetAccessToken(t, testDB, database.TestUserEmployer2.Email, database.TestSeedPassword)
	assert.NoError(t, err)
	r, _ := newRouter(&recordPublisher{})

	rec, _ := testutil.MakeJSONRequest(nil, userToken, r, fmt.Sprintf("/jobs/%d/applications", database.TestJob1.ID), http.MethodGet)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateApplicationStatus_lifecycle(t *testing.T) {
	employerToken, err := auth.GetAccessToken(t, testDB, database.TestUserEmployer1.Email, database.TestSeedPassword)
	assert.NoError(t, err)
	r, _ := newRouter(&recordPublisher{})

	var app model.Application
	assert.NoError(t, testDB.
		Where("job_id = ? AND candidate_id = ?", database.TestJob1.ID, database.TestUserCandidate1.ID).
		First(&app).Error)

	endpoint := fmt.Sprintf("/jobs/applications/%d", app.ID)

	// pending -> accepted
	rec, resp := testutil.MakeJSONRequest(gin.H{"status": "accepted"}, employerToken, r, endpoint, http.MethodPatch)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "accepted", resp["status"])

	// accepted -> pending is never allowed
	rec, resp = testutil.MakeJSONRequest(gin.H{"status": "pending"}, employerToken, r, endpoint, http.MethodPatch)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "back to pending")

	// re-applying the current status is a no-op
	rec, resp = testutil.MakeJSONRequest(gin.H{"status": "accepted"}, employerToken, r, endpoint, http.MethodPatch)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "accepted", resp["status"])

	// accepted -> rejected stays possible
	rec, resp = testutil.MakeJSONRequest(gin.H{"status": "rejected"}, employerToken, r, endpoint, http.MethodPatch)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rejected", resp["status"])

	// rejected -> accepted is blocked
	rec, resp = testutil.MakeJSONRequest(gin.H{"status": "accepted"}, employerToken, r, endpoint, http.MethodPatch)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, resp["error"], "previously rejected")

	// Database row reflects the last accepted transition
	var reloaded model.Application
	assert.NoError(t, testDB.Where("id = ?", app.ID).First(&reloaded).Error)
	assert.Equal(t, "rejected", reloaded.Status)
}

func TestUpdateApplicationStatus_invalidStatus(t *testing.T) {
	employerToken, err := auth.GetAccessToken(t, testDB, database.TestUserEmployer1.Email, database.TestSeedPassword)
	assert.NoError(t, err)
	r, _ := newRouter(&recordPublisher{})

	var app model.Application
	assert.NoError(t, testDB.
		Where("job_id = ? AND candidate_id = ?", database.TestJob2.ID, database.TestUserCandidate2.ID).
		First(&app).Error)

	rec, _ := testutil.MakeJSONRequest(gin.H{"status": "shortlisted"}, employerToken, r,
		fmt.Sprintf("/jobs/applications/%d", app.ID), http.MethodPatch)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateApplicationStatus_nonOwnerForbidden(t *testing.T) {
	employerToken, err := auth.GetAccessToken(t, testDB, database.TestUserEmployer2.Email, database.TestSeedPassword)
	assert.NoError(t, err)
	r, _ := newRouter(&recordPublisher{})

	var app model.Application
	assert.NoError(t, testDB.
		Where("job_id = ? AND candidate_id = ?", database.TestJob2.ID, database.TestUserCandidate2.ID).
		First(&app).Error)

	rec, _ := testutil.MakeJSONRequest(gin.H{"status": "accepted"}, employerToken, r,
		fmt.Sprintf("/jobs/applications/%d", app.ID), http.MethodPatch)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMyApplications(t *testing.T) {
	userToken, err := auth.GetAccessToken(t, testDB, database.TestUserCandidate1.Email, database.TestSeedPassword)
	assert.NoError(t, err)
	r, _ := newRouter(&recordPublisher{})

	rec, _ := testutil.MakeJSONRequest(nil, userToken, r, "/jobs/applications/me", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	var applications []model.ApplicationResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &applications))
	assert.GreaterOrEqual(t, len(applications), 2)
	seen := map[uint]bool{}
	for _, a := range applications {
		seen[a.JobID] = true
	}
	assert.True(t, seen[database.TestJob1.ID])
	assert.True(t, seen[database.TestJob2.ID])
}
