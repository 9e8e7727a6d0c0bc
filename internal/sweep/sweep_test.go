package sweep

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"talentbridge-backend/internal/database"
	"talentbridge-backend/internal/model"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	var err error
	var teardown func(context.Context, ...testcontainers.TerminateOption) error
	teardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if teardown != nil {
		_ = teardown(ctx)
	}
	os.Exit(code)
}

func makeJob(t *testing.T, deadline *time.Time, active bool) model.Job {
	t.Helper()
	job := model.Job{
		EmployerID: database.TestUserEmployer1.ID,
		EditableJobInfo: model.EditableJobInfo{
			Title:    "Sweep Target",
			Deadline: deadline,
		},
		IsActive: active,
	}
	assert.NoError(t, testDB.Create(&job).Error)
	if !active {
		// gorm skips zero values on create, force the flag off
		assert.NoError(t, testDB.Model(&job).Update("is_active", false).Error)
	}
	return job
}

func TestDeactivateExpiredJobs(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	expired := makeJob(t, &past, true)
	current := makeJob(t, &future, true)
	noDeadline := makeJob(t, nil, true)

	count, err := DeactivateExpiredJobs(testDB)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, count, int64(1))

	var got model.Job
	assert.NoError(t, testDB.First(&got, expired.ID).Error)
	assert.False(t, got.IsActive, "expired job should be closed")

	assert.NoError(t, testDB.First(&got, current.ID).Error)
	assert.True(t, got.IsActive, "future deadline should stay open")

	assert.NoError(t, testDB.First(&got, noDeadline.ID).Error)
	assert.True(t, got.IsActive, "jobs without deadline are never closed")
}

func TestDeactivateExpiredJobsIdempotent(t *testing.T) {
	past := time.Now().Add(-time.Minute)
	makeJob(t, &past, true)

	first, err := DeactivateExpiredJobs(testDB)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, first, int64(1))

	second, err := DeactivateExpiredJobs(testDB)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), second, "second run should be a no-op")
}

func TestDeactivateSkipsAlreadyInactive(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	inactive := makeJob(t, &past, false)

	_, err := DeactivateExpiredJobs(testDB)
	assert.NoError(t, err)

	var got model.Job
	assert.NoError(t, testDB.First(&got, inactive.ID).Error)
	assert.False(t, got.IsActive)
}
