package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "talentbridge-backend/internal/model"
	"talentbridge-backend/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported test users & profiles
var (
	TestUserEmployer1  m.User
	TestUserEmployer2  m.User
	TestUserCandidate1 m.User
	TestUserCandidate2 m.User

	TestEmployerProfile1  m.EmployerProfile
	TestEmployerProfile2  m.EmployerProfile
	TestCandidateProfile1 m.CandidateProfile
	TestCandidateProfile2 m.CandidateProfile

	// Add exported plain password
	TestSeedPassword = "SeedPass123!"

	// Exported seeded jobs
	TestJob1 m.Job
	TestJob2 m.Job
	TestJob3 m.Job
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	// Seed sample employer and candidate users
	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData inserts sample employer and candidate records (2 each) if empty.
func seedTestData(db *DBinstanceStruct) error {
	var userCount int64
	if err := db.Model(&m.User{}).Count(&userCount).Error; err != nil {
		return err
	}

	if userCount > 0 {
		return loadTestData(db)
	}

	userSpecs := []struct {
		username string
		email    string
		role     string
	}{
		{"employer_user_1", "employer1@example.com", m.RoleEmployer},
		{"employer_user_2", "employer2@example.com", m.RoleEmployer},
		{"candidate_user_1", "candidate1@example.com", m.RoleCandidate},
		{"candidate_user_2", "candidate2@example.com", m.RoleCandidate},
	}

	// Pre-hash shared password for all seeded users
	hashedPwd, errHash := utilities.HashPassword(TestSeedPassword)
	if errHash != nil {
		return errHash
	}

	users := make([]m.User, 0, len(userSpecs))
	for _, s := range userSpecs {
		users = append(users, m.User{
			ID:       uuid.New(),
			Username: s.username,
			Email:    s.email,
			Role:     s.role,
			Password: hashedPwd,
		})
	}

	if err := db.Create(&users).Error; err != nil {
		return err
	}

	// Map created users to exported variables
	for _, u := range users {
		switch u.Username {
		case "employer_user_1":
			TestUserEmployer1 = u
		case "employer_user_2":
			TestUserEmployer2 = u
		case "candidate_user_1":
			TestUserCandidate1 = u
		case "candidate_user_2":
			TestUserCandidate2 = u
		}
	}

	employerProfiles := []m.EmployerProfile{
		{
			UserID: TestUserEmployer1.ID,
			EditableEmployerInfo: m.EditableEmployerInfo{
				CompanyName: "TechNova",
				Website:     "https://technova.example.com",
				Industry:    "Software",
				Description: "Innovative platform solutions",
			},
		},
		{
			UserID: TestUserEmployer2.ID,
			EditableEmployerInfo: m.EditableEmployerInfo{
				CompanyName: "DataForge",
				Website:     "https://dataforge.example.com",
				Industry:    "Consulting",
				Description: "Data analytics consulting",
			},
		},
	}
	if err := db.Create(&employerProfiles).Error; err != nil {
		return err
	}

	candidateProfiles := []m.CandidateProfile{
		{
			UserID: TestUserCandidate1.ID,
			EditableCandidateInfo: m.EditableCandidateInfo{
				Title:  "Backend Developer",
				Bio:    "Three years building Go services",
				Skills: pq.StringArray{"go", "postgres", "docker"},
			},
		},
		{
			UserID: TestUserCandidate2.ID,
			EditableCandidateInfo: m.EditableCandidateInfo{
				Title:  "Data Analyst",
				Bio:    "SQL and dashboards",
				Skills: pq.StringArray{"sql", "python"},
			},
		},
	}
	if err := db.Create(&candidateProfiles).Error; err != nil {
		return err
	}

	// Assign exported profile structs
	TestEmployerProfile1 = employerProfiles[0]
	TestEmployerProfile2 = employerProfiles[1]
	TestCandidateProfile1 = candidateProfiles[0]
	TestCandidateProfile2 = candidateProfiles[1]

	// Seed jobs (only if none exist yet)
	var jobCount int64
	if err := db.Model(&m.Job{}).Count(&jobCount).Error; err != nil {
		return err
	}
	if jobCount == 0 {
		deadline1 := time.Now().AddDate(0, 1, 0)
		deadline2 := time.Now().AddDate(0, 2, 0)
		salary1 := int64(90000)
		salary2 := int64(60000)

		jobs := []m.Job{
			{
				EmployerID: TestUserEmployer1.ID,
				EditableJobInfo: m.EditableJobInfo{
					Title:           "Backend Engineer",
					CompanyName:     "TechNova",
					Description:     "Work on Go microservices and database layers.",
					Requirements:    "Go; SQL familiarity",
					Location:        "Berlin",
					Salary:          &salary1,
					SalaryRange:     "$80k - $100k",
					JobType:         m.JobTypeFullTime,
					RemoteStatus:    m.RemoteStatusHybrid,
					ExperienceLevel: m.ExperienceSenior,
					Deadline:        &deadline1,
				},
			},
			{
				EmployerID: TestUserEmployer1.ID,
				EditableJobInfo: m.EditableJobInfo{
					Title:           "Frontend Developer",
					CompanyName:     "TechNova",
					Description:     "Build the employer dashboard in React.",
					Requirements:    "JS/TS fundamentals",
					Location:        "Remote",
					Salary:          &salary2,
					SalaryRange:     "$50k - $70k",
					JobType:         m.JobTypeContract,
					RemoteStatus:    m.RemoteStatusRemote,
					ExperienceLevel: m.ExperienceMid,
					Deadline:        &deadline2,
				},
			},
			{
				EmployerID: TestUserEmployer2.ID,
				EditableJobInfo: m.EditableJobInfo{
					Title:           "Data Analyst Intern",
					CompanyName:     "DataForge",
					Description:     "Support data cleansing and dashboard creation.",
					Requirements:    "SQL; basic statistics",
					Location:        "Madrid",
					JobType:         m.JobTypeInternship,
					RemoteStatus:    m.RemoteStatusOnsite,
					ExperienceLevel: m.ExperienceJunior,
				},
			},
		}

		if err := db.Create(&jobs).Error; err != nil {
			return err
		}
		if len(jobs) > 0 {
			TestJob1 = jobs[0]
		}
		if len(jobs) > 1 {
			TestJob2 = jobs[1]
		}
		if len(jobs) > 2 {
			TestJob3 = jobs[2]
		}
	}

	return nil
}

// loadTestData populates exported variables when records already exist.
func loadTestData(db *DBinstanceStruct) error {
	var users []m.User
	if err := db.Where("username IN ?", []string{
		"employer_user_1", "employer_user_2", "candidate_user_1", "candidate_user_2",
	}).Find(&users).Error; err != nil {
		return err
	}
	for _, u := range users {
		switch u.Username {
		case "employer_user_1":
			TestUserEmployer1 = u
		case "employer_user_2":
			TestUserEmployer2 = u
		case "candidate_user_1":
			TestUserCandidate1 = u
		case "candidate_user_2":
			TestUserCandidate2 = u
		}
	}

	_ = db.First(&TestEmployerProfile1, "user_id = ?", TestUserEmployer1.ID).Error
	_ = db.First(&TestEmployerProfile2, "user_id = ?", TestUserEmployer2.ID).Error
	_ = db.First(&TestCandidateProfile1, "user_id = ?", TestUserCandidate1.ID).Error
	_ = db.First(&TestCandidateProfile2, "user_id = ?", TestUserCandidate2.ID).Error

	// Load first three jobs deterministically
	var jobs []m.Job
	if err := db.Order("id ASC").Limit(3).Find(&jobs).Error; err == nil {
		if len(jobs) > 0 {
			TestJob1 = jobs[0]
		}
		if len(jobs) > 1 {
			TestJob2 = jobs[1]
		}
		if len(jobs) > 2 {
			TestJob3 = jobs[2]
		}
	}

	return nil
}
