// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"talentbridge-backend/internal/auth"
	"talentbridge-backend/internal/cache"
	"talentbridge-backend/internal/controller/application"
	"talentbridge-backend/internal/controller/job"
	"talentbridge-backend/internal/controller/profile"
	"talentbridge-backend/internal/middleware"
	"talentbridge-backend/internal/model"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "talentbridge-backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOrginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrgins := strings.Split(allowOrginsStr, ",")

	lAuth := auth.NewLocalAuthHandler(s.DB)
	jobController := job.NewJobController(s.DB)
	applicationController := application.NewApplicationController(s.DB, s.Notifier)
	profileController := profile.NewProfileController(s.DB)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrgins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.SafeHeader())

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	v1.Use(middleware.EnvRateLimitMiddleware())
	{
		authRoute := v1.Group("/auth")
		{
			authRoute.POST("login", lAuth.LoginHandler)
			authRoute.POST("register", lAuth.RegisterHandler)
		}

		// Job catalog reads are public, guests get no viewer specific fields
		jobRoute := v1.Group("/jobs")
		{
			jobRoute.GET("", middleware.OptionalAuth(s.DB), jobController.GetJobs)
			jobRoute.GET(":id", middleware.OptionalAuth(s.DB), jobController.GetJobByID)

			needAuth := jobRoute.Group("")
			{
				needAuth.Use(middleware.RequireAuth(s.DB))
				needAuth.POST(":id/bookmark", jobController.ToggleBookmark)
				needAuth.GET("bookmarks", jobController.Bookmarks)

				needEmployer := needAuth.Group("")
				{
					needEmployer.Use(middleware.CheckRole(model.RoleEmployer))
					needEmployer.POST("", middleware.SizeLimit(1<<20), jobController.CreateJobHandler)
					needEmployer.PUT(":id", middleware.SizeLimit(1<<20), jobController.EditJob)
					needEmployer.DELETE(":id", jobController.DeleteJob)
					needEmployer.GET("my-jobs", jobController.MyJobs)
					needEmployer.GET(":id/applications", applicationController.ListJobApplications)
					needEmployer.PATCH("applications/:id", applicationController.UpdateApplicationStatus)
				}

				needCandidate := needAuth.Group("")
				{
					needCandidate.Use(middleware.CheckRole(model.RoleCandidate))
					needCandidate.POST(":id/apply", middleware.SizeLimit(1<<20), applicationController.Apply)
					needCandidate.GET("applications/me", applicationController.MyApplications)
				}
			}
		}

		profileRoute := v1.Group("/profile")
		{
			profileRoute.Use(middleware.RequireAuth(s.DB))
			profileRoute.GET("me", profileController.GetMe)
			profileRoute.PATCH("employer", middleware.CheckRole(model.RoleEmployer), profileController.EditEmployerProfile)
			profileRoute.PATCH("candidate", middleware.CheckRole(model.RoleCandidate), profileController.EditCandidateProfile)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *MyServer) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

// healthHandler reports the state of every backing service. Any probe that is
// not "up" fails the whole check with 503.
func (s *MyServer) healthHandler(c *gin.Context) {
	dbHealth := s.DB.Health()
	cacheHealth := cache.Health()

	status := http.StatusOK
	if dbHealth["status"] != "up" || cacheHealth["status"] != "up" {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"database": dbHealth,
		"cache":    cacheHealth,
	})
}
