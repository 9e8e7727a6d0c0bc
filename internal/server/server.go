package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"talentbridge-backend/internal/database"
	"talentbridge-backend/internal/notify"
)

// MyServer contain port which server are running on, database instance and
// the notification publisher shared by the handlers
type MyServer struct {
	port int

	DB       *database.DBinstanceStruct
	Notifier notify.Publisher
}

// NewServer construct new Server instance
func NewServer() *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	if os.Getenv("SECRET_KEY") == "" {
		log.Fatal("SECRET_KEY environment variable is not set")
	}

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatalf("Database failed to initialize: %s", err)
	}

	// The API keeps serving without a broker, applications are stored either
	// way and only the employer mail is skipped.
	var notifier notify.Publisher
	if queue, err := notify.NewQueue(); err != nil {
		logrus.WithError(err).Warn("Notification queue unavailable, employer notifications disabled")
	} else {
		notifier = queue
	}

	s := &MyServer{
		port:     port,
		DB:       db,
		Notifier: notifier,
	}

	// Declare Server config
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
