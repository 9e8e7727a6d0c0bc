// Command sweeper periodically deactivates jobs whose deadline has passed.
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	"talentbridge-backend/internal/database"
	"talentbridge-backend/internal/sweep"
)

const defaultInterval = time.Hour

func main() {
	log := logrus.New()

	db, err := database.GetMainDB()
	if err != nil {
		log.WithError(err).Fatal("Database failed to initialize")
	}

	interval := defaultInterval
	if raw := os.Getenv("SWEEP_INTERVAL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.WithError(err).Fatal("SWEEP_INTERVAL is invalid")
		}
		interval = parsed
	}

	stop := make(chan struct{})
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		close(stop)
	}()

	log.WithField("interval", interval).Info("Deactivation sweeper started")
	sweep.Run(db, interval, stop)
}
