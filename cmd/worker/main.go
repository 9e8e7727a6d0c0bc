// Command worker consumes queued application notifications and delivers
// employer mail with bounded retry.
package main

import (
	"github.com/sirupsen/logrus"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	"talentbridge-backend/internal/notify"
)

func main() {
	log := logrus.New()

	queue, err := notify.NewQueue()
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to notification queue")
	}
	defer func() { _ = queue.Close() }()

	worker := notify.NewWorker(queue, notify.NewSMTPMailer())
	worker.Log = log

	log.WithField("queue", notify.QueueName).Info("Notification worker started")
	if err := worker.Run(queue); err != nil {
		log.WithError(err).Fatal("Worker stopped")
	}
}
