package notify

import (
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultRetryDelay is the wait between delivery attempts
	DefaultRetryDelay = 5 * time.Minute
	// DefaultMaxAttempts is the total number of delivery tries per notification
	DefaultMaxAttempts = 3
)

// Worker drains the notification queue and mails employers. Failed sends are
// re-queued with a fixed delay until MaxAttempts is reached, then dropped.
type Worker struct {
	Publisher   Publisher
	Mailer      Mailer
	RetryDelay  time.Duration
	MaxAttempts int
	Log         *logrus.Logger
}

// NewWorker wires a worker with the default retry policy.
func NewWorker(publisher Publisher, mailer Mailer) *Worker {
	return &Worker{
		Publisher:   publisher,
		Mailer:      mailer,
		RetryDelay:  DefaultRetryDelay,
		MaxAttempts: DefaultMaxAttempts,
		Log:         logrus.New(),
	}
}

// Run consumes from the queue until it closes. Blocks the calling goroutine.
func (w *Worker) Run(queue *Queue) error {
	return queue.Consume(w.Process)
}

// Process attempts one delivery. On transport failure the notification is
// re-published with an incremented attempt counter after RetryDelay; once
// attempts are exhausted the notification is dropped with a log line.
func (w *Worker) Process(n ApplicationNotification) {
	if n.Attempt == 0 {
		n.Attempt = 1
	}

	log := w.Log.WithFields(logrus.Fields{
		"employer": n.EmployerEmail,
		"job":      n.JobTitle,
		"attempt":  n.Attempt,
	})

	err := w.Mailer.Send(n)
	if err == nil {
		log.Info("application notification delivered")
		return
	}

	if n.Attempt >= w.MaxAttempts {
		log.WithError(err).Warn("application notification dropped after exhausting retries")
		return
	}

	log.WithError(err).Infof("mail send failed, retrying in %s", w.RetryDelay)

	retry := n
	retry.Attempt = n.Attempt + 1
	time.AfterFunc(w.RetryDelay, func() {
		if err := w.Publisher.PublishApplicationNotification(retry); err != nil {
			w.Log.WithError(err).Warn("failed to re-queue notification, dropping")
		}
	})
}
