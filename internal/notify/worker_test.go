package notify

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type fakeMailer struct {
	mu       sync.Mutex
	failures int
	sent     []ApplicationNotification
}

func (f *fakeMailer) Send(n ApplicationNotification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, n)
	return nil
}

func (f *fakeMailer) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type fakePublisher struct {
	mu        sync.Mutex
	published []ApplicationNotification
	worker    *Worker
}

func (f *fakePublisher) PublishApplicationNotification(n ApplicationNotification) error {
	f.mu.Lock()
	f.published = append(f.published, n)
	f.mu.Unlock()
	// Loop straight back into the worker, standing in for the broker round trip.
	if f.worker != nil {
		f.worker.Process(n)
	}
	return nil
}

func (f *fakePublisher) publishedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.published)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func testWorker(mailer Mailer, publisher Publisher) *Worker {
	return &Worker{
		Publisher:   publisher,
		Mailer:      mailer,
		RetryDelay:  time.Millisecond,
		MaxAttempts: DefaultMaxAttempts,
		Log:         quietLogger(),
	}
}

func TestProcessDeliversFirstTry(t *testing.T) {
	mailer := &fakeMailer{}
	publisher := &fakePublisher{}
	w := testWorker(mailer, publisher)

	w.Process(ApplicationNotification{
		EmployerEmail:  "employer@example.com",
		JobTitle:       "Backend Engineer",
		CandidateEmail: "candidate@example.com",
	})

	assert.Equal(t, 1, mailer.sentCount())
	assert.Equal(t, 0, publisher.publishedCount(), "no retry expected on success")
}

func TestProcessRetriesThenDelivers(t *testing.T) {
	mailer := &fakeMailer{failures: 2}
	publisher := &fakePublisher{}
	w := testWorker(mailer, publisher)
	publisher.worker = w

	w.Process(ApplicationNotification{
		EmployerEmail:  "employer@example.com",
		JobTitle:       "Backend Engineer",
		CandidateEmail: "candidate@example.com",
	})

	assert.Eventually(t, func() bool {
		return mailer.sentCount() == 1
	}, time.Second, 5*time.Millisecond, "third attempt should deliver")

	assert.Equal(t, 2, publisher.publishedCount())
	assert.Equal(t, 3, publisher.published[1].Attempt)
}

func TestProcessDropsAfterMaxAttempts(t *testing.T) {
	mailer := &fakeMailer{failures: 100}
	publisher := &fakePublisher{}
	w := testWorker(mailer, publisher)
	publisher.worker = w

	w.Process(ApplicationNotification{
		EmployerEmail:  "employer@example.com",
		JobTitle:       "Backend Engineer",
		CandidateEmail: "candidate@example.com",
	})

	// Two re-queues happen (attempts 2 and 3), then the notification is dropped.
	assert.Eventually(t, func() bool {
		return publisher.publishedCount() == 2
	}, time.Second, 5*time.Millisecond)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 2, publisher.publishedCount(), "no further retries after exhaustion")
	assert.Equal(t, 0, mailer.sentCount())
}

func TestMessageTemplates(t *testing.T) {
	n := ApplicationNotification{
		EmployerEmail:  "employer@example.com",
		JobTitle:       "Backend Engineer",
		CandidateEmail: "candidate@example.com",
	}

	assert.Equal(t, "New Application: Backend Engineer", subjectLine(n))

	text := textBody(n)
	assert.Contains(t, text, "candidate@example.com")
	assert.Contains(t, text, "Backend Engineer")

	html := htmlBody(n)
	assert.True(t, strings.Contains(html, "<strong>Backend Engineer</strong>"))
	assert.Contains(t, html, "candidate@example.com")
}
