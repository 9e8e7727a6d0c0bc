// Package notify implement the best-effort employer notification pipeline.
// Applications are persisted independently of this pipeline: enqueue and
// delivery failures are logged and dropped, never surfaced to the apply request.
package notify

// ApplicationNotification is the unit of work queued when a candidate applies.
type ApplicationNotification struct {
	EmployerEmail  string `json:"employer_email"`
	JobTitle       string `json:"job_title"`
	CandidateEmail string `json:"candidate_email"`
	// Attempt counts delivery tries, starting at 1 for the first send.
	Attempt int `json:"attempt"`
}

// Publisher schedules an application notification for asynchronous delivery.
type Publisher interface {
	PublishApplicationNotification(n ApplicationNotification) error
}
