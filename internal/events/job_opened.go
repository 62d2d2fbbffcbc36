package events

const JobOpenedTopic = "job:opened"

// JobOpened is published when a job is created with (or transitions to) the
// open status, so the notification pipeline can react without coupling the
// API layer to the sweeper.
type JobOpened struct {
	JobID     string
	Specialty string
	State     string
}
