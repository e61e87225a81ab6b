package model

// JobStatus represents the status of an audio generation job
type JobStatus string

const (
	// JobStatusPending means the job is queued but not started
	JobStatusPending JobStatus = "Pending"

	// JobStatusGenerating means synthesis is in progress
	JobStatusGenerating JobStatus = "Generating"

	// JobStatusReady means the audio file was written successfully
	JobStatusReady JobStatus = "Ready"

	// JobStatusError means the job failed with an error
	JobStatusError JobStatus = "Error"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job is still being worked on
func (js JobStatus) IsActive() bool {
	return js == JobStatusPending || js == JobStatusGenerating
}

// IsFinished returns true if the job reached a terminal state
func (js JobStatus) IsFinished() bool {
	return js == JobStatusReady || js == JobStatusError
}
