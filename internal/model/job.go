package model

import (
	"path/filepath"
	"time"
)

// AudioJob represents a single audio generation job
type AudioJob struct {
	ID         string
	Text       string // normalized text the audio is rendered from
	Status     JobStatus
	OutputPath string // path to the generated WAV file, set on success
	LastError  string // last error message if any
	StartedAt  time.Time
	FinishedAt time.Time
}

// GetDisplayName returns the output filename, or the input text while the
// job has not produced a file yet
func (j *AudioJob) GetDisplayName() string {
	if j.OutputPath != "" {
		return filepath.Base(j.OutputPath)
	}
	return j.Text
}
