package audio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/morsekit/morse-translator/internal/model"
	"github.com/morsekit/morse-translator/internal/morse"
	"github.com/morsekit/morse-translator/internal/platform"
)

// Output file naming
const (
	OutputBaseName  = "morse_code_audio"
	OutputExtension = ".wav"
)

// Generator defines the interface for the audio generation service.
type Generator interface {
	SetUpdateCallback(func(*model.AudioJob))
	Generate(text string) (*model.AudioJob, error)
	GetJob(id string) (*model.AudioJob, bool)
	GetAllJobs() []*model.AudioJob
	Play(ctx context.Context, path string) error

	// SetOutputDirectory sets the directory generated files are written to
	SetOutputDirectory(dir string)

	// SetParams reconfigures tone, volume, sample rate and keying speed
	SetParams(params Params)
}

// Service handles audio generation and playback
type Service struct {
	jobs      map[string]*model.AudioJob
	jobsMutex sync.RWMutex
	outputDir string
	params    Params
	player    *Player
	onUpdate  func(*model.AudioJob) // callback for UI updates
}

// NewService creates a new audio service
func NewService(outputDir string, params Params) *Service {
	return &Service{
		jobs:      make(map[string]*model.AudioJob),
		outputDir: outputDir,
		params:    params.withDefaults(),
		player:    NewPlayer(),
	}
}

// SetUpdateCallback sets the callback function for job updates
func (s *Service) SetUpdateCallback(callback func(*model.AudioJob)) {
	s.onUpdate = callback
}

// SetOutputDirectory sets the output directory for generated files
func (s *Service) SetOutputDirectory(dir string) {
	s.jobsMutex.Lock()
	defer s.jobsMutex.Unlock()
	s.outputDir = dir
}

// SetParams reconfigures synthesis parameters for subsequent jobs
func (s *Service) SetParams(params Params) {
	s.jobsMutex.Lock()
	defer s.jobsMutex.Unlock()
	s.params = params.withDefaults()
}

// Generate adds a new generation job for the given text and starts it. The
// text must already be sanitized; characters without a morse pattern are
// skipped by the encoder.
func (s *Service) Generate(text string) (*model.AudioJob, error) {
	encoded, err := morse.ToMorse(text)
	if err != nil {
		return nil, err
	}

	job := &model.AudioJob{
		ID:        uuid.NewString(),
		Text:      text,
		Status:    model.JobStatusPending,
		StartedAt: time.Now(),
	}

	s.jobsMutex.Lock()
	s.jobs[job.ID] = job
	s.jobsMutex.Unlock()

	go s.runJob(job, encoded.Output)

	return job, nil
}

// GetJob returns a job by ID
func (s *Service) GetJob(id string) (*model.AudioJob, bool) {
	s.jobsMutex.RLock()
	defer s.jobsMutex.RUnlock()
	job, exists := s.jobs[id]
	return job, exists
}

// GetAllJobs returns all jobs
func (s *Service) GetAllJobs() []*model.AudioJob {
	s.jobsMutex.RLock()
	defer s.jobsMutex.RUnlock()

	jobs := make([]*model.AudioJob, 0, len(s.jobs))
	for _, job := range s.jobs {
		jobs = append(jobs, job)
	}
	return jobs
}

// Play plays a previously generated file
func (s *Service) Play(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("no audio file has been generated yet")
	}
	return s.player.Play(ctx, path)
}

// runJob performs synthesis for a single job
func (s *Service) runJob(job *model.AudioJob, pattern string) {
	s.jobsMutex.Lock()
	job.Status = model.JobStatusGenerating
	outputDir := s.outputDir
	params := s.params
	s.jobsMutex.Unlock()
	s.notifyUpdate(job)

	path, err := s.writeFile(outputDir, params, pattern)

	s.jobsMutex.Lock()
	job.FinishedAt = time.Now()
	if err != nil {
		job.Status = model.JobStatusError
		job.LastError = err.Error()
	} else {
		job.Status = model.JobStatusReady
		job.OutputPath = path
	}
	s.jobsMutex.Unlock()
	s.notifyUpdate(job)
}

// writeFile ensures the output directory, picks the first unused sequence
// name and renders the WAV file into it.
func (s *Service) writeFile(outputDir string, params Params, pattern string) (string, error) {
	if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path, err := platform.NextSequencePath(outputDir, OutputBaseName, OutputExtension)
	if err != nil {
		return "", err
	}

	synth := NewSynthesizer(params)
	if err := synth.WriteFile(path, pattern); err != nil {
		return "", err
	}
	return path, nil
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(job *model.AudioJob) {
	if s.onUpdate != nil {
		s.onUpdate(job)
	}
}
