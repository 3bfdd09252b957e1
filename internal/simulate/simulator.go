package simulate

import (
	"context"
	"time"

	"github.com/quantaflow/quantaflow/internal/models"
	"go.uber.org/zap"
)

// StatusWriter is the slice of the store the simulator mutates.
type StatusWriter interface {
	UpdateFileStatus(ctx context.Context, fileID string, status models.FileStatus)
}

// Stage is one delayed status transition, at a fixed offset from upload time.
type Stage struct {
	After  time.Duration
	Status models.FileStatus
}

// stageSequence is the canonical order a file moves through after upload.
var stageSequence = []models.FileStatus{
	models.FileExtractingFeatures,
	models.FileFederatedEmbedding,
	models.FileQuantumOptimization,
	models.FileCompleted,
}

// StagesFromDelays pairs the given offsets with the canonical stage sequence.
// Extra delays beyond the sequence are ignored; fewer delays produce a
// truncated pipeline.
func StagesFromDelays(delays []time.Duration) []Stage {
	n := len(delays)
	if n > len(stageSequence) {
		n = len(stageSequence)
	}
	stages := make([]Stage, 0, n)
	for i := 0; i < n; i++ {
		stages = append(stages, Stage{After: delays[i], Status: stageSequence[i]})
	}
	return stages
}

// Simulator schedules the fire-and-forget stage transitions for uploaded
// files. There is no cancellation and no completion signal; callers observe
// progress by polling the store.
type Simulator struct {
	store  StatusWriter
	clock  Clock
	stages []Stage
	logger *zap.Logger
}

// SimulatorOption configures a Simulator.
type SimulatorOption func(*Simulator)

// WithLogger enables debug logging of stage transitions.
func WithLogger(logger *zap.Logger) SimulatorOption {
	return func(s *Simulator) {
		s.logger = logger
	}
}

// NewSimulator creates a simulator writing transitions for the given stages.
func NewSimulator(store StatusWriter, clock Clock, stages []Stage, opts ...SimulatorOption) *Simulator {
	s := &Simulator{
		store:  store,
		clock:  clock,
		stages: stages,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Begin schedules every stage transition for the file and returns
// immediately. Each transition is independent; nothing re-checks the
// previous status before writing the next one.
func (s *Simulator) Begin(fileID string) {
	for _, stage := range s.stages {
		stage := stage
		s.clock.AfterFunc(stage.After, func() {
			s.store.UpdateFileStatus(context.Background(), fileID, stage.Status)
			s.logger.Debug("file stage transition",
				zap.String("file_id", fileID),
				zap.String("status", string(stage.Status)))
		})
	}
}
