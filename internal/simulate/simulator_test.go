package simulate

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/quantaflow/quantaflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingWriter captures status writes in order.
type recordingWriter struct {
	mu     sync.Mutex
	writes []models.FileStatus
}

func (w *recordingWriter) UpdateFileStatus(_ context.Context, _ string, status models.FileStatus) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.writes = append(w.writes, status)
}

func (w *recordingWriter) recorded() []models.FileStatus {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]models.FileStatus(nil), w.writes...)
}

func defaultTestStages() []Stage {
	return StagesFromDelays([]time.Duration{
		500 * time.Millisecond,
		1500 * time.Millisecond,
		2500 * time.Millisecond,
		3500 * time.Millisecond,
	})
}

func TestSimulator_BeginReturnsBeforeTransitions(t *testing.T) {
	clock := NewFakeClock(time.Unix(0, 0))
	writer := &recordingWriter{}
	sim := NewSimulator(writer, clock, defaultTestStages())

	sim.Begin("f1")
	assert.Empty(t, writer.recorded(), "no transition may run before time advances")
}

func TestSimulator_StagesFireInOrder(t *testing.T) {
	clock := NewFakeClock(time.Unix(0, 0))
	writer := &recordingWriter{}
	sim := NewSimulator(writer, clock, defaultTestStages())

	sim.Begin("f1")

	clock.Advance(600 * time.Millisecond)
	require.Equal(t, []models.FileStatus{models.FileExtractingFeatures}, writer.recorded())

	clock.Advance(1 * time.Second)
	require.Equal(t, []models.FileStatus{
		models.FileExtractingFeatures,
		models.FileFederatedEmbedding,
	}, writer.recorded())

	clock.Advance(10 * time.Second)
	require.Equal(t, []models.FileStatus{
		models.FileExtractingFeatures,
		models.FileFederatedEmbedding,
		models.FileQuantumOptimization,
		models.FileCompleted,
	}, writer.recorded())
}

func TestSimulator_SingleAdvanceFiresAllInDeadlineOrder(t *testing.T) {
	clock := NewFakeClock(time.Unix(0, 0))
	writer := &recordingWriter{}
	sim := NewSimulator(writer, clock, defaultTestStages())

	sim.Begin("f1")
	clock.Advance(time.Hour)

	require.Equal(t, []models.FileStatus{
		models.FileExtractingFeatures,
		models.FileFederatedEmbedding,
		models.FileQuantumOptimization,
		models.FileCompleted,
	}, writer.recorded())
}

func TestSimulator_IndependentFiles(t *testing.T) {
	clock := NewFakeClock(time.Unix(0, 0))
	writer := &recordingWriter{}
	sim := NewSimulator(writer, clock, StagesFromDelays([]time.Duration{time.Second}))

	sim.Begin("f1")
	clock.Advance(500 * time.Millisecond)
	sim.Begin("f2")
	clock.Advance(600 * time.Millisecond)

	// f1's timer fired, f2's has 400ms left.
	assert.Len(t, writer.recorded(), 1)
	clock.Advance(time.Second)
	assert.Len(t, writer.recorded(), 2)
}

func TestStagesFromDelays(t *testing.T) {
	stages := StagesFromDelays([]time.Duration{time.Second, 2 * time.Second})
	require.Len(t, stages, 2)
	assert.Equal(t, models.FileExtractingFeatures, stages[0].Status)
	assert.Equal(t, models.FileFederatedEmbedding, stages[1].Status)

	// More delays than stages: extras dropped.
	long := StagesFromDelays(make([]time.Duration, 10))
	assert.Len(t, long, 4)
	assert.Equal(t, models.FileCompleted, long[3].Status)
}

func TestFakeClock_Sleep(t *testing.T) {
	clock := NewFakeClock(time.Unix(0, 0))

	done := make(chan error, 1)
	go func() {
		done <- clock.Sleep(context.Background(), time.Second)
	}()
	// Give the sleeper a moment to register its timer.
	for i := 0; i < 100; i++ {
		clock.mu.Lock()
		n := len(clock.timers)
		clock.mu.Unlock()
		if n > 0 {
			break
		}
		time.Sleep(time.Millisecond)
	}
	clock.Advance(2 * time.Second)
	require.NoError(t, <-done)
}

func TestFakeClock_SleepZeroReturnsImmediately(t *testing.T) {
	clock := NewFakeClock(time.Unix(0, 0))
	require.NoError(t, clock.Sleep(context.Background(), 0))
}

func TestFakeClock_SleepCanceled(t *testing.T) {
	clock := NewFakeClock(time.Unix(0, 0))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, clock.Sleep(ctx, time.Minute), context.Canceled)
}

func TestRealClock_SleepHonorsContext(t *testing.T) {
	clock := NewClock()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, clock.Sleep(ctx, time.Minute), context.Canceled)
	require.NoError(t, clock.Sleep(context.Background(), time.Millisecond))
}
