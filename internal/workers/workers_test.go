// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-seller-sync/internal/logger"
)

// recordingWorker appends its id to a shared journal on Run and Stop.
type recordingWorker struct {
	id      int
	journal *[]string
}

func (r *recordingWorker) Run()  { *r.journal = append(*r.journal, "run", string(rune('0'+r.id))) }
func (r *recordingWorker) Stop() { *r.journal = append(*r.journal, "stop", string(rune('0'+r.id))) }

func TestWorkers_RunAndStopOrder(t *testing.T) {
	var journal []string
	ws := NewWorkers(
		&recordingWorker{id: 1, journal: &journal},
		&recordingWorker{id: 2, journal: &journal},
		&recordingWorker{id: 3, journal: &journal},
	)

	ws.Run()
	ws.Stop()

	assert.Equal(t, []string{
		"run", "1", "run", "2", "run", "3",
		"stop", "3", "stop", "2", "stop", "1",
	}, journal)
}

func TestWorkers_Empty(t *testing.T) {
	tests := []struct {
		name string
		ws   *Workers
	}{
		{"no workers", NewWorkers()},
		{"zero value", &Workers{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				tt.ws.Run()
				tt.ws.Stop()
			})
		})
	}
}

type fakeJob struct {
	mu       sync.Mutex
	started  int
	stopped  int
	interval time.Duration
	ctx      context.Context
}

func (f *fakeJob) Start(ctx context.Context, interval time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started++
	f.interval = interval
	f.ctx = ctx
}

func (f *fakeJob) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped++
}

func TestSyncWorker_DelegatesToJob(t *testing.T) {
	job := &fakeJob{}
	w := NewSyncWorker(context.Background(), job, 3*time.Minute, logger.Nop())

	w.Run()

	require.Equal(t, 1, job.started)
	assert.Equal(t, 3*time.Minute, job.interval)
	assert.NotNil(t, logger.FromContext(job.ctx))

	w.Stop()

	assert.Equal(t, 1, job.stopped)
}

func TestSyncWorker_JobSeesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	job := &fakeJob{}
	w := NewSyncWorker(ctx, job, time.Second, logger.Nop())

	w.Run()
	cancel()

	select {
	case <-job.ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("job context was not cancelled")
	}
}
