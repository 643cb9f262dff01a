// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-seller-sync/internal/logger"
)

type syncWorker struct {
	ctx      context.Context
	job      Job
	interval time.Duration
	logger   *logger.Logger
}

// NewSyncWorker wraps a periodic sync job. The job runs under ctx, which
// also carries the logger the job reports through.
func NewSyncWorker(ctx context.Context, job Job, interval time.Duration, log *logger.Logger) Worker {
	return &syncWorker{
		ctx:      log.WithContext(ctx),
		job:      job,
		interval: interval,
		logger:   log,
	}
}

func (s *syncWorker) Run() {
	s.logger.Info().Dur("interval", s.interval).Msg("sync worker started")
	s.job.Start(s.ctx, s.interval)
}

func (s *syncWorker) Stop() {
	s.job.Stop()
	s.logger.Info().Msg("sync worker stopped")
}
