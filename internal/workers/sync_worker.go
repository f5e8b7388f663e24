// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"
)

// SyncJob is the lifecycle contract of the periodic vault sync job. It is
// satisfied by the service layer's sync job implementation.
type SyncJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

type syncWorker struct {
	ctx      context.Context
	job      SyncJob
	interval time.Duration
}

// NewSyncWorker wraps a SyncJob as a [Worker]. Run starts the job's ticker
// goroutine under ctx; the job stops when ctx is cancelled or Stop is called
// on the job directly.
func NewSyncWorker(ctx context.Context, job SyncJob, interval time.Duration) Worker {
	return &syncWorker{ctx: ctx, job: job, interval: interval}
}

func (w *syncWorker) Run() {
	w.job.Start(w.ctx, w.interval)
}
