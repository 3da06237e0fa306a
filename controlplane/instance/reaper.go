/*
 Fleet, an orchestrator for ephemeral multiplayer game servers.
 Copyright (C) 2024 Yannic Rieger <oss@76k.io>

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as published by
 the Free Software Foundation, either version 3 of the License, or
 (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package instance

import (
	"context"
	"log/slog"
	"time"
)

type ReaperConfig struct {
	Interval         time.Duration
	HeartbeatTimeout time.Duration
}

// Reaper periodically looks at all instances that are not terminated.
// instances that have not sent a heartbeat within the timeout are marked
// as terminated, instances that exceed the active ceiling are flagged
// for termination.
type Reaper struct {
	logger    *slog.Logger
	cfg       ReaperConfig
	repo      Repository
	lifecycle *Lifecycle
	metrics   *Metrics
	stop      chan struct{}
	now       func() time.Time
}

func NewReaper(logger *slog.Logger, cfg ReaperConfig, repo Repository, lifecycle *Lifecycle, metrics *Metrics) *Reaper {
	return &Reaper{
		logger:    logger.With("component", "reaper"),
		cfg:       cfg,
		repo:      repo,
		lifecycle: lifecycle,
		metrics:   metrics,
		stop:      make(chan struct{}),
		now:       time.Now,
	}
}

// Start blocks until Stop is called or ctx is done.
func (r *Reaper) Start(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.tick(ctx)
		case <-r.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop must only be called once.
func (r *Reaper) Stop() {
	close(r.stop)
}

func (r *Reaper) tick(ctx context.Context) {
	instances, err := r.repo.ListUnterminatedInstances(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "failed to list instances", "err", err)
		return
	}

	now := r.now()
	for _, ins := range instances {
		r.sweep(ctx, ins, now)
	}
}

func (r *Reaper) sweep(ctx context.Context, ins Instance, now time.Time) {
	lastSeen := r.lifecycle.seen.SeedIfAbsent(ins.ServerID, now)

	if r.lifecycle.exceedsCeiling(ins, now) {
		r.lifecycle.flag(ctx, ins.ServerID, "active-ceiling")
	}

	if now.Sub(lastSeen) <= r.cfg.HeartbeatTimeout {
		return
	}

	logger := r.logger.With("server_id", ins.ServerID, "last_seen", lastSeen)

	if _, err := r.repo.AdvanceStatus(ctx, ins.ServerID, StatusTerminated); err != nil {
		logger.ErrorContext(ctx, "failed to terminate instance", "err", err)
		return
	}

	r.lifecycle.forget(ins.ServerID)
	r.metrics.reaped.Inc()
	logger.InfoContext(ctx, "terminated silent instance")
}
