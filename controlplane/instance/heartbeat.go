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
	"fmt"
	"log/slog"
	"time"

	apierrs "github.com/spacechunks/fleet/controlplane/errors"
)

type LifecycleConfig struct {
	// ActiveCeiling is the maximum age of an instance. older instances
	// are asked to terminate with their next heartbeat.
	ActiveCeiling time.Duration
}

// Lifecycle drives the state of instances based on the heartbeats
// their game server processes send.
type Lifecycle struct {
	logger  *slog.Logger
	cfg     LifecycleConfig
	repo    Repository
	metrics *Metrics
	seen    *heartbeatTracker
	pending *pendingTerminations
	now     func() time.Time
}

func NewLifecycle(logger *slog.Logger, cfg LifecycleConfig, repo Repository, metrics *Metrics) *Lifecycle {
	return &Lifecycle{
		logger:  logger.With("component", "lifecycle"),
		cfg:     cfg,
		repo:    repo,
		metrics: metrics,
		seen:    newHeartbeatTracker(),
		pending: newPendingTerminations(),
		now:     time.Now,
	}
}

// heartbeatEval carries the state of a single heartbeat through the rules.
type heartbeatEval struct {
	ins  Instance
	hb   Heartbeat
	now  time.Time
	resp HeartbeatResponse
}

type heartbeatRule struct {
	name  string
	apply func(*Lifecycle, context.Context, *heartbeatEval) error
}

// heartbeatRules are applied in order. later rules may override the
// operation chosen by earlier ones.
var heartbeatRules = []heartbeatRule{
	{name: "reported-state", apply: (*Lifecycle).applyReportedState},
	{name: "active-ceiling", apply: (*Lifecycle).applyActiveCeiling},
	{name: "pending-termination", apply: (*Lifecycle).applyPendingTermination},
	{name: "track", apply: (*Lifecycle).applyTrack},
}

// HandleHeartbeat evaluates a heartbeat sent by the game server process
// of the instance and returns the operation the process has to perform.
func (l *Lifecycle) HandleHeartbeat(ctx context.Context, serverID string, hb Heartbeat) (HeartbeatResponse, error) {
	ins, err := l.repo.GetInstance(ctx, serverID)
	if err != nil {
		return HeartbeatResponse{}, err
	}

	if ins.Status == StatusTerminated {
		l.pending.Take(serverID)
		l.metrics.heartbeats.WithLabelValues(string(OperationTerminate)).Inc()
		return HeartbeatResponse{Operation: OperationTerminate}, nil
	}

	eval := &heartbeatEval{
		ins: ins,
		hb:  hb,
		now: l.now(),
	}

	for _, r := range heartbeatRules {
		if err := r.apply(l, ctx, eval); err != nil {
			return HeartbeatResponse{}, fmt.Errorf("%s: %w", r.name, err)
		}
	}

	l.metrics.heartbeats.WithLabelValues(string(eval.resp.Operation)).Inc()
	return eval.resp, nil
}

func (l *Lifecycle) applyReportedState(ctx context.Context, e *heartbeatEval) error {
	switch e.hb.CurrentGameState {
	case GameStateStandingBy:
		cfg := e.ins.SessionConfig
		e.resp = HeartbeatResponse{
			Operation:     OperationActive,
			SessionConfig: &cfg,
		}
	case GameStateActive:
		if e.ins.Status.Before(StatusActive) {
			advanced, err := l.repo.AdvanceStatus(ctx, e.ins.ServerID, StatusActive)
			if err != nil {
				return fmt.Errorf("advance status: %w", err)
			}
			if advanced {
				l.logger.InfoContext(ctx, "instance became active", "server_id", e.ins.ServerID)
			}
		}
		e.resp = HeartbeatResponse{Operation: OperationContinue}
	case GameStateTerminating:
		e.resp = HeartbeatResponse{Operation: OperationContinue}
	default:
		e.resp = HeartbeatResponse{Operation: OperationInvalid}
	}
	return nil
}

func (l *Lifecycle) applyActiveCeiling(ctx context.Context, e *heartbeatEval) error {
	if !l.exceedsCeiling(e.ins, e.now) {
		return nil
	}
	l.flag(ctx, e.ins.ServerID, "active-ceiling")
	return nil
}

func (l *Lifecycle) applyPendingTermination(ctx context.Context, e *heartbeatEval) error {
	if !l.pending.Take(e.ins.ServerID) {
		return nil
	}
	l.logger.InfoContext(ctx, "asking instance to terminate", "server_id", e.ins.ServerID)
	e.resp = HeartbeatResponse{Operation: OperationTerminate}
	return nil
}

func (l *Lifecycle) applyTrack(_ context.Context, e *heartbeatEval) error {
	l.seen.Record(e.ins.ServerID, e.now)
	l.metrics.tracked.Set(float64(l.seen.Len()))
	return nil
}

// RequestTermination flags the instance, so its next heartbeat is
// answered with [OperationTerminate].
func (l *Lifecycle) RequestTermination(ctx context.Context, serverID string) error {
	ins, err := l.repo.GetInstance(ctx, serverID)
	if err != nil {
		return err
	}

	if ins.Status == StatusTerminated {
		return apierrs.ErrInstanceAlreadyTerminated
	}

	l.flag(ctx, serverID, "requested")
	return nil
}

func (l *Lifecycle) exceedsCeiling(ins Instance, now time.Time) bool {
	return ins.Status != StatusTerminated && now.Sub(ins.CreatedAt) > l.cfg.ActiveCeiling
}

func (l *Lifecycle) flag(ctx context.Context, serverID string, reason string) {
	if !l.pending.Add(serverID) {
		return
	}
	l.metrics.terminationFlags.WithLabelValues(reason).Inc()
	l.logger.InfoContext(ctx, "flagged instance for termination", "server_id", serverID, "reason", reason)
}

// forget drops everything tracked for the instance.
func (l *Lifecycle) forget(serverID string) {
	l.seen.Delete(serverID)
	l.pending.Take(serverID)
	l.metrics.tracked.Set(float64(l.seen.Len()))
}
