package game

import (
	"context"
	"log/slog"
	"time"
)

// HeartbeatInterval is how often a live session republishes its presence.
const HeartbeatInterval = 60 * time.Second

// Publisher drives the presence heartbeat for one session in the
// background. It only publishes presence and refreshes the session's
// online-player cache; gameplay state is never touched, so it cannot race
// with command processing.
type Publisher struct {
	svc      Service
	session  *Session
	interval time.Duration
}

// NewPublisher creates a presence publisher for the session. A zero
// interval means HeartbeatInterval.
func NewPublisher(svc Service, session *Session, interval time.Duration) *Publisher {
	if interval == 0 {
		interval = HeartbeatInterval
	}
	return &Publisher{svc: svc, session: session, interval: interval}
}

// Run publishes heartbeats until the context is cancelled. Failures are
// logged and the loop keeps going; presence is best effort.
func (p *Publisher) Run(ctx context.Context) {
	p.beat(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.beat(ctx)
		}
	}
}

func (p *Publisher) beat(ctx context.Context) {
	if _, err := p.svc.Heartbeat(ctx, &HeartbeatInput{Session: p.session}); err != nil {
		slog.WarnContext(ctx, "heartbeat failed", "error", err)
	}
}
