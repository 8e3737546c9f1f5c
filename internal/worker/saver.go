// Package worker runs the async save pipeline. The board stays fully editable
// while a save is in flight; a newer snapshot supersedes an older unsent one
// (last-write-wins), and a failed save reports back without ever touching the
// live placement.
package worker

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/pitchconnect/tacticboard/internal/metrics"
	"github.com/pitchconnect/tacticboard/internal/queue"
	"github.com/pitchconnect/tacticboard/internal/storage"
	"github.com/pitchconnect/tacticboard/pkg/core"
)

// Result is the outcome of one save attempt. Stored holds the authoritative
// copy returned by the gateway on success.
type Result struct {
	Stored core.Tactic
	Err    error
}

// GatewayTimer receives a latency sample for every gateway call the saver
// makes. The influx manager implements it.
type GatewayTimer interface {
	WriteGatewayTiming(op string, d time.Duration, failed bool)
}

// Saver drains queued snapshots into the persistence gateway.
type Saver struct {
	gateway storage.Gateway
	log     zerolog.Logger
	timing  GatewayTimer

	pending *queue.Queue[core.Tactic]
	kick    chan struct{}
	results chan Result
	done    chan struct{}
}

// NewSaver creates a saver over a gateway. Call Start to begin draining.
func NewSaver(gateway storage.Gateway, log zerolog.Logger) *Saver {
	return &Saver{
		gateway: gateway,
		log:     log,
		pending: queue.New[core.Tactic](),
		kick:    make(chan struct{}, 1),
		results: make(chan Result, 16),
		done:    make(chan struct{}),
	}
}

// SetTiming installs a receiver for gateway call timings. Must be set before
// Start.
func (s *Saver) SetTiming(t GatewayTimer) {
	s.timing = t
}

// Start launches the drain goroutine.
func (s *Saver) Start() {
	go s.loop()
}

// Stop shuts the drain goroutine down. Pending snapshots are abandoned; the
// coach still holds the live placement and can re-save.
func (s *Saver) Stop() {
	close(s.done)
}

// Enqueue queues a snapshot for saving. Never blocks; an unsent earlier
// snapshot is superseded when the worker next drains.
func (s *Saver) Enqueue(doc core.Tactic) {
	s.pending.Push(doc)
	select {
	case s.kick <- struct{}{}:
	default:
	}
}

// Results delivers one Result per attempted save. Callers present failures to
// the user and may simply re-save; stale results for superseded snapshots
// never appear because superseded snapshots are never sent.
func (s *Saver) Results() <-chan Result {
	return s.results
}

func (s *Saver) loop() {
	for {
		select {
		case <-s.done:
			return
		case <-s.kick:
		}

		for {
			doc, ok := s.pending.PopLatest()
			if !ok {
				break
			}

			start := time.Now()
			stored, err := s.gateway.SaveTactic(doc)
			if s.timing != nil {
				s.timing.WriteGatewayTiming("saveTactic", time.Since(start), err != nil)
			}
			if err != nil {
				metrics.GatewayError("saveTactic")
				s.log.Error().Err(err).
					Uint("teamId", doc.TeamID).
					Str("tactic", doc.Name).
					Msg("Failed to save tactic")
			}

			select {
			case s.results <- Result{Stored: stored, Err: err}:
			case <-s.done:
				return
			}
		}
	}
}
