package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"mad-life/internal/runner"
	simcore "mad-life/pkg/core"
	"mad-life/pkg/sims/life"
)

// Snapshotter is a simulation that can hand out copies of its board.
type Snapshotter interface {
	Grid() *life.Grid
}

// Session feeds the generations shown by the GUI to the same sinks the
// headless runner uses and stops the game after a generation limit.
type Session struct {
	sim    simcore.Sim
	snap   Snapshotter
	sinks  []runner.FrameSink
	limit  int
	log    *slog.Logger
	last   int
	closed bool
}

// NewSession wraps sim. A limit of 0 runs until the window closes.
func NewSession(sim simcore.Sim, limit int, logger *slog.Logger, sinks ...runner.FrameSink) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{sim: sim, sinks: sinks, limit: limit, log: logger, last: -1}
	if len(sinks) > 0 {
		snap, ok := sim.(Snapshotter)
		if !ok {
			return nil, fmt.Errorf("sim %q cannot be recorded", sim.Name())
		}
		s.snap = snap
	}
	return s, nil
}

// Generation returns the sim's generation, or 0 when it does not report one.
func (s *Session) Generation() int {
	if rep, ok := s.sim.(simcore.GenerationReporter); ok {
		return rep.Generation()
	}
	return 0
}

// Capture hands the current generation to every sink. A generation already
// captured is skipped, so calling Capture on every frame is safe.
func (s *Session) Capture() error {
	if s.snap == nil {
		return nil
	}
	gen := s.Generation()
	if gen == s.last {
		return nil
	}
	s.last = gen
	g := s.snap.Grid()
	for _, sink := range s.sinks {
		if err := sink.Frame(gen, g); err != nil {
			return err
		}
	}
	return nil
}

// Restart forgets the captured generation after the sim was reset.
func (s *Session) Restart() { s.last = -1 }

// Done reports whether the generation limit has been reached.
func (s *Session) Done() bool {
	return s.limit > 0 && s.Generation() >= s.limit
}

// Close closes every sink that implements io.Closer. Only the first call
// does any work.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	var errs []error
	for _, sink := range s.sinks {
		if c, ok := sink.(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}
	err := errors.Join(errs...)
	if err != nil {
		s.log.Error("closing session outputs", "error", err)
	}
	return err
}
