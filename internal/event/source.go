package event

import (
	"time"

	"termfolio/internal/errors"
	"termfolio/internal/log"
)

// DefaultTickRate is the tick period used when none is configured.
const DefaultTickRate = 250 * time.Millisecond

// Source merges notifications from an InputSource with a Tick every tick
// period. A background goroutine does the polling; Next hands events to
// the single consumer in the order they were produced.
type Source struct {
	in       InputSource
	tickRate time.Duration
	q        *queue
	done     chan struct{}
	now      func() time.Time
}

// NewSource starts polling in and returns the merged stream. A tickRate of
// zero or less selects DefaultTickRate.
func NewSource(in InputSource, tickRate time.Duration) *Source {
	return newSource(in, tickRate, time.Now)
}

func newSource(in InputSource, tickRate time.Duration, now func() time.Time) *Source {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	s := &Source{
		in:       in,
		tickRate: tickRate,
		q:        newQueue(),
		done:     make(chan struct{}),
		now:      now,
	}
	go s.run()
	return s
}

// TickRate returns the tick period.
func (s *Source) TickRate() time.Duration {
	return s.tickRate
}

// Next blocks until an event is available. It returns ErrSourceClosed once
// Close was called, and an *errors.InputError once the input source failed
// and every event produced before the failure has been delivered.
func (s *Source) Next() (Event, error) {
	return s.q.pop()
}

// Close tells the producer its consumer is gone. The producer notices at
// its next delivery or poll wake-up, so it stops within one tick period.
func (s *Source) Close() {
	s.q.close()
}

// Done is closed when the producer goroutine has exited.
func (s *Source) Done() <-chan struct{} {
	return s.done
}

func (s *Source) run() {
	defer close(s.done)
	log.LogWithFields(log.F("tick_rate", s.tickRate)).Debug("event source started")

	lastTick := s.now()
	for {
		if s.q.isClosed() {
			log.Debug("event source stopped: consumer closed")
			return
		}

		remaining := s.tickRate - s.now().Sub(lastTick)
		if remaining < 0 {
			remaining = 0
		}

		ready, err := s.in.Poll(remaining)
		if err != nil {
			s.fail(errors.NewInputError("poll", errors.InputPollFailed, err))
			return
		}
		if ready {
			raw, err := s.in.Read()
			if err != nil {
				s.fail(errors.NewInputError("read", errors.InputReadFailed, err))
				return
			}
			if ev, ok := Classify(raw); ok {
				if !s.q.push(ev) {
					return
				}
			} else {
				log.LogWithFields(log.F("kind", raw.Kind)).Debug("ignoring input notification")
			}
		}

		if now := s.now(); now.Sub(lastTick) >= s.tickRate {
			if !s.q.push(Tick{Time: now}) {
				return
			}
			lastTick = now
		}
	}
}

func (s *Source) fail(err *errors.InputError) {
	if s.q.isClosed() {
		// The consumer left first; input errors after that are shutdown noise.
		log.LogWithError(err).Debug("event source stopped: consumer closed")
		return
	}
	log.LogWithError(err).Error("event source stopped")
	s.q.finish(err)
}
