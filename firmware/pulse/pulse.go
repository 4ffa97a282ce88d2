// Package pulse switches channels on for a fixed window and switches them off again once the
// window has elapsed. Every channel is an independent armed-pulse record; the scheduler only
// shares the polling granularity of whoever calls Tick.
package pulse

import (
	"errors"
	"time"

	"github.com/calvinmclean/dondonpa"
)

var ErrUnknownChannel = errors.New("unknown channel")

// Actuator is the thing a channel drives, like an output pin or an LED strip
type Actuator interface {
	On() error
	Off() error
}

// Config describes a single channel
type Config struct {
	Channel  dondonpa.Channel
	Duration time.Duration
	Actuator Actuator
}

type record struct {
	Config

	active      bool
	activatedAt time.Duration
}

// Scheduler holds the armed-pulse records and expires them on Tick
type Scheduler struct {
	records []*record
}

// New creates a Scheduler with one record per config. Channels start inactive.
func New(configs ...Config) *Scheduler {
	s := &Scheduler{}
	for _, cfg := range configs {
		s.records = append(s.records, &record{Config: cfg})
	}
	return s
}

// Fire switches the channel on and (re)starts its window at now. Firing a channel that is
// already active only restarts its timer.
func (s *Scheduler) Fire(ch dondonpa.Channel, now time.Duration) error {
	r := s.find(ch)
	if r == nil {
		return ErrUnknownChannel
	}

	r.active = true
	r.activatedAt = now

	err := r.Actuator.On()
	if err != nil {
		return errors.New(ch.String() + " on: " + err.Error())
	}
	return nil
}

// Tick switches off every channel whose window has elapsed. A failing actuator does not
// stop the others from expiring, and is never retried.
func (s *Scheduler) Tick(now time.Duration) error {
	var errs []error
	for _, r := range s.records {
		if !r.active || now-r.activatedAt < r.Duration {
			continue
		}

		r.active = false
		err := r.Actuator.Off()
		if err != nil {
			errs = append(errs, errors.New(r.Channel.String()+" off: "+err.Error()))
		}
	}
	return errors.Join(errs...)
}

// Active reports whether the channel is inside its window
func (s *Scheduler) Active(ch dondonpa.Channel) bool {
	r := s.find(ch)
	return r != nil && r.active
}

// ActivatedAt returns when the channel was last fired, and false if it is not active
func (s *Scheduler) ActivatedAt(ch dondonpa.Channel) (time.Duration, bool) {
	r := s.find(ch)
	if r == nil || !r.active {
		return 0, false
	}
	return r.activatedAt, true
}

func (s *Scheduler) find(ch dondonpa.Channel) *record {
	for _, r := range s.records {
		if r.Channel == ch {
			return r
		}
	}
	return nil
}
