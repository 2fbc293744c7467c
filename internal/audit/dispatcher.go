package audit

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Dispatcher decouples audit writes from the request path. Events are handed
// to a bounded queue and persisted by a background worker; when the queue is
// full the event is dropped rather than blocking the API.
type Dispatcher struct {
	rec   Recorder
	log   *logrus.Logger
	queue chan Event
	done  chan struct{}
}

func NewDispatcher(rec Recorder, log *logrus.Logger) *Dispatcher {
	d := &Dispatcher{
		rec:   rec,
		log:   log,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.rec.Record(context.Background(), ev.entry()); err != nil {
			d.log.WithFields(logrus.Fields{
				"action": ev.Action,
				"error":  err.Error(),
			}).Warn("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.WithField("action", ev.Action).Warn("audit queue full, dropping event")
	}
}

// Close drains the queue and stops the worker. Called once at shutdown.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}
