package slider

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alkime/slidebar/pkg/channels"
)

// EventKind identifies a slider lifecycle event.
type EventKind int

const (
	EventStart EventKind = iota + 1
	EventStop
	EventValueChanged
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventStop:
		return "stop"
	case EventValueChanged:
		return "value_changed"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a slider lifecycle event as delivered by ChannelListener.
// Value is the slider's value when the event fired.
type Event struct {
	Kind  EventKind
	Value float64
}

// ChannelListener forwards slider events to a channel without blocking the
// event loop. Events are dropped when the channel is full; once the channel
// is closed the listener stops sending.
type ChannelListener struct {
	ch       chan<- Event
	timeout  *time.Duration // nil means non-blocking
	dropped  atomic.Int32
	inactive atomic.Bool
}

// NewChannelListener creates a listener that sends to ch without waiting.
func NewChannelListener(ch chan<- Event) *ChannelListener {
	return &ChannelListener{ch: ch}
}

// NewChannelListenerWithTimeout creates a listener that waits up to timeout
// for ch to accept each event before dropping it.
func NewChannelListenerWithTimeout(ch chan<- Event, timeout time.Duration) *ChannelListener {
	return &ChannelListener{ch: ch, timeout: &timeout}
}

func (cl *ChannelListener) OnStartSliding(s *Slider) {
	cl.send(Event{Kind: EventStart, Value: s.CurrentValue()})
}

func (cl *ChannelListener) OnStopSliding(s *Slider) {
	cl.send(Event{Kind: EventStop, Value: s.CurrentValue()})
}

func (cl *ChannelListener) OnValueChanged(_ *Slider, value float64) {
	cl.send(Event{Kind: EventValueChanged, Value: value})
}

// Dropped returns the number of events that could not be delivered.
func (cl *ChannelListener) Dropped() int {
	return int(cl.dropped.Load())
}

func (cl *ChannelListener) send(ev Event) {
	if cl.inactive.Load() {
		cl.dropped.Add(1)
		return
	}

	var err error
	if cl.timeout != nil {
		err = channels.SendWithTimeout(cl.ch, ev, *cl.timeout)
	} else {
		err = channels.SendNonBlock(cl.ch, ev)
	}

	if err != nil {
		cl.dropped.Add(1)
		if errors.Is(err, channels.ErrChannelClosed) {
			cl.inactive.Store(true)
		}
	}
}
