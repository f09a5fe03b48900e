package slider

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
)

// Listener observes the lifecycle of a slider.
type Listener interface {
	// OnStartSliding is called when a pointer or keyboard drag begins.
	OnStartSliding(s *Slider)
	// OnStopSliding is called after the final value update of a drag.
	OnStopSliding(s *Slider)
	// OnValueChanged is called on every value update, including updates that
	// leave the value where it was.
	OnValueChanged(s *Slider, value float64)
}

// ListenerFuncs implements Listener with optional callbacks. Use it by
// pointer so the registry can tell listeners apart.
type ListenerFuncs struct {
	Start        func(s *Slider)
	Stop         func(s *Slider)
	ValueChanged func(s *Slider, value float64)
}

func (lf *ListenerFuncs) OnStartSliding(s *Slider) {
	if lf.Start != nil {
		lf.Start(s)
	}
}

func (lf *ListenerFuncs) OnStopSliding(s *Slider) {
	if lf.Stop != nil {
		lf.Stop(s)
	}
}

func (lf *ListenerFuncs) OnValueChanged(s *Slider, value float64) {
	if lf.ValueChanged != nil {
		lf.ValueChanged(s, value)
	}
}

// Registry delivers slider events to listeners in subscription order.
//
// Delivery is synchronous and best-effort: a listener that panics is logged
// and skipped, and the remaining listeners still receive the event.
// Registry is not safe for concurrent use; it lives on the slider's event
// loop like the rest of the core.
type Registry struct {
	listeners []Listener
	logger    *slog.Logger
}

// NewRegistry creates an empty registry. A nil logger uses slog.Default().
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	return &Registry{logger: logger}
}

// Subscribe adds l. Subscribing the same listener twice is a no-op.
func (r *Registry) Subscribe(l Listener) error {
	if l == nil {
		return ErrNilListener
	}

	if !isComparable(l) {
		return fmt.Errorf("subscribe %T: %w", l, ErrListenerNotComparable)
	}

	if r.indexOf(l) >= 0 {
		return nil
	}

	r.listeners = append(r.listeners, l)

	return nil
}

// Unsubscribe removes l. Removing an unknown listener is a no-op.
func (r *Registry) Unsubscribe(l Listener) {
	if l == nil || !isComparable(l) {
		return
	}

	if i := r.indexOf(l); i >= 0 {
		r.listeners = slices.Delete(r.listeners, i, i+1)
	}
}

// Len returns the number of subscribed listeners.
func (r *Registry) Len() int {
	return len(r.listeners)
}

// NotifyStart fans out OnStartSliding.
func (r *Registry) NotifyStart(s *Slider) {
	r.each("start", func(l Listener) { l.OnStartSliding(s) })
}

// NotifyStop fans out OnStopSliding.
func (r *Registry) NotifyStop(s *Slider) {
	r.each("stop", func(l Listener) { l.OnStopSliding(s) })
}

// NotifyValueChanged fans out OnValueChanged.
func (r *Registry) NotifyValueChanged(s *Slider, value float64) {
	r.each("value_changed", func(l Listener) { l.OnValueChanged(s, value) })
}

// isComparable checks the dynamic value, so a struct whose interface field
// holds a slice is rejected even though its type is comparable.
func isComparable(l Listener) bool {
	return reflect.ValueOf(l).Comparable()
}

func (r *Registry) indexOf(l Listener) int {
	for i, existing := range r.listeners {
		if existing == l {
			return i
		}
	}

	return -1
}

// each iterates over a snapshot so listeners may subscribe or unsubscribe
// while an event is being delivered.
func (r *Registry) each(event string, deliver func(Listener)) {
	if len(r.listeners) == 0 {
		return
	}

	for _, l := range slices.Clone(r.listeners) {
		r.deliver(event, l, deliver)
	}
}

func (r *Registry) deliver(event string, l Listener, deliver func(Listener)) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("slider listener panicked",
				"event", event,
				"listener", fmt.Sprintf("%T", l),
				"panic", rec,
			)
		}
	}()

	deliver(l)
}
