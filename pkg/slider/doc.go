// Package slider is the behavioral core of a draggable slider control.
//
// A Slider owns a RangeModel (bounds, step and the clamped, quantized
// current value), a state machine that turns pointer, wheel and keyboard
// input into value changes, and a Registry of listeners notified when a
// drag starts, stops, or the value is set.
//
// Rendering is left to a collaborator. The slider asks it where the track
// is (Track), tells it what to redraw (Redrawer), optionally captures the
// pointer through it (Capturer), and schedules keyboard auto-repeat through
// a Scheduler that re-enters the collaborator's event loop.
//
// The core is single-threaded: call every method, and run every Scheduler
// callback, from the same goroutine. Loop provides such a goroutine for
// headless use.
package slider
