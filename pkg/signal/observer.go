package signal

import (
	"time"

	"github.com/rs/zerolog"
)

// Observer is notified about structural changes and invocation passes of a
// Signal. Calls happen outside the signal's lock, on the goroutine that
// caused them.
type Observer interface {
	// Connected is called after a handler was added; size is the new count
	Connected(signal string, size int)
	// Disconnected is called after one or more handlers were removed
	Disconnected(signal string, size int)
	// Emitted is called after an invocation pass
	Emitted(signal string, calls int, elapsed time.Duration)
}

// NopObserver ignores every notification
type NopObserver struct{}

func (NopObserver) Connected(string, int)              {}
func (NopObserver) Disconnected(string, int)           {}
func (NopObserver) Emitted(string, int, time.Duration) {}

type logObserver struct {
	logger zerolog.Logger
}

// LogObserver reports slot counts at debug level and invocation passes at
// trace level.
func LogObserver(logger zerolog.Logger) Observer {
	return &logObserver{logger: logger}
}

func (o *logObserver) Connected(signal string, size int) {
	o.logger.Debug().
		Str("signal", signal).
		Int("slots", size).
		Msg("Slot connected")
}

func (o *logObserver) Disconnected(signal string, size int) {
	o.logger.Debug().
		Str("signal", signal).
		Int("slots", size).
		Msg("Slot disconnected")
}

func (o *logObserver) Emitted(signal string, calls int, elapsed time.Duration) {
	o.logger.Trace().
		Str("signal", signal).
		Int("calls", calls).
		Dur("duration", elapsed).
		Msg("Signal emitted")
}

type options struct {
	name     string
	observer Observer
}

// Option configures a Signal created by New
type Option func(*options)

// WithName names the signal in observer notifications and errors
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithObserver installs an Observer. A nil observer restores the default,
// which ignores everything.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		if observer == nil {
			observer = NopObserver{}
		}
		o.observer = observer
	}
}

// WithLogger is shorthand for WithObserver(LogObserver(logger))
func WithLogger(logger zerolog.Logger) Option {
	return WithObserver(LogObserver(logger))
}
