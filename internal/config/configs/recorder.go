package configs

import "time"

// Recorder configures the fire-and-forget request-event recorder.
type Recorder struct {
	// QueueSize bounds the in-flight event queue. Events beyond the bound
	// are dropped, not blocked on.
	QueueSize int `env:"QUEUE_SIZE" envDefault:"1024"`

	// WriteTimeout caps each event persistence attempt.
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"5s"`

	// DrainTimeout caps queue drain during shutdown.
	DrainTimeout time.Duration `env:"DRAIN_TIMEOUT" envDefault:"10s"`
}
