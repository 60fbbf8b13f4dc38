package slowlog

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultThreshold is the breakpoint duration above which a breakpoint is
// reported as a warning instead of a debug line.
const DefaultThreshold = 250 * time.Millisecond

type Logger interface {
	Start(name string)
	Stop(name string) time.Duration
	Track(name string) func()
}

type slowLogger struct {
	log       *zerolog.Logger
	threshold time.Duration
	running   map[string]time.Time
	sync.Mutex
}

func (s *slowLogger) Start(name string) {
	s.Lock()
	s.running[name] = time.Now()
	s.Unlock()
}

// Stop logs and returns the time since the last Start of name. Stopping a
// breakpoint that was never started returns zero and logs nothing.
func (s *slowLogger) Stop(name string) time.Duration {
	s.Lock()
	defer s.Unlock()

	start, ok := s.running[name]
	if !ok {
		return 0
	}
	delete(s.running, name)

	duration := time.Since(start)

	event := s.log.Debug()
	if duration > s.threshold {
		event = s.log.Warn()
	}

	event.
		Float64("duration", duration.Seconds()).
		Str("breakpoint_name", name).
		Msg("")

	return duration
}

// Track starts name and returns its stop, for use with defer.
func (s *slowLogger) Track(name string) func() {
	s.Start(name)
	return func() {
		s.Stop(name)
	}
}

func CreateLogger(log *zerolog.Logger) *slowLogger {
	return CreateLoggerWithThreshold(log, DefaultThreshold)
}

func CreateLoggerWithThreshold(log *zerolog.Logger, threshold time.Duration) *slowLogger {
	logger := log.With().Str("label", "slowlog").Logger()
	return &slowLogger{
		log:       &logger,
		threshold: threshold,
		running:   make(map[string]time.Time),
	}
}
