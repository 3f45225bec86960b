package log

// MultiLogger fans each event out to several loggers, typically an
// SlogAdapter for the console next to a FileLogger for the .plog trace.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger combines loggers into one. Nil entries are dropped, so
// callers can pass optional sinks without checking.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{loggers: make([]Logger, 0, len(loggers))}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

// Log forwards the event to every logger in registration order.
func (m *MultiLogger) Log(event Event) {
	for _, l := range m.loggers {
		l.Log(event)
	}
}

var _ Logger = (*MultiLogger)(nil)
