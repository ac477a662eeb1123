package sim

// Tracer receives diagnostic lines from the session: level ups, spawn
// decisions, collisions. The session never depends on whether anything
// listens; the host loop may route it to a real logger.
type Tracer interface {
	Tracef(format string, args ...any)
}

// TracerFunc adapts a plain printf-style function to the Tracer interface.
type TracerFunc func(format string, args ...any)

// Tracef implements Tracer.
func (f TracerFunc) Tracef(format string, args ...any) {
	f(format, args...)
}

// NopTracer discards everything.
var NopTracer Tracer = TracerFunc(func(string, ...any) {})
