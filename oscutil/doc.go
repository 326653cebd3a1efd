// Package oscutil collects convenience helpers that sit on top of
// codec's realtime-safe accessors but are themselves not meant for the
// realtime path: pulling a whole argument list out of a message for a
// log line, checking a type constraint against a tag string outside of
// a Dispatch call, and recording decoded messages as a portable trace
// for tests and tooling.
package oscutil
