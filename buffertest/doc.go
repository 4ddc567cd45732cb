// Package buffertest provides helpers for testing buffer implementations
// and the collections built on them: a Recorder buffer that observes every
// resize request passing through it, and a Life element type whose disposal
// order is recorded.
package buffertest
