// Package registry provides a generic, named, thread-safe registry that
// remembers registration order and announces changes through a signal.
// It backs the scenario catalog, which fills it from init() functions.
package registry
