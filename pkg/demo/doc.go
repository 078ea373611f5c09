// Package demo holds runnable scenarios that exercise the signal package
// end to end. Scenarios register themselves in the Catalog from init(), in
// the order they are meant to be shown; the sigslot command lists and runs
// them.
package demo
