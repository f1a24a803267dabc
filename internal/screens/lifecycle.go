// Package screens holds the screen controllers: they own per-screen state,
// fetch their data through the repositories, and expose read accessors to
// the presentation layer. Controllers are confined to the UI event loop;
// they are not safe for concurrent use from multiple goroutines.
package screens

import "errors"

var ErrNotLoaded = errors.New("screen data not loaded")

// lifecycle tags every load with a generation so a response that arrives
// after the screen reloaded or closed is dropped instead of overwriting
// fresher state. It also tracks the loading flag the presentation layer
// renders while a fetch is outstanding.
type lifecycle struct {
	gen     uint64
	loading bool
}

func (l *lifecycle) begin() uint64 {
	l.gen++
	l.loading = true
	return l.gen
}

func (l *lifecycle) stale(gen uint64) bool {
	return l.gen != gen
}

// finish marks the load for gen complete; reports false when the response
// is stale and must be dropped.
func (l *lifecycle) finish(gen uint64) bool {
	if l.gen != gen {
		return false
	}
	l.loading = false
	return true
}

func (l *lifecycle) Loading() bool {
	return l.loading
}

// Close invalidates any in-flight fetch. Call it when the screen unmounts.
func (l *lifecycle) Close() {
	l.gen++
	l.loading = false
}
