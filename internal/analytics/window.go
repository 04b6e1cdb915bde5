package analytics

import "time"

// DefaultWindow is the length of the reporting window when no start is given.
const DefaultWindow = 30 * 24 * time.Hour

// Window is a closed reporting interval [Start, End].
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ResolveWindow fills in missing bounds: start defaults to now minus
// DefaultWindow and end defaults to now. Each default applies on its own.
func ResolveWindow(start, end *time.Time, now time.Time) Window {
	return ResolveWindowWithDefault(start, end, now, DefaultWindow)
}

// ResolveWindowWithDefault is ResolveWindow with a configurable trailing length.
func ResolveWindowWithDefault(start, end *time.Time, now time.Time, trailing time.Duration) Window {
	w := Window{Start: now.Add(-trailing), End: now}
	if start != nil {
		w.Start = *start
	}
	if end != nil {
		w.End = *end
	}
	return w
}

// Duration returns End - Start.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Previous returns the window of equal length that ends where w starts.
func (w Window) Previous() Window {
	return Window{Start: w.Start.Add(-w.Duration()), End: w.Start}
}

// Contains reports whether t lies within the closed interval.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
