package interview

import "time"

// Clock abstracts wall-clock sampling so tests can drive time
// deterministically. The engine only ever asks for the current instant;
// what happens when time passes is a pure state transition.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real wall clock.
func SystemClock() Clock { return systemClock{} }
