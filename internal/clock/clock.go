package clock

import "time"

// Clock provides the current time to handlers. Tests swap in a fixed or
// scripted implementation to make rendered timestamps deterministic.
type Clock interface {
	Now() time.Time
}

// Real reads the system wall clock in the local time zone.
type Real struct{}

func (Real) Now() time.Time {
	return time.Now()
}

// Func adapts a plain function to the Clock interface.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock {
	return Func(func() time.Time { return t })
}
