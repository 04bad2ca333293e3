package clock

import "time"

// Clock abstracts wall-clock time so expiry math stays testable.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

func System() Clock {
	return systemClock{}
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

// Fixed returns a Clock frozen at t. Test helper.
func Fixed(t time.Time) Clock {
	return fixedClock{t: t.UTC()}
}
