package usecase

import "time"

// Clock supplies the wall clock so use-cases stay deterministic under
// test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
