package services

import "time"

// Clock supplies the current instant to the journal and its summaries.
type Clock func() time.Time

func NewClock() Clock {
	return time.Now
}
