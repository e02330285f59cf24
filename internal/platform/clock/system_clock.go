package clock

import "time"

// SystemClock reads the host clock.
//
// It deliberately does not force a zone: the instant it returns is absolute,
// and the rendering zone is chosen by the application layer.
type SystemClock struct{}

func NewSystemClock() SystemClock { return SystemClock{} }

func (SystemClock) Now() time.Time { return time.Now() }
