package timestamp

import (
	"context"
	"time"

	"github.com/vosbek/openhands/internal/domain"
	clockport "github.com/vosbek/openhands/internal/ports/out/clock"
)

// Service produces the current timestamp in the configured rendering zone.
type Service struct {
	clk clockport.Clock
	loc *time.Location
}

// NewService wires the clock port and the rendering location.
// A nil location falls back to the host's local zone, matching the behavior
// of rendering an unqualified local time.
func NewService(clk clockport.Clock, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{clk: clk, loc: loc}
}

// Now reads the clock and shifts the instant into the rendering zone.
//
// There is no error path: a wall-clock read cannot fail on any supported
// platform, and rendering is pure. Context is accepted for signature
// consistency with the rest of the app layer.
func (s *Service) Now(ctx context.Context) domain.Timestamp {
	_ = ctx
	return domain.NewTimestamp(s.clk.Now().In(s.loc))
}

// Location returns the configured rendering zone.
func (s *Service) Location() *time.Location { return s.loc }
