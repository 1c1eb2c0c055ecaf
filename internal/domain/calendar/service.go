package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/atelier-crm/atelier/internal/domain/meeting"
)

// DayPreviewLimit is how many meetings a month-grid cell shows before
// collapsing the rest into a count.
const DayPreviewLimit = 2

// Month is a fully expanded month view.
type Month struct {
	Reference time.Time `json:"reference"`
	Days      []Day     `json:"days"`
}

// MeetingLister lists meetings for the calendar.
type MeetingLister interface {
	List(ctx context.Context) ([]meeting.Meeting, error)
}

// Service builds calendar views from the meeting store.
type Service struct {
	meetings MeetingLister
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a calendar service.
func NewService(meetings MeetingLister, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		meetings: meetings,
		logger:   logger,
		now:      time.Now,
	}
}

// Month expands the month containing ref into a grid of whole weeks.
func (s *Service) Month(ctx context.Context, ref time.Time) (*Month, error) {
	meetings, err := s.meetings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading calendar: %w", err)
	}

	days := MonthGrid(ref, s.now(), meetings)
	s.logger.Debug("calendar month built", "reference", ref.Format("2006-01"), "days", len(days))
	return &Month{Reference: ref, Days: days}, nil
}
