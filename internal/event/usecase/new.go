package usecase

import (
	"time"

	"brme/internal/event"
	"brme/internal/event/repository"
	"brme/internal/temporal"
	pkgLog "brme/pkg/log"
)

type implUseCase struct {
	l              pkgLog.Logger
	estimator      temporal.Estimator
	estimatorName  string
	calendarRepo   repository.CalendarRepository
	timezoneName   string
	timezoneOffset string
	now            func() time.Time
}

// New creates a new event UseCase instance. calendarRepo may be nil, in which case
// Create fails with event.ErrCalendarNotConfigured.
func New(
	l pkgLog.Logger,
	estimator temporal.Estimator,
	estimatorName string,
	calendarRepo repository.CalendarRepository,
	timezoneName string,
	timezoneOffset string,
) event.UseCase {
	return &implUseCase{
		l:              l,
		estimator:      estimator,
		estimatorName:  estimatorName,
		calendarRepo:   calendarRepo,
		timezoneName:   timezoneName,
		timezoneOffset: timezoneOffset,
		now:            time.Now,
	}
}
