package usecase

import (
	"time"

	"abe-voice/internal/skill"
	"abe-voice/internal/skill/repository"
	"abe-voice/pkg/datemath"
	pkgLog "abe-voice/pkg/log"
)

// Config holds the skill settings the dispatcher speaks with.
type Config struct {
	CalendarName  string
	Contact       string
	FeaturedLabel string
	LookaheadDays int
	// Location is the zone "now" and requested days are interpreted in.
	Location *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
}

type implUseCase struct {
	l             pkgLog.Logger
	repo          repository.EventRepository
	dateMath      *datemath.Parser
	calendarName  string
	contact       string
	featuredLabel string
	lookaheadDays int
	now           func() time.Time
}

// New creates a new skill UseCase instance.
func New(l pkgLog.Logger, repo repository.EventRepository, cfg Config) skill.UseCase {
	uc := &implUseCase{
		l:             l,
		repo:          repo,
		dateMath:      datemath.NewParserIn(cfg.Location),
		calendarName:  cfg.CalendarName,
		contact:       cfg.Contact,
		featuredLabel: cfg.FeaturedLabel,
		lookaheadDays: cfg.LookaheadDays,
		now:           cfg.Now,
	}

	if uc.calendarName == "" {
		uc.calendarName = skill.DefaultCalendarName
	}
	if uc.contact == "" {
		uc.contact = skill.DefaultContact
	}
	if uc.featuredLabel == "" {
		uc.featuredLabel = skill.DefaultFeaturedLabel
	}
	if uc.lookaheadDays <= 0 {
		uc.lookaheadDays = skill.DefaultLookaheadDays
	}
	if uc.now == nil {
		uc.now = time.Now
	}

	return uc
}
