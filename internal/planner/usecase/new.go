package usecase

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"day-planner/internal/planner/repository"
	"day-planner/pkg/clerk"
	"day-planner/pkg/gcalendar"
	"day-planner/pkg/log"
	"day-planner/pkg/textgen"
)

// CalendarService is the slice of pkg/gcalendar the orchestrator needs.
type CalendarService interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// ImageService generates one base64 image for a short text prompt.
type ImageService interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProfileService resolves an owner id to display name + primary email.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (clerk.Profile, error)
}

// Config carries the orchestration knobs.
type Config struct {
	Timezone    string        // IANA label stamped into prompts and events
	PacingDelay time.Duration // minimum gap between per-task iterations
	CalendarID  string        // target calendar, "primary" by default
}

// implUseCase is the private implementation of planner.UseCase.
type implUseCase struct {
	repo     repository.Repository
	provider textgen.Provider
	calendar CalendarService
	image    ImageService
	profile  ProfileService
	limiter  *rate.Limiter
	cfg      Config
	l        log.Logger

	now func() time.Time
}

// New creates a new planner UseCase implementation.
func New(repo repository.Repository, provider textgen.Provider, calendar CalendarService, image ImageService, profile ProfileService, cfg Config, l log.Logger) *implUseCase {
	if cfg.Timezone == "" {
		cfg.Timezone = "Asia/Kolkata"
	}
	if cfg.PacingDelay <= 0 {
		cfg.PacingDelay = 300 * time.Millisecond
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}
	return &implUseCase{
		repo:     repo,
		provider: provider,
		calendar: calendar,
		image:    image,
		profile:  profile,
		limiter:  rate.NewLimiter(rate.Every(cfg.PacingDelay), 1),
		cfg:      cfg,
		l:        l,
		now:      time.Now,
	}
}
