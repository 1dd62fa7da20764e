package seed

import (
	"context"
	"fmt"
	"time"

	"request_desk/internal/common/security"
	"request_desk/internal/domain/model"
	"request_desk/internal/domain/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Seeder inserts the demo dataset: one admin, three students, four events
// with RSVPs and shares, and two pending requests. Run is idempotent; it is
// a no-op once any user exists.
type Seeder struct {
	userRepo    repository.UserRepository
	requestRepo repository.RequestRepository
	eventRepo   repository.EventRepository
	logger      *zap.Logger
}

func NewSeeder(
	userRepo repository.UserRepository,
	requestRepo repository.RequestRepository,
	eventRepo repository.EventRepository,
	logger *zap.Logger,
) *Seeder {
	return &Seeder{
		userRepo:    userRepo,
		requestRepo: requestRepo,
		eventRepo:   eventRepo,
		logger:      logger,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	seeded, err := s.userRepo.HasAny(ctx)
	if err != nil {
		return fmt.Errorf("check existing users: %w", err)
	}
	if seeded {
		s.logger.Info("demo data already present, skipping seed")
		return nil
	}

	admin, err := s.createUser(ctx, "Alice", "alice@admin.com", "adminpass", model.RoleAdmin)
	if err != nil {
		return err
	}
	bob, err := s.createUser(ctx, "Bob", "bob@student.com", "bobpass", model.RoleStudent)
	if err != nil {
		return err
	}
	carol, err := s.createUser(ctx, "Carol", "carol@student.com", "carolpass", model.RoleStudent)
	if err != nil {
		return err
	}
	dave, err := s.createUser(ctx, "Dave", "dave@student.com", "davepass", model.RoleStudent)
	if err != nil {
		return err
	}

	events := []*model.Event{
		{Title: "Tech Talk", Description: "A talk on AI", Date: time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), CreatedBy: admin.ID},
		{Title: "Workshop", Description: "ML Workshop", Date: time.Date(2025, 4, 18, 0, 0, 0, 0, time.UTC), CreatedBy: admin.ID},
		{Title: "Hackathon", Description: "24hr Hack", Date: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), CreatedBy: admin.ID},
		{Title: "Seminar", Description: "Industry experts", Date: time.Date(2025, 4, 22, 0, 0, 0, 0, time.UTC), CreatedBy: admin.ID},
	}
	for _, event := range events {
		if err := s.eventRepo.CreateEvent(ctx, event); err != nil {
			return fmt.Errorf("seed event %q: %w", event.Title, err)
		}
	}

	rsvps := []*model.RSVP{
		{UserID: bob.ID, EventID: events[0].ID},
		{UserID: carol.ID, EventID: events[0].ID},
		{UserID: dave.ID, EventID: events[1].ID},
		{UserID: bob.ID, EventID: events[2].ID},
	}
	for _, rsvp := range rsvps {
		if err := s.eventRepo.CreateRSVP(ctx, rsvp); err != nil {
			return fmt.Errorf("seed rsvp: %w", err)
		}
	}

	shares := []*model.Share{
		{UserID: bob.ID, EventID: events[0].ID},
		{UserID: carol.ID, EventID: events[1].ID},
		{UserID: dave.ID, EventID: events[2].ID},
		{UserID: bob.ID, EventID: events[3].ID},
	}
	for _, share := range shares {
		if err := s.eventRepo.CreateShare(ctx, share); err != nil {
			return fmt.Errorf("seed share: %w", err)
		}
	}

	demoRequests := []*model.Request{
		{
			Reference:   uuid.NewString(),
			Title:       "Leave Request",
			Description: "I would like to take a leave for personal reasons.",
			Category:    "Leave",
			Status:      model.StatusPending,
			RequestedBy: bob.ID,
		},
		{
			Reference:   uuid.NewString(),
			Title:       "Event Participation",
			Description: "I would like to participate in the Tech Talk event.",
			Category:    "Event",
			Status:      model.StatusPending,
			RequestedBy: carol.ID,
		},
	}
	for _, req := range demoRequests {
		if err := s.requestRepo.Create(ctx, req); err != nil {
			return fmt.Errorf("seed request %q: %w", req.Title, err)
		}
	}

	s.logger.Info("demo data seeded",
		zap.Int("users", 4),
		zap.Int("events", len(events)),
		zap.Int("rsvps", len(rsvps)),
		zap.Int("shares", len(shares)),
		zap.Int("requests", len(demoRequests)),
	)
	return nil
}

func (s *Seeder) createUser(ctx context.Context, name, email, password, role string) (*model.User, error) {
	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password for %s: %w", email, err)
	}
	user := &model.User{
		Name:           name,
		Email:          email,
		HashedPassword: hash,
		Role:           role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("seed user %s: %w", email, err)
	}
	return user, nil
}
