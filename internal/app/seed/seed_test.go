package seed

import (
	"context"
	"sort"
	"testing"
	"time"

	"request_desk/internal/common"
	"request_desk/internal/domain/model"

	"go.uber.org/zap"
)

type memUserRepo struct {
	nextID int
	users  map[int]*model.User
}

func (r *memUserRepo) Create(ctx context.Context, user *model.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return common.Errorf("user with given email already exists: %w", common.ErrConflict)
		}
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copy := *user
			return &copy, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *memUserRepo) FindByID(ctx context.Context, id int) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	copy := *user
	return &copy, nil
}

func (r *memUserRepo) HasAny(ctx context.Context) (bool, error) {
	return len(r.users) > 0, nil
}

type memRequestRepo struct {
	nextID   int
	requests []model.Request
}

func (r *memRequestRepo) Create(ctx context.Context, req *model.Request) error {
	r.nextID++
	req.ID = r.nextID
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	r.requests = append(r.requests, *req)
	return nil
}

func (r *memRequestRepo) ListByUser(ctx context.Context, userID int) ([]model.Request, error) {
	out := []model.Request{}
	for _, req := range r.requests {
		if req.RequestedBy == userID {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memRequestRepo) ListAll(ctx context.Context) ([]model.Request, error) {
	return append([]model.Request{}, r.requests...), nil
}

func (r *memRequestRepo) UpdateStatus(ctx context.Context, id int, status model.RequestStatus, adminComment *string) error {
	for i := range r.requests {
		if r.requests[i].ID == id {
			r.requests[i].Status = status
			r.requests[i].AdminComment = adminComment
			return nil
		}
	}
	return common.ErrNotFound
}

type memEventRepo struct {
	nextID int
	events []model.Event
	rsvps  []model.RSVP
	shares []model.Share
}

func (r *memEventRepo) CreateEvent(ctx context.Context, event *model.Event) error {
	r.nextID++
	event.ID = r.nextID
	r.events = append(r.events, *event)
	return nil
}

func (r *memEventRepo) CreateRSVP(ctx context.Context, rsvp *model.RSVP) error {
	rsvp.ID = len(r.rsvps) + 1
	r.rsvps = append(r.rsvps, *rsvp)
	return nil
}

func (r *memEventRepo) CreateShare(ctx context.Context, share *model.Share) error {
	share.ID = len(r.shares) + 1
	r.shares = append(r.shares, *share)
	return nil
}

func TestSeedPopulatesDemoData(t *testing.T) {
	userRepo := &memUserRepo{users: map[int]*model.User{}}
	requestRepo := &memRequestRepo{}
	eventRepo := &memEventRepo{}
	seeder := NewSeeder(userRepo, requestRepo, eventRepo, zap.NewNop())
	ctx := context.Background()

	if err := seeder.Run(ctx); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(userRepo.users) != 4 {
		t.Errorf("users = %d, want 4", len(userRepo.users))
	}
	admin, err := userRepo.FindByEmail(ctx, "alice@admin.com")
	if err != nil {
		t.Fatalf("admin not seeded: %v", err)
	}
	if admin.Role != model.RoleAdmin {
		t.Errorf("admin role = %q, want admin", admin.Role)
	}
	if admin.HashedPassword == "adminpass" {
		t.Error("seeded password stored in plaintext")
	}

	if len(eventRepo.events) != 4 {
		t.Errorf("events = %d, want 4", len(eventRepo.events))
	}
	if len(eventRepo.rsvps) != 4 {
		t.Errorf("rsvps = %d, want 4", len(eventRepo.rsvps))
	}
	if len(eventRepo.shares) != 4 {
		t.Errorf("shares = %d, want 4", len(eventRepo.shares))
	}

	requests, _ := requestRepo.ListAll(ctx)
	if len(requests) != 2 {
		t.Fatalf("requests = %d, want 2", len(requests))
	}
	for _, req := range requests {
		if req.Status != model.StatusPending {
			t.Errorf("seeded request %q status = %q, want pending", req.Title, req.Status)
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	userRepo := &memUserRepo{users: map[int]*model.User{}}
	requestRepo := &memRequestRepo{}
	eventRepo := &memEventRepo{}
	seeder := NewSeeder(userRepo, requestRepo, eventRepo, zap.NewNop())
	ctx := context.Background()

	if err := seeder.Run(ctx); err != nil {
		t.Fatalf("first Run failed: %v", err)
	}
	if err := seeder.Run(ctx); err != nil {
		t.Fatalf("second Run failed: %v", err)
	}

	if len(userRepo.users) != 4 {
		t.Errorf("users = %d after second run, want 4", len(userRepo.users))
	}
	requests, _ := requestRepo.ListAll(ctx)
	if len(requests) != 2 {
		t.Errorf("requests = %d after second run, want 2", len(requests))
	}
}
