package service

import (
	"context"
	"sort"
	"time"

	"request_desk/internal/common"
	"request_desk/internal/domain/model"
)

// In-memory repository fakes. They mirror the error contracts of the pg
// implementations (ErrConflict on duplicate email, ErrNotFound on misses,
// newest-first per-user listing).

type fakeUserRepo struct {
	nextID int
	users  map[int]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]*model.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
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

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copy := *user
			return &copy, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id int) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	copy := *user
	return &copy, nil
}

func (r *fakeUserRepo) HasAny(ctx context.Context) (bool, error) {
	return len(r.users) > 0, nil
}

type fakeRequestRepo struct {
	nextID   int
	requests []model.Request
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{}
}

func (r *fakeRequestRepo) Create(ctx context.Context, req *model.Request) error {
	r.nextID++
	req.ID = r.nextID
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	r.requests = append(r.requests, *req)
	return nil
}

func (r *fakeRequestRepo) ListByUser(ctx context.Context, userID int) ([]model.Request, error) {
	out := []model.Request{}
	for _, req := range r.requests {
		if req.RequestedBy == userID {
			out = append(out, req)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *fakeRequestRepo) ListAll(ctx context.Context) ([]model.Request, error) {
	out := make([]model.Request, len(r.requests))
	copy(out, r.requests)
	return out, nil
}

func (r *fakeRequestRepo) UpdateStatus(ctx context.Context, id int, status model.RequestStatus, adminComment *string) error {
	for i := range r.requests {
		if r.requests[i].ID == id {
			r.requests[i].Status = status
			r.requests[i].AdminComment = adminComment
			return nil
		}
	}
	return common.ErrNotFound
}
