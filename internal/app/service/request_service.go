package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"

	"request_desk/internal/common"
	"request_desk/internal/domain/model"
	"request_desk/internal/domain/repository"

	"github.com/google/uuid"
)

type RequestService struct {
	requestRepo repository.RequestRepository
	userRepo    repository.UserRepository
}

func NewRequestService(requestRepo repository.RequestRepository, userRepo repository.UserRepository) *RequestService {
	return &RequestService{requestRepo: requestRepo, userRepo: userRepo}
}

type SubmitRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	// Clients send the id as either a JSON number or a numeric string.
	RequestedBy interface{} `json:"requested_by"`
}

type UpdateStatusRequest struct {
	Status       model.RequestStatus `json:"status"`
	AdminComment *string             `json:"admin_comment"`
}

func (s *RequestService) Submit(ctx context.Context, req SubmitRequest) (*model.Request, error) {
	if req.Title == "" || req.Description == "" || req.Category == "" || req.RequestedBy == nil {
		return nil, common.Errorf("All fields are required: %w", common.ErrBadRequest)
	}

	requestedBy, err := coerceUserID(req.RequestedBy)
	if err != nil {
		return nil, common.Errorf("Invalid user ID: %w", common.ErrBadRequest)
	}

	user, err := s.userRepo.FindByID(ctx, requestedBy)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// An unknown requester is rejected as bad input, not as a missing
			// resource.
			return nil, common.Errorf("User not found: %w", common.ErrBadRequest)
		}
		return nil, err
	}

	request := &model.Request{
		Reference:   uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Status:      model.StatusPending,
		RequestedBy: user.ID,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *RequestService) ListForUser(ctx context.Context, userID int) ([]model.Request, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.requestRepo.ListByUser(ctx, userID)
}

func (s *RequestService) ListAll(ctx context.Context) ([]model.Request, error) {
	return s.requestRepo.ListAll(ctx)
}

func (s *RequestService) UpdateStatus(ctx context.Context, requestID int, req UpdateStatusRequest) error {
	// The status check comes before the existence check: an invalid status on
	// a missing request is still a validation failure.
	if !req.Status.IsDecision() {
		return common.Errorf("Invalid status: %w", common.ErrValidation)
	}
	return s.requestRepo.UpdateStatus(ctx, requestID, req.Status, req.AdminComment)
}

func coerceUserID(v interface{}) (int, error) {
	switch id := v.(type) {
	case float64:
		if id != math.Trunc(id) {
			return 0, errors.New("user id is not an integer")
		}
		return int(id), nil
	case string:
		return strconv.Atoi(id)
	case json.Number:
		n, err := id.Int64()
		return int(n), err
	default:
		return 0, errors.New("user id is not a number")
	}
}
