package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"request_desk/internal/app/service"
	"request_desk/internal/common"
	"request_desk/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type RequestHandler struct {
	requestService *service.RequestService
}

func NewRequestHandler(rs *service.RequestService) *RequestHandler {
	return &RequestHandler{requestService: rs}
}

func (h *RequestHandler) RegisterRoutes(r chi.Router) {
	r.Post("/user/request", h.submit)               // POST /user/request
	r.Get("/user/requests/{userID}", h.listForUser) // GET /user/requests/3
}

func (h *RequestHandler) submit(w http.ResponseWriter, r *http.Request) {
	var req service.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if _, err := h.requestService.Submit(r.Context(), req); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), errorMessage(err))
		return
	}
	common.RespondWithMessage(w, http.StatusCreated, "Request submitted successfully")
}

// userRequestView is the per-user listing shape; timestamps keep the legacy
// "YYYY-MM-DD HH:MM:SS" layout.
type userRequestView struct {
	ID          int                 `json:"id"`
	Reference   string              `json:"reference"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	Status      model.RequestStatus `json:"status"`
	CreatedAt   string              `json:"created_at"`
}

func (h *RequestHandler) listForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	requests, err := h.requestService.ListForUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), errorMessage(err))
		return
	}

	views := make([]userRequestView, 0, len(requests))
	for _, req := range requests {
		views = append(views, userRequestView{
			ID:          req.ID,
			Reference:   req.Reference,
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			Status:      req.Status,
			CreatedAt:   req.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	common.RespondWithJSON(w, http.StatusOK, views)
}
