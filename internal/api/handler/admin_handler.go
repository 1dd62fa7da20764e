package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"request_desk/internal/api/middleware"
	"request_desk/internal/app/service"
	"request_desk/internal/common"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminHandler struct {
	requestService *service.RequestService
	logger         *zap.Logger
}

func NewAdminHandler(rs *service.RequestService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{requestService: rs, logger: logger}
}

// RegisterRoutes expects to be mounted inside the admin-gated group.
func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Get("/admin/requests", h.listRequests)                   // GET /admin/requests?user_id=1
	r.Put("/admin/request/{requestID}/update", h.updateStatus) // PUT /admin/request/7/update
}

func (h *AdminHandler) listRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestService.ListAll(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), errorMessage(err))
		return
	}
	common.RespondWithJSON(w, http.StatusOK, requests)
}

func (h *AdminHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	requestID, err := strconv.Atoi(chi.URLParam(r, "requestID"))
	if err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var req service.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.requestService.UpdateStatus(r.Context(), requestID, req); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.RespondWithError(w, http.StatusNotFound, "Request not found")
			return
		}
		common.RespondWithError(w, common.HTTPStatusFromError(err), errorMessage(err))
		return
	}

	adminID, _ := middleware.GetUserIDFromContext(r.Context())
	h.logger.Info("request decision",
		zap.Int("request_id", requestID),
		zap.String("status", string(req.Status)),
		zap.Int("admin_id", adminID),
	)

	common.RespondWithMessage(w, http.StatusOK, "Request "+string(req.Status)+" successfully")
}
