package reward

import (
	"net/http"

	"github.com/promohive/promohive-api/internal/pkg/response"
	"github.com/promohive/promohive-api/internal/pkg/validator"
)

// Handler handles reward config HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates reward handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetConfig lists level reward overrides (admin only)
// GET /admin/rewards/levels
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	configs, err := h.service.GetConfig(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}

	response.OK(w, configs)
}

// UpdateConfig upserts a level reward override (admin only)
// PUT /admin/rewards/levels
func (h *Handler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req UpdateConfigRequest
	if err := response.DecodeJSON(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	config, err := h.service.UpdateConfig(r.Context(), req.Level, req.Percentage)
	if err != nil {
		switch err {
		case ErrInvalidLevel, ErrInvalidPercentage:
			response.BadRequest(w, err.Error())
		default:
			response.InternalError(w)
		}
		return
	}

	response.OK(w, config)
}
