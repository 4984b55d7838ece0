package httpx

import (
	"errors"
	"net/http"

	"github.com/dstokens/tokens-api/internal/data"
	"github.com/dstokens/tokens-api/internal/domain/model"
	"github.com/dstokens/tokens-api/internal/service"
)

// DesignSystemHandlers provides HTTP handlers for design-system operations.
type DesignSystemHandlers struct {
	Svc *service.DesignSystemService
}

const maxDesignSystemListLimit = 100

// Connect handles POST /api/design-systems/connect. Find-or-create by repo.
func (h *DesignSystemHandlers) Connect(w http.ResponseWriter, r *http.Request) {
	var req model.ConnectDesignSystemRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	ds, err := h.Svc.Connect(r.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "connect_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, ds)
}

// List handles GET /api/design-systems.
func (h *DesignSystemHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, maxDesignSystemListLimit)

	systems, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"design_systems": systems,
		"limit":          limit,
		"offset":         offset,
	})
}

// GetByID handles GET /api/design-systems/{id}.
func (h *DesignSystemHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDPath(r)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: err})
		return
	}

	ds, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrDesignSystemNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "design_system_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, ds)
}
