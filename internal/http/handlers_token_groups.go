package httpx

import (
	"errors"
	"net/http"

	"github.com/dstokens/tokens-api/internal/data"
	"github.com/dstokens/tokens-api/internal/domain/model"
	"github.com/dstokens/tokens-api/internal/service"
)

// TokenGroupHandlers provides HTTP handlers for token-group operations.
type TokenGroupHandlers struct {
	Svc *service.TokenGroupService
}

const maxGroupListLimit = 100

// Create handles POST /api/token-groups.
func (h *TokenGroupHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTokenGroupRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	group, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrTokenGroupNameExists):
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "name_conflict", Err: err})
		case isValidationError(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusCreated, group)
}

// List handles GET /api/token-groups with collection_id filter and populate.
func (h *TokenGroupHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, maxGroupListLimit)
	opts := model.TokenGroupListOptions{
		Limit:        limit,
		Offset:       offset,
		CollectionID: parseInt64Query(r, "collection_id"),
		Populate:     parsePopulate(r),
	}

	groups, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"token_groups": groups,
		"limit":        limit,
		"offset":       offset,
	})
}

// GetByID handles GET /api/token-groups/{id}.
func (h *TokenGroupHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDPath(r)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: err})
		return
	}

	group, err := h.Svc.Get(r.Context(), id, parsePopulate(r))
	if err != nil {
		if errors.Is(err, data.ErrTokenGroupNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "token_group_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, group)
}

// Update handles PUT /api/token-groups/{id}.
func (h *TokenGroupHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDPath(r)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: err})
		return
	}

	var req model.UpdateTokenGroupRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	group, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrTokenGroupNotFound):
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "token_group_not_found", Err: err})
		case errors.Is(err, data.ErrTokenGroupNameExists):
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "name_conflict", Err: err})
		case isValidationError(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "update_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusOK, group)
}

// Delete handles DELETE /api/token-groups/{id}.
func (h *TokenGroupHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDPath(r)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: err})
		return
	}

	deleted, err := h.Svc.Delete(r.Context(), id)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "delete_failed", Err: err})
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "token_group_not_found",
			Err:     errors.New("token group not found"),
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
