package httpx

import (
	"errors"
	"net/http"

	"github.com/dstokens/tokens-api/internal/data"
	"github.com/dstokens/tokens-api/internal/domain/model"
	"github.com/dstokens/tokens-api/internal/service"
)

// TokenHandlers provides HTTP handlers for token operations.
type TokenHandlers struct {
	Svc *service.TokenService
}

const maxTokenListLimit = 500

// Create handles POST /api/tokens.
func (h *TokenHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTokenRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	token, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusCreated, token)
}

// List handles GET /api/tokens with collection_id and group_id filters.
func (h *TokenHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 100, maxTokenListLimit)
	opts := model.TokenListOptions{
		Limit:        limit,
		Offset:       offset,
		CollectionID: parseInt64Query(r, "collection_id"),
		GroupID:      parseInt64Query(r, "group_id"),
	}

	tokens, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"tokens": tokens,
		"limit":  limit,
		"offset": offset,
	})
}

// GetByID handles GET /api/tokens/{id}.
func (h *TokenHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDPath(r)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: err})
		return
	}

	token, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrTokenNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "token_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, token)
}

// Update handles PUT /api/tokens/{id}.
func (h *TokenHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDPath(r)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: err})
		return
	}

	var req model.UpdateTokenRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	token, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrTokenNotFound):
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "token_not_found", Err: err})
		case isValidationError(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "update_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusOK, token)
}

// Delete handles DELETE /api/tokens/{id}.
func (h *TokenHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
			ErrCode: "token_not_found",
			Err:     errors.New("token not found"),
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
