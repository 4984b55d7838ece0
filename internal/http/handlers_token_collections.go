package httpx

import (
	"errors"
	"net/http"

	"github.com/dstokens/tokens-api/internal/data"
	"github.com/dstokens/tokens-api/internal/domain/model"
	"github.com/dstokens/tokens-api/internal/service"
)

// TokenCollectionHandlers provides HTTP handlers for token-collection operations.
type TokenCollectionHandlers struct {
	Svc *service.TokenCollectionService
}

const maxCollectionListLimit = 100

// Create handles POST /api/token-collections.
func (h *TokenCollectionHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTokenCollectionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	collection, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		if isValidationError(err) {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "create_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusCreated, collection)
}

// List handles GET /api/token-collections with design_system_id filter and populate.
func (h *TokenCollectionHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, maxCollectionListLimit)
	opts := model.TokenCollectionListOptions{
		Limit:          limit,
		Offset:         offset,
		DesignSystemID: parseInt64Query(r, "design_system_id"),
		Populate:       parsePopulate(r),
	}

	collections, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"token_collections": collections,
		"limit":             limit,
		"offset":            offset,
	})
}

// GetByID handles GET /api/token-collections/{id}.
func (h *TokenCollectionHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDPath(r)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: err})
		return
	}

	collection, err := h.Svc.Get(r.Context(), id, parsePopulate(r))
	if err != nil {
		if errors.Is(err, data.ErrTokenCollectionNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "token_collection_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "get_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, collection)
}

// Update handles PUT /api/token-collections/{id}.
func (h *TokenCollectionHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDPath(r)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_path", Err: err})
		return
	}

	var req model.UpdateTokenCollectionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	collection, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrTokenCollectionNotFound):
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "token_collection_not_found", Err: err})
		case isValidationError(err):
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
		default:
			WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "update_failed", Err: err})
		}
		return
	}

	WriteJSON(w, http.StatusOK, collection)
}

// Delete handles DELETE /api/token-collections/{id}.
func (h *TokenCollectionHandlers) Delete(w http.ResponseWriter, r *http.Request) {
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
			ErrCode: "token_collection_not_found",
			Err:     errors.New("token collection not found"),
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
