package httpx

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON decodes the request body into dst, rejecting unknown fields.
// On failure it writes an invalid_json error response and returns false.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_json", Err: err})
		return false
	}
	return true
}

// WriteJSON writes v as a JSON response with the given status code. The body
// is encoded before the header is committed so an encoding failure can still
// become a plain 500.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
	_, _ = w.Write([]byte("\n"))
}

// ErrorParams groups parameters for WriteError. ErrCode is the stable,
// machine-readable error code; Err supplies the human-readable message.
type ErrorParams struct {
	Code    int
	ErrCode string
	Err     error
}

// WriteError writes the standard error envelope {"error": ..., "message": ...}.
func WriteError(w http.ResponseWriter, p ErrorParams) {
	msg := http.StatusText(p.Code)
	if p.Err != nil {
		msg = p.Err.Error()
	}
	WriteJSON(w, p.Code, map[string]string{"error": p.ErrCode, "message": msg})
}
