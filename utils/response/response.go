package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"dcdn-backend/dcdn/registry"
	"dcdn-backend/dcdn/storage"
)

type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, data interface{}, message string) {
	JSON(w, http.StatusOK, SuccessResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func Error(w http.ResponseWriter, code int, message string) {
	JSON(w, code, ErrorResponse{
		Success: false,
		Error:   message,
		Code:    code,
	})
}

// EngineError writes an engine or registry error with the matching HTTP
// status. Unrecognized errors become a 500.
func EngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrEmptyPayload):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrPayloadTooLarge):
		Error(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, registry.ErrNodeNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrAccessDenied):
		Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, storage.ErrNotOwner):
		Error(w, http.StatusForbidden, err.Error())
	default:
		Error(w, http.StatusInternalServerError, err.Error())
	}
}
