package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/HeroArena_Go/internal/logger"
)

// maxRequestBodyBytes bounds every JSON body the API accepts
const maxRequestBodyBytes = 64 << 10

// accountIDTag is the validation applied to every account id, in bodies and paths
const accountIDTag = "required,max=64,accountid"

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and validates it.
// If it returns an error the response has already been written and the handler should return.
//
//	var req CreateProfileRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Create profile"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetOptionalQueryParam returns the query parameter or defaultValue when it is absent
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// getAccountIDParam reads and validates the {accountID} path segment.
// ok is false when the response has already been written.
func getAccountIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	accountID := chi.URLParam(r, "accountID")
	if accountID == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, "account id"))
		return "", false
	}
	if err := GetValidator().ValidateVar(accountID, accountIDTag); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPathParam, "account id"))
		return "", false
	}
	return accountID, true
}

// getIntParam parses an integer path segment
func getIntParam(w http.ResponseWriter, r *http.Request, name, label string) (int64, bool) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, label))
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPathParam, label))
		return 0, false
	}
	return v, true
}
