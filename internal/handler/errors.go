package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/Srujan578/travel-planner-website/internal/domain"
)

// errorDetail is the machine-readable error payload.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse is the envelope every error body uses.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

// notFoundBody returns an errorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "trip not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) errorResponse {
	return errorResponse{Error: errorDetail{Code: "not_found", Message: message}}
}

// requestBody returns an errorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) errorResponse {
	return errorResponse{Error: errorDetail{Code: "validation_error", Message: message}}
}

// respondError maps a service error onto the wire. Clarification-class
// errors (the engine could not interpret or apply the user's request) are
// 422s with a code the client can branch on; anything unrecognized is a 500.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
	case errors.Is(err, domain.ErrDateParse):
		writeClarification(w, "date_parse", err)
	case errors.Is(err, domain.ErrUnknownIntent):
		writeClarification(w, "unknown_intent", err)
	case errors.Is(err, domain.ErrActivityNotFound):
		writeClarification(w, "activity_not_found", err)
	case errors.Is(err, domain.ErrIntentResolution):
		writeClarification(w, "intent_resolution", err)
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: errorDetail{Code: "validation_error", Message: unwrapMessage(err)},
		})
	default:
		slog.Error("unhandled service error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: errorDetail{Code: "internal_error", Message: "internal server error"},
		})
	}
}

func writeClarification(w http.ResponseWriter, code string, err error) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Error: errorDetail{Code: code, Message: unwrapMessage(err)},
	})
}

// callSitePrefix matches the "package.Type.Method: " prefixes the service and
// engine layers wrap their errors with.
var callSitePrefix = regexp.MustCompile(`^([a-z]+\.[A-Za-z]+\.[A-Za-z]+: )+`)

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.ChatService.Chat: planner.Planner.Plan: could not parse dates: ..."
// → "could not parse dates: ...".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	return callSitePrefix.ReplaceAllString(err.Error(), "")
}
