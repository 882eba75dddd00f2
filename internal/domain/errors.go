package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. group size below 1).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrDateParse is returned by the date resolver when an expression matches no
// recognized pattern or names an impossible calendar date (e.g. month 13).
// On an initial planning request handlers surface it as a clarification
// prompt; on a follow-up the itinerary is left unchanged.
var ErrDateParse = errors.New("unrecognized date expression")

// ErrIntentResolution is returned when a follow-up message matches an intent
// pattern but references something structurally invalid, such as a day index
// outside the itinerary. It is a classification-level failure, never a
// silent no-op.
var ErrIntentResolution = errors.New("intent resolution error")

// ErrActivityNotFound is returned when a remove or swap target does not match
// any activity in the referenced day (or in any day, when none was given).
var ErrActivityNotFound = errors.New("activity not found")

// ErrUnknownIntent is returned when a follow-up message matches no intent
// pattern at all. Not necessarily a bug; the caller must surface a
// clarification response rather than mutate state.
var ErrUnknownIntent = errors.New("unrecognized request")
