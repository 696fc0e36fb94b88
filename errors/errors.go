package errors

import "fmt"

var (
	ErrKeyNotFound        = fmt.Errorf("key not found")
	ErrEmptyMessage       = fmt.Errorf("message is empty")
	ErrSendInFlight       = fmt.Errorf("a message is already being sent")
	ErrAlreadyRated       = fmt.Errorf("message has already been rated")
	ErrInvalidRating      = fmt.Errorf("rating must be between 1 and 5")
	ErrNotRateable        = fmt.Errorf("message does not accept a rating")
	ErrMessageNotFound    = fmt.Errorf("message not found")
	ErrUnauthorized       = fmt.Errorf("unauthorized")
	ErrBackend            = fmt.Errorf("backend reported a failure")
	ErrNotAuthenticated   = fmt.Errorf("not authenticated")
	ErrSessionExpired     = fmt.Errorf("session expired")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrNotPDF             = fmt.Errorf("file is not a PDF document")
	ErrNotImage           = fmt.Errorf("file is not an image")
	ErrUnknownModel       = fmt.Errorf("unknown model")
	ErrInvalidResponse    = fmt.Errorf("invalid backend response")
	ErrEmptyQuery         = fmt.Errorf("query is empty")
	ErrInvalidCommand     = fmt.Errorf("invalid command")
)
