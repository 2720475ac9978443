package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller may not act on the referenced resource.
var ErrUnauthorized = errors.New("unauthorized")

// ErrActivationFailed indicates that the activation authority rejected a license request.
var ErrActivationFailed = errors.New("activation failed")

// Kind classifies a failure for the request boundary.
type Kind string

const (
	KindNotFound         Kind = "NOT_FOUND"
	KindActivationFailed Kind = "ACTIVATION_FAILED"
	KindUnexpected       Kind = "UNEXPECTED"
)

// AppError is a classified failure carrying a caller-facing message.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match an AppError against the sentinel of its kind.
func (e *AppError) Is(target error) bool {
	switch e.Kind {
	case KindNotFound:
		return target == ErrNotFound
	case KindActivationFailed:
		return target == ErrActivationFailed
	}
	return false
}

// NewNotFound builds a NotFound error whose message names the missing entity.
func NewNotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

// NewActivationFailed builds an ActivationFailed error.
func NewActivationFailed(message string) *AppError {
	return &AppError{Kind: KindActivationFailed, Message: message}
}

// NewAppError wraps err as an unexpected failure with the given message.
func NewAppError(message string, err error) *AppError {
	return &AppError{Kind: KindUnexpected, Message: message, Err: err}
}

// KindOf reports the classification of err. Only an AppError carries a kind;
// a bare sentinel wrapped by an accessor is Unexpected.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnexpected
}
