package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrCodeUnauthenticated   ErrorCode = "UNAUTHENTICATED"
	ErrCodeInvalidCredential ErrorCode = "INVALID_CREDENTIAL"
	ErrCodeAccountDisabled   ErrorCode = "ACCOUNT_DISABLED"
	ErrCodeForbidden         ErrorCode = "FORBIDDEN"
	ErrCodeBadRequest        ErrorCode = "BAD_REQUEST"
	ErrCodeConflict          ErrorCode = "CONFLICT"
	ErrCodeAlreadyAssigned   ErrorCode = "ALREADY_ASSIGNED"
	ErrCodeAlreadyPicked     ErrorCode = "ALREADY_PICKED"
	ErrCodeInvalidJobType    ErrorCode = "INVALID_JOB_TYPE"
	ErrCodeRecipientNotFound ErrorCode = "RECIPIENT_NOT_FOUND"
	ErrCodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
	ErrCodeRateLimited       ErrorCode = "RATE_LIMITED"
	ErrCodeInternal          ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation        ErrorCode = "VALIDATION_ERROR"
	ErrCodeDatabaseError     ErrorCode = "DATABASE_ERROR"
)

type AppError struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is сравнивает ошибки по коду и сообщению: errors.Is(err, ErrJobNotFound)
// срабатывает и для копии сентинела, пришедшей из другого слоя.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Cause:      err,
	}
}

// Validation - короткая запись для ошибок валидации входных данных.
func Validation(message string) *AppError {
	return New(ErrCodeValidation, message)
}

func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound, ErrCodeRecipientNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthenticated, ErrCodeInvalidCredential:
		return http.StatusUnauthorized
	case ErrCodeForbidden, ErrCodeAccountDisabled:
		return http.StatusForbidden
	case ErrCodeBadRequest, ErrCodeValidation, ErrCodeInvalidJobType:
		return http.StatusBadRequest
	case ErrCodeConflict, ErrCodeAlreadyAssigned, ErrCodeAlreadyPicked, ErrCodeInvalidTransition:
		return http.StatusConflict
	case ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// CodeOf возвращает код ошибки или INTERNAL_ERROR для неизвестных ошибок.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

func IsNotFound(err error) bool {
	return CodeOf(err) == ErrCodeNotFound
}

func IsForbidden(err error) bool {
	return CodeOf(err) == ErrCodeForbidden
}

func IsValidation(err error) bool {
	return CodeOf(err) == ErrCodeValidation
}

var (
	ErrJobNotFound          = New(ErrCodeNotFound, "Job not found")
	ErrJobNoAccess          = New(ErrCodeNotFound, "Job not found or you do not have access to this job")
	ErrUserNotFound         = New(ErrCodeNotFound, "User not found")
	ErrDisputeNotFound      = New(ErrCodeNotFound, "Dispute not found")
	ErrFileNotFound         = New(ErrCodeNotFound, "File not found")
	ErrRecipientNotFound    = New(ErrCodeRecipientNotFound, "Receiver not found")
	ErrUnauthenticated      = New(ErrCodeUnauthenticated, "Authorization header missing or invalid")
	ErrInvalidCredential    = New(ErrCodeInvalidCredential, "Invalid or expired token")
	ErrAccountDisabled      = New(ErrCodeAccountDisabled, "User account is disabled")
	ErrForbidden            = New(ErrCodeForbidden, "You do not have permission to perform this action")
	ErrChatForbidden        = New(ErrCodeForbidden, "You do not have access to this chat")
	ErrAlreadyAssigned      = New(ErrCodeAlreadyAssigned, "You are already assigned to this job")
	ErrAlreadyPicked        = New(ErrCodeAlreadyPicked, "You have already picked this job")
	ErrInvalidJobType       = New(ErrCodeInvalidJobType, "Invalid job type provided")
	ErrDisputeExists        = New(ErrCodeConflict, "Dispute already exists for this job")
	ErrJobStatusChanged     = New(ErrCodeInvalidTransition, "Job status was changed by another operation")
)
