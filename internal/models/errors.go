package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Error codes used across the application. Every error is per-request
// and recoverable; none is fatal to the process.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeDuplicateAccount = "DUPLICATE_ACCOUNT"
	CodeAuthFailed       = "AUTH_FAILED"
	CodeEmptyContent     = "EMPTY_CONTENT"
	CodeValidation       = "VALIDATION_ERROR"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeInternal         = "INTERNAL_ERROR"
)

// NewNotFoundError reports that a resource does not exist.
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %v not found", resource, id),
	}
}

// NewDuplicateAccountError reports a username or email collision at
// registration. The message deliberately does not say which field
// collided beyond what the storage constraint reveals.
func NewDuplicateAccountError() *AppError {
	return &AppError{
		Code:    CodeDuplicateAccount,
		Message: "Username or email is already taken",
	}
}

// NewAuthenticationError reports a credential mismatch. The same
// message is used for an unknown email and a wrong password so the
// caller cannot enumerate accounts.
func NewAuthenticationError() *AppError {
	return &AppError{
		Code:    CodeAuthFailed,
		Message: "Email or password does not match",
	}
}

// NewEmptyContentError reports a post whose content is empty after
// trimming whitespace.
func NewEmptyContentError() *AppError {
	return &AppError{
		Code:    CodeEmptyContent,
		Message: "Post content must not be empty",
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// IsCode reports whether err is an AppError carrying the given code.
func IsCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// RespondWithError creates a standardized error response
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	var appErr *AppError
	if errors.As(err, &appErr) {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}
