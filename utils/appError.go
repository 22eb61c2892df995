package utils

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorKind classifies failures at the HTTP boundary. Each kind maps to a
// status code and a fixed public message; raw causes are only logged.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindAuth
	KindInvalidToken
	KindForbidden
	KindNotFound
	KindConflict
	KindRead
	KindWrite
	KindUnavailable
)

var kindStatus = map[ErrorKind]int{
	KindInternal:     fiber.StatusInternalServerError,
	KindValidation:   fiber.StatusBadRequest,
	KindAuth:         fiber.StatusUnauthorized,
	KindInvalidToken: fiber.StatusBadRequest,
	KindForbidden:    fiber.StatusForbidden,
	KindNotFound:     fiber.StatusNotFound,
	KindConflict:     fiber.StatusBadRequest,
	KindRead:         fiber.StatusInternalServerError,
	KindWrite:        fiber.StatusBadRequest,
	KindUnavailable:  fiber.StatusServiceUnavailable,
}

var kindMessage = map[ErrorKind]string{
	KindInternal:     "Internal server error",
	KindValidation:   "Validation failed",
	KindAuth:         "Access denied",
	KindInvalidToken: "Invalid token",
	KindForbidden:    "Access forbidden",
	KindNotFound:     "Not found",
	KindConflict:     "Conflict",
	KindRead:         "Failed to fetch data",
	KindWrite:        "Failed to save data",
	KindUnavailable:  "Service unavailable",
}

func (k ErrorKind) Status() int {
	if status, ok := kindStatus[k]; ok {
		return status
	}
	return fiber.StatusInternalServerError
}

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindInvalidToken:
		return "invalid_token"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindRead:
		return "read"
	case KindWrite:
		return "write"
	case KindUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// AppError is an error with a public message safe to send to clients.
type AppError struct {
	Kind    ErrorKind
	Message string
	Fields  map[string]string
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

// NewAppError builds an AppError; an empty message falls back to the kind's default.
func NewAppError(kind ErrorKind, message string, err error) *AppError {
	if message == "" {
		message = kindMessage[kind]
	}
	return &AppError{Kind: kind, Message: message, Err: err}
}

func ReadError(err error) *AppError {
	return NewAppError(KindRead, "", err)
}

func WriteError(err error) *AppError {
	return NewAppError(KindWrite, "", err)
}

func ValidationError(fields map[string]string) *AppError {
	e := NewAppError(KindValidation, "", nil)
	e.Fields = fields
	return e
}

// SendError writes {"error": ...} for err and logs the underlying cause.
func SendError(c *fiber.Ctx, log *zap.Logger, err error) error {
	status := fiber.StatusInternalServerError
	message := kindMessage[KindInternal]
	kind := KindInternal
	var fields map[string]string
	var cause error = err

	var appErr *AppError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		kind = appErr.Kind
		status = kind.Status()
		message = appErr.Message
		fields = appErr.Fields
		cause = appErr.Err
	case errors.As(err, &fiberErr):
		status = fiberErr.Code
		message = fiberErr.Message
		cause = nil
	}

	if cause != nil && log != nil {
		logFields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Any("request_id", c.Locals("requestid")),
			zap.String("kind", kind.String()),
			zap.Int("status", status),
			zap.Error(cause),
		}
		if status >= fiber.StatusInternalServerError {
			log.Error("request failed", logFields...)
		} else {
			log.Warn("request rejected", logFields...)
		}
	}

	body := fiber.Map{"error": message}
	if len(fields) > 0 {
		body["fields"] = fields
	}
	return c.Status(status).JSON(body)
}

// ErrorHandler routes every error returned by a handler through SendError.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return SendError(c, log, err)
	}
}
