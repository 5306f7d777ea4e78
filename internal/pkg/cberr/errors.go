package cberr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeChartNotFound  = "CHART_NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeUnavailable    = "SERVICE_UNAVAILABLE"
	CodeInternalError  = "INTERNAL_ERROR"
)

var (
	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "resource not found with given parameters")

	// ErrChartNotFound is returned when no chart has the requested id.
	ErrChartNotFound = New(fiber.StatusNotFound, CodeChartNotFound, "chart not found")

	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	ErrUnauthorized = New(fiber.StatusUnauthorized, CodeUnauthorized, "missing or invalid credentials")

	ErrUnavailable = New(fiber.StatusServiceUnavailable, CodeUnavailable, "service unavailable")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")
)

type Extras map[string]any

type BoardError struct {
	StatusCode int
	ErrorCode  string
	Message    string
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *BoardError {
	return &BoardError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e BoardError) Msg(format string, parts ...any) *BoardError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e BoardError) WithExtras(extras Extras) *BoardError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations any) *BoardError {
	return ErrInvalidReq.WithExtras(Extras{
		"violations": violations,
	})
}

func (e *BoardError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
