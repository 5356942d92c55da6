package services

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Engine failures. Handlers translate these to HTTP via HTTPStatus and
// Message; anything else coming out of the engine is a storage failure.
var (
	ErrLevelNotFound      = errors.New("level not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrVideoNotFound      = errors.New("video not found")
	ErrAlreadyEnrolled    = errors.New("level already purchased")
	ErrNotEnrolled        = errors.New("level not purchased")
	ErrVideoNotAccessible = errors.New("video not accessible")
	ErrFinalExamLocked    = errors.New("final exam not available yet")
	ErrInvalidExamType    = errors.New("invalid exam type")
	ErrInvalidExamInput   = errors.New("invalid exam input")
)

// storageError wraps a persistence failure the engine does not interpret.
type storageError struct {
	err error
}

func (e *storageError) Error() string { return "storage failure: " + e.err.Error() }

func (e *storageError) Unwrap() error { return e.err }

func storageFailure(err error) error {
	return &storageError{err: err}
}

// IsStorageFailure reports whether err is a wrapped persistence failure.
func IsStorageFailure(err error) bool {
	var se *storageError
	return errors.As(err, &se)
}

// HTTPStatus maps an engine error to the status handlers reply with.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrLevelNotFound),
		errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrVideoNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrAlreadyEnrolled):
		return fiber.StatusConflict
	case errors.Is(err, ErrNotEnrolled),
		errors.Is(err, ErrVideoNotAccessible),
		errors.Is(err, ErrFinalExamLocked):
		return fiber.StatusPreconditionFailed
	case errors.Is(err, ErrInvalidExamType),
		errors.Is(err, ErrInvalidExamInput):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// Message returns the user-facing message for an engine error.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrLevelNotFound):
		return "Level not found!"
	case errors.Is(err, ErrUserNotFound):
		return "User not found!"
	case errors.Is(err, ErrVideoNotFound):
		return "Video not found!"
	case errors.Is(err, ErrAlreadyEnrolled):
		return "Level already purchased!"
	case errors.Is(err, ErrNotEnrolled):
		return "Level not purchased!"
	case errors.Is(err, ErrVideoNotAccessible):
		return "Video not accessible!"
	case errors.Is(err, ErrFinalExamLocked):
		return "Final exam not available yet. Complete all videos first!"
	case errors.Is(err, ErrInvalidExamType):
		return "Invalid exam type!"
	case errors.Is(err, ErrInvalidExamInput):
		return "Invalid exam input!"
	default:
		return "Something went wrong!"
	}
}
