package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"
	ErrCodeInactiveAccount ErrorCode = "INACTIVE_ACCOUNT"

	// Resource errors
	ErrCodeNotFound  ErrorCode = "NOT_FOUND"
	ErrCodeConflict  ErrorCode = "CONFLICT"
	ErrCodeDuplicate ErrorCode = "DUPLICATE"

	// Database errors
	ErrCodeDBError ErrorCode = "DB_ERROR"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NotFound tạo lỗi NOT_FOUND
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// Conflict tạo lỗi CONFLICT
func Conflict(message string) *AppError {
	return &AppError{Code: ErrCodeConflict, Message: message}
}

// Validation tạo lỗi VALIDATION_ERROR
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// User errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid credentials")
	ErrUnauthorized      = errors.New("unauthorized")

	// Room errors
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomFull         = errors.New("room is at full capacity")
	ErrRoomMaintenance  = errors.New("room is under maintenance")
	ErrRoomHasOccupants = errors.New("cannot delete a room with occupants")

	// Allocation errors
	ErrStudentNotFound  = errors.New("student not found")
	ErrAlreadyAllocated = errors.New("student is already allocated to a room")
	ErrNotInRoom        = errors.New("student is not in this room")
)
