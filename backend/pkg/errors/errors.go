package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeStore represents social-graph store errors
	ErrorTypeStore ErrorType = "store"
	// ErrorTypeAssistant represents assistant/LLM-related errors
	ErrorTypeAssistant ErrorType = "assistant"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Store Errors

// ErrPostNotFound is returned when an action references an unknown post
type ErrPostNotFound struct {
	*BaseError
	PostID string
}

func NewPostNotFound(postID string) *ErrPostNotFound {
	return &ErrPostNotFound{
		BaseError: NewBaseError(ErrorTypeStore, fmt.Sprintf("post not found: %s", postID), nil),
		PostID:    postID,
	}
}

// ErrUserNotFound is returned when an action references an unknown user
type ErrUserNotFound struct {
	*BaseError
	UserID string
}

func NewUserNotFound(userID string) *ErrUserNotFound {
	return &ErrUserNotFound{
		BaseError: NewBaseError(ErrorTypeStore, fmt.Sprintf("user not found: %s", userID), nil),
		UserID:    userID,
	}
}

// ErrStoryNotFound is returned when an action references an unknown story
type ErrStoryNotFound struct {
	*BaseError
	StoryID string
}

func NewStoryNotFound(storyID string) *ErrStoryNotFound {
	return &ErrStoryNotFound{
		BaseError: NewBaseError(ErrorTypeStore, fmt.Sprintf("story not found: %s", storyID), nil),
		StoryID:   storyID,
	}
}

// Assistant Errors

// ErrAssistantNoResponse is returned when the assistant returns no content
var ErrAssistantNoResponse = NewBaseError(ErrorTypeAssistant, "no response from assistant", nil)

// ErrAssistantRequestFailed is returned when an assistant request fails
type ErrAssistantRequestFailed struct {
	*BaseError
	Model    string
	Attempts int
}

func NewAssistantRequestFailed(model string, attempts int, err error) *ErrAssistantRequestFailed {
	return &ErrAssistantRequestFailed{
		BaseError: NewBaseError(ErrorTypeAssistant, fmt.Sprintf("assistant request failed after %d attempts", attempts), err),
		Model:     model,
		Attempts:  attempts,
	}
}

// Config Errors

// ErrConfigMissingRequired is returned when a required config value is missing
type ErrConfigMissingRequired struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ErrConfigMissingRequired {
	return &ErrConfigMissingRequired{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// Helper functions

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errType ErrorType) bool {
	if baseErr, ok := err.(*BaseError); ok {
		return baseErr.Type == errType
	}
	if wrapped, ok := err.(interface{ Unwrap() error }); ok {
		inner := wrapped.Unwrap()
		if inner != nil {
			return IsErrorType(inner, errType)
		}
	}
	return false
}

// IsNotFound checks if an error is any of the store not-found errors
func IsNotFound(err error) bool {
	switch err.(type) {
	case *ErrPostNotFound, *ErrUserNotFound, *ErrStoryNotFound:
		return true
	}
	return false
}
