package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "on this team"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTeamNotFound              = &NotFoundError{Entity: "team"}
	ErrPlayerNotFound            = &NotFoundError{Entity: "player"}
	ErrUserNotFound              = &NotFoundError{Entity: "user"}
	ErrGameNotFound              = &NotFoundError{Entity: "game"}
	ErrKeyMomentNotFound         = &NotFoundError{Entity: "key moment"}
	ErrTranscriptNotFound        = &NotFoundError{Entity: "transcript"}
	ErrInviteNotFound            = &NotFoundError{Entity: "invite"}
	ErrCommentNotFound           = &NotFoundError{Entity: "comment"}
	ErrNotificationNotFound      = &NotFoundError{Entity: "notification"}
	ErrEnrollmentNotFound        = &NotFoundError{Entity: "enrollment"}
	ErrFullGameRecordingNotFound = &NotFoundError{Entity: "full game recording"}
)

// Already Exists Errors
var (
	ErrPlayerAlreadyEnrolled = &AlreadyExistsError{Entity: "player", Context: "on this team"}
	ErrUserExists            = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrCoachAlreadyAssigned  = &AlreadyExistsError{Entity: "coach", Context: "on this team"}
	ErrInviteExists          = &AlreadyExistsError{Entity: "invite", Context: "for this email on this team"}
)

// Business Logic Errors
var (
	ErrInvalidAccessCode     = errors.New("invalid access code")
	ErrAccessCodeGeneration  = errors.New("failed to generate unique access code")
	ErrUnknownRole           = errors.New("unknown user role")
	ErrInvalidFrameRange     = errors.New("frame start must not exceed frame end")
	ErrInviteAlreadyResolved = errors.New("invite has already been accepted or declined")
	ErrCoachOnlyOperation    = &AuthorizationError{Message: "only a coach can perform this operation"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
