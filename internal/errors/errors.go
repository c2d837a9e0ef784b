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
	Context string // Additional context like "for this inventory item"
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

// AccessDeniedError represents a cross-tenant or missing-ownership rejection.
// Distinct from NotFoundError: the entity exists but belongs to another
// organization.
type AccessDeniedError struct {
	Entity string
}

func (e *AccessDeniedError) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("access denied to %s", e.Entity)
	}
	return "access denied"
}

// Is enables errors.Is() comparison for AccessDeniedError
func (e *AccessDeniedError) Is(target error) bool {
	_, ok := target.(*AccessDeniedError)
	return ok
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound      = &NotFoundError{Entity: "organization"}
	ErrInventoryItemNotFound     = &NotFoundError{Entity: "inventory item"}
	ErrCompatibilityRuleNotFound = &NotFoundError{Entity: "compatibility rule"}
	ErrPartIdentifierNotFound    = &NotFoundError{Entity: "part identifier"}
	ErrAlternateGroupNotFound    = &NotFoundError{Entity: "alternate group"}
	ErrGroupMemberNotFound       = &NotFoundError{Entity: "group member"}
)

// Already Exists Errors
var (
	ErrCompatibilityRuleExists = &AlreadyExistsError{Entity: "compatibility rule", Context: "for this manufacturer/model combination"}
	ErrPartIdentifierExists    = &AlreadyExistsError{Entity: "part identifier", Context: "with this value in the organization"}
)

// Access Denied Errors
var (
	ErrInventoryItemAccessDenied     = &AccessDeniedError{Entity: "inventory item"}
	ErrCompatibilityRuleAccessDenied = &AccessDeniedError{Entity: "compatibility rule"}
)

// Business Logic Errors
var (
	ErrGroupMemberReferenceRequired = errors.New("group member must reference a part identifier or an inventory item")
	ErrGroupMemberReferenceConflict = errors.New("group member cannot reference both a part identifier and an inventory item")
	ErrDeprecatedGroupIsTerminal    = errors.New("a deprecated alternate group cannot change status")
	ErrInvalidStatus                = errors.New("invalid status")
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

// IsAccessDenied checks if an error is an AccessDeniedError
func IsAccessDenied(err error) bool {
	var deniedErr *AccessDeniedError
	return errors.As(err, &deniedErr)
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

// NewAccessDeniedError creates a new AccessDeniedError
func NewAccessDeniedError(entity string) error {
	return &AccessDeniedError{Entity: entity}
}
