package dto

import (
	"net/mail"
	"strings"
	"time"

	"github.com/spec-kit/user-service/internal/domain"
)

// UserRequest is the create/update payload. All fields are required.
type UserRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	DNI         string `json:"dni"`
}

// UserResponse is the external representation of a user record.
type UserResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	DNI         string    `json:"dni"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Status    int            `json:"status"`
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Path      string         `json:"path"`
	Timestamp time.Time      `json:"timestamp"`
}

// Validate reports field-level constraint violations, keyed by field name.
// A nil result means the payload is valid.
func (r UserRequest) Validate() map[string]any {
	details := map[string]any{}

	if strings.TrimSpace(r.FirstName) == "" {
		details["firstName"] = "first name is required"
	}
	if strings.TrimSpace(r.LastName) == "" {
		details["lastName"] = "last name is required"
	}
	if strings.TrimSpace(r.Email) == "" {
		details["email"] = "email is required"
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		details["email"] = "invalid email format"
	}
	if strings.TrimSpace(r.PhoneNumber) == "" {
		details["phoneNumber"] = "phone number is required"
	}
	if strings.TrimSpace(r.DNI) == "" {
		details["dni"] = "dni is required"
	}

	if len(details) == 0 {
		return nil
	}
	return details
}

// ToUser maps the payload to a stored record, field by field. The external
// dni becomes the internal document number and status is always ACTIVE.
// Identifier and timestamps are left for the operations layer to assign.
func (r UserRequest) ToUser() *domain.User {
	return &domain.User{
		DocumentNumber: r.DNI,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		PhoneNumber:    r.PhoneNumber,
		Status:         domain.UserStatusActive,
	}
}

// NewUserResponse maps a stored record to its external representation,
// exposing the document number under the dni field.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		DNI:         user.DocumentNumber,
		Status:      string(user.Status),
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}
