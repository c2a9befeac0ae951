package handlers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/user-service/internal/api/dto"
	"github.com/spec-kit/user-service/internal/service"
	apperrors "github.com/spec-kit/user-service/pkg/util"
)

// UsersHandler exposes user record endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{users: userService}
}

// Create handles POST /api/v1/users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	req, err := parseUserRequest(c)
	if err != nil {
		return err
	}

	resp, err := h.users.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(resp)
}

// GetByID handles GET /api/v1/users/:id.
func (h *UsersHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.users.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetByDNI handles GET /api/v1/users/dni/:dni.
func (h *UsersHandler) GetByDNI(c *fiber.Ctx) error {
	resp, err := h.users.GetByDNI(c.UserContext(), c.Params("dni"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// List handles GET /api/v1/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	resp, err := h.users.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Update handles PUT /api/v1/users/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	req, err := parseUserRequest(c)
	if err != nil {
		return err
	}

	resp, err := h.users.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Delete handles DELETE /api/v1/users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.users.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseUserRequest(c *fiber.Ctx) (dto.UserRequest, error) {
	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return req, apperrors.NewValidationError("invalid payload", nil)
	}
	if details := req.Validate(); details != nil {
		return req, apperrors.NewValidationError(validationMessage(details), details)
	}
	return req, nil
}

func validationMessage(details map[string]any) string {
	fields := make([]string, 0, len(details))
	for field := range details {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "Validation error: " + strings.Join(fields, ", ")
}
