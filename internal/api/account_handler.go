package api

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Phutanet200102/api-mongoDB/internal/service"
)

type AccountHandler struct {
	accountService service.AccountService
	validate       *validator.Validate
}

func NewAccountHandler(accountService service.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		validate:       validator.New(),
	}
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AccountHandler) List(c *fiber.Ctx) error {
	accounts, err := h.accountService.List(c.Context())
	if err != nil {
		slog.Error("Failed to list accounts", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error retrieving data"})
	}

	return c.Status(fiber.StatusOK).JSON(accounts)
}

func (h *AccountHandler) Get(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID format"})
	}

	account, err := h.accountService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}

		slog.Error("Failed to get account", "id", id.Hex(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error retrieving user data"})
	}

	return c.Status(fiber.StatusOK).JSON(account)
}

// Register accepts arbitrary extra fields alongside email and password,
// so the body is decoded twice: once into the validated request and once
// into a map carrying everything else.
func (h *AccountHandler) Register(c *fiber.Ctx) error {
	var request RegisterRequest
	if err := json.Unmarshal(c.Body(), &request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email and password are required"})
	}

	var extra map[string]any
	if err := json.Unmarshal(c.Body(), &extra); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	delete(extra, "email")
	delete(extra, "password")

	err := h.accountService.Register(c.Context(), request.Email, request.Password, extra)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already exists"})
		case errors.Is(err, service.ErrMissingCredentials):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email and password are required"})
		}

		slog.Error("Failed to register account", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error adding data"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Data added successfully"})
}

func (h *AccountHandler) Login(c *fiber.Ctx) error {
	var request LoginRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	userID, err := h.accountService.Login(c.Context(), request.Email, request.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
		}

		slog.Error("Failed to log in", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error logging in"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
		"userId":  userID.Hex(),
	})
}

func (h *AccountHandler) Update(c *fiber.Ctx) error {
	id, err := bson.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID format"})
	}

	var fields map[string]any
	if err := json.Unmarshal(c.Body(), &fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.accountService.Update(c.Context(), id, fields); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}

		slog.Error("Failed to update account", "id", id.Hex(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating user data"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "User updated successfully"})
}
