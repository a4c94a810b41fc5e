package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/escbarros/EngSoftware-HausParkApi/internal/models"
	"github.com/escbarros/EngSoftware-HausParkApi/pkg/utils"
)

// UserServicer is the slice of the user service the handler depends on.
// Declared here so handler tests can inject a mock.
type UserServicer interface {
	GetAllUsers() ([]models.User, error)
	GetUserByID(id uint) (*models.User, error)
	CreateUser(payload []byte) (*models.User, error)
	UpdateUser(id uint, payload []byte) (*models.User, error)
	DeleteUser(id uint) error
}

type UserHandler struct {
	userService UserServicer
}

func NewUserHandler(userService UserServicer) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: utils.FormatError(err, "An error occurred while getting all users"),
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.UsersResponse{Users: users})
}

func (h *UserHandler) GetUserByID(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return notFound(c, "User was not found")
	}

	user, err := h.userService.GetUserByID(id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return notFound(c, "User was not found")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: utils.FormatError(err, "An error occurred while searching for a user"),
		})
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	user, err := h.userService.CreateUser(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: utils.FormatError(err, "An error occurred while creating a user"),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return notFound(c, "User was not found")
	}

	user, err := h.userService.UpdateUser(id, c.Body())
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return notFound(c, "User was not found")
		}
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: utils.FormatError(err, "An error occurred while updating a user"),
		})
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return notFound(c, "User was not found")
	}

	if err := h.userService.DeleteUser(id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return notFound(c, "User was not found")
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: utils.FormatError(err, "An error occurred while deleting a user"),
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.MessageResponse{Message: "User deleted"})
}

// parseID parses a numeric path id. Callers treat a parse failure the same
// as a miss: a garbage id can never match a record.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{
		Error: utils.FormatError(models.ErrNotFound, message),
	})
}
