package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/escbarros/EngSoftware-HausParkApi/internal/models"
	"github.com/escbarros/EngSoftware-HausParkApi/pkg/utils"
)

// ParkingSpaceServicer is the slice of the parking space service the handler
// depends on.
type ParkingSpaceServicer interface {
	GetAllParkingSpaces() ([]models.ParkingSpace, error)
	CreateParkingSpace(hostID uint, payload []byte) (*models.ParkingSpace, error)
}

type ParkingSpaceHandler struct {
	spaceService ParkingSpaceServicer
}

func NewParkingSpaceHandler(spaceService ParkingSpaceServicer) *ParkingSpaceHandler {
	return &ParkingSpaceHandler{
		spaceService: spaceService,
	}
}

func (h *ParkingSpaceHandler) GetAllParkingSpaces(c *fiber.Ctx) error {
	spaces, err := h.spaceService.GetAllParkingSpaces()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
			Error: utils.FormatError(err, "An error occurred while getting all parking spaces"),
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.ParkingSpacesResponse{ParkingSpaces: spaces})
}

func (h *ParkingSpaceHandler) CreateParkingSpace(c *fiber.Ctx) error {
	hostID, err := parseID(c.Params("hostId"))
	if err != nil {
		return notFound(c, "Host/User was not found")
	}

	space, err := h.spaceService.CreateParkingSpace(hostID, c.Body())
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return notFound(c, "Host/User was not found")
		}
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: utils.FormatError(err, "An error occurred while creating a parking space"),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(space)
}
