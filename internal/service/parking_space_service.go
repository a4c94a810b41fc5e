package service

import (
	"github.com/escbarros/EngSoftware-HausParkApi/internal/models"
	"github.com/escbarros/EngSoftware-HausParkApi/pkg/utils"
)

// ParkingSpaceRepository is the persistence capability for parking spaces.
// *repository.ParkingSpaceRepository satisfies it.
type ParkingSpaceRepository interface {
	GetAll() ([]models.ParkingSpace, error)
	Create(space *models.ParkingSpace) (*models.ParkingSpace, error)
}

// HostLookup is the slice of the user repository the parking space service
// needs to resolve a space's owner.
type HostLookup interface {
	GetByID(id uint) (*models.User, error)
}

type ParkingSpaceService struct {
	spaceRepo ParkingSpaceRepository
	userRepo  HostLookup
	validator *utils.Validator
}

func NewParkingSpaceService(spaceRepo ParkingSpaceRepository, userRepo HostLookup, validator *utils.Validator) *ParkingSpaceService {
	return &ParkingSpaceService{
		spaceRepo: spaceRepo,
		userRepo:  userRepo,
		validator: validator,
	}
}

func (s *ParkingSpaceService) GetAllParkingSpaces() ([]models.ParkingSpace, error) {
	return s.spaceRepo.GetAll()
}

// CreateParkingSpace resolves the host before touching the payload: a
// missing host wins over an invalid or malformed body. With the host
// confirmed, the payload is decoded, defaulted and validated, then persisted
// with the host attached.
func (s *ParkingSpaceService) CreateParkingSpace(hostID uint, payload []byte) (*models.ParkingSpace, error) {
	host, err := s.userRepo.GetByID(hostID)
	if err != nil {
		return nil, err
	}

	var req models.ParkingSpaceRequest
	if err := s.validator.Parse(payload, &req); err != nil {
		return nil, err
	}

	return s.spaceRepo.Create(req.ToParkingSpace(host.ID))
}
