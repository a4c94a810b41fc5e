package service

import (
	"github.com/escbarros/EngSoftware-HausParkApi/internal/models"
	"github.com/escbarros/EngSoftware-HausParkApi/pkg/utils"
)

// UserRepository is the persistence capability the user service depends on.
// *repository.UserRepository satisfies it; tests inject a mock.
type UserRepository interface {
	GetAll() ([]models.User, error)
	GetByID(id uint) (*models.User, error)
	Create(user *models.User) (*models.User, error)
	Update(user *models.User) (*models.User, error)
	Delete(id uint) error
}

type UserService struct {
	userRepo  UserRepository
	validator *utils.Validator
}

func NewUserService(userRepo UserRepository, validator *utils.Validator) *UserService {
	return &UserService{
		userRepo:  userRepo,
		validator: validator,
	}
}

func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// CreateUser validates the raw payload and persists the user. Uniqueness of
// cpf, phone and email is enforced by the store, not the validator; a breach
// comes back as a models.ConstraintError.
func (s *UserService) CreateUser(payload []byte) (*models.User, error) {
	var req models.UserRequest
	if err := s.validator.Parse(payload, &req); err != nil {
		return nil, err
	}
	return s.userRepo.Create(req.ToUser())
}

// UpdateUser looks the user up first — a miss short-circuits before the
// payload is even decoded — then validates against the update schema and
// applies the update fields. CPF is not part of the schema and is never
// changed.
func (s *UserService) UpdateUser(id uint, payload []byte) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	var req models.UserUpdateRequest
	if err := s.validator.Parse(payload, &req); err != nil {
		return nil, err
	}

	req.Apply(user)
	return s.userRepo.Update(user)
}

// DeleteUser confirms the user exists before deleting.
func (s *UserService) DeleteUser(id uint) error {
	if _, err := s.userRepo.GetByID(id); err != nil {
		return err
	}
	return s.userRepo.Delete(id)
}
