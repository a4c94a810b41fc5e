package repository

import (
	"gorm.io/gorm"

	"github.com/escbarros/EngSoftware-HausParkApi/internal/models"
)

type ParkingSpaceRepository struct {
	db *gorm.DB
}

func NewParkingSpaceRepository(db *gorm.DB) *ParkingSpaceRepository {
	return &ParkingSpaceRepository{db: db}
}

func (r *ParkingSpaceRepository) GetAll() ([]models.ParkingSpace, error) {
	spaces := make([]models.ParkingSpace, 0)
	if err := r.db.Find(&spaces).Error; err != nil {
		return nil, translateError(err)
	}
	return spaces, nil
}

func (r *ParkingSpaceRepository) Create(space *models.ParkingSpace) (*models.ParkingSpace, error) {
	if err := r.db.Create(space).Error; err != nil {
		return nil, translateError(err)
	}
	return space, nil
}
