package models

import (
	"time"
)

type ParkingSpace struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	HostID              uint      `json:"hostId" gorm:"not null"`
	Address             string    `json:"address" gorm:"not null"`
	Width               float64   `json:"width" gorm:"not null"`
	Height              float64   `json:"height" gorm:"not null"`
	Length              float64   `json:"length" gorm:"not null"`
	Description         *string   `json:"description"`
	Price               float64   `json:"price" gorm:"not null"`
	NumberOfCars        int       `json:"number_of_cars" gorm:"not null;default:1"`
	AcceptsParlay       bool      `json:"accepts_parlay" gorm:"not null;default:true"`
	HasInsurance        bool      `json:"has_insurance" gorm:"not null;default:false"`
	HasWashingService   bool      `json:"has_washing_service" gorm:"not null;default:false"`
	HasOvernightService bool      `json:"has_overnight_service" gorm:"not null;default:false"`
	HasChargingService  bool      `json:"has_charging_service" gorm:"not null;default:false"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// ParkingSpaceRequest is the create payload. Optional fields get their
// defaults from ApplyDefaults before validation runs, so the rules never
// need to care whether a field was present.
type ParkingSpaceRequest struct {
	Address             *string  `json:"address" validate:"required,min=10"`
	Width               *float64 `json:"width" validate:"required,min=1"`
	Height              *float64 `json:"height" validate:"required,min=1"`
	Length              *float64 `json:"length" validate:"required,min=1"`
	Description         *string  `json:"description"`
	Price               *float64 `json:"price" validate:"required,min=1"`
	NumberOfCars        *int     `json:"number_of_cars" validate:"omitnil,min=1"`
	AcceptsParlay       *bool    `json:"accepts_parlay"`
	HasInsurance        *bool    `json:"has_insurance"`
	HasWashingService   *bool    `json:"has_washing_service"`
	HasOvernightService *bool    `json:"has_overnight_service"`
	HasChargingService  *bool    `json:"has_charging_service"`
}

// ApplyDefaults fills the optional fields that were absent from the payload:
// number_of_cars=1, accepts_parlay=true, the has_* flags=false.
func (r *ParkingSpaceRequest) ApplyDefaults() {
	if r.NumberOfCars == nil {
		n := 1
		r.NumberOfCars = &n
	}
	if r.AcceptsParlay == nil {
		b := true
		r.AcceptsParlay = &b
	}
	for _, flag := range []**bool{&r.HasInsurance, &r.HasWashingService, &r.HasOvernightService, &r.HasChargingService} {
		if *flag == nil {
			b := false
			*flag = &b
		}
	}
}

// ToParkingSpace builds the persistable record for the given host.
// Call only after ApplyDefaults and validation.
func (r ParkingSpaceRequest) ToParkingSpace(hostID uint) *ParkingSpace {
	// Description stays nil when absent so it serializes as null, the way
	// a nullable text column reads back.
	return &ParkingSpace{
		HostID:              hostID,
		Address:             *r.Address,
		Width:               *r.Width,
		Height:              *r.Height,
		Length:              *r.Length,
		Description:         r.Description,
		Price:               *r.Price,
		NumberOfCars:        *r.NumberOfCars,
		AcceptsParlay:       *r.AcceptsParlay,
		HasInsurance:        *r.HasInsurance,
		HasWashingService:   *r.HasWashingService,
		HasOvernightService: *r.HasOvernightService,
		HasChargingService:  *r.HasChargingService,
	}
}
