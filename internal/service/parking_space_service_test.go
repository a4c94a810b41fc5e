package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/escbarros/EngSoftware-HausParkApi/internal/models"
	"github.com/escbarros/EngSoftware-HausParkApi/internal/service"
	"github.com/escbarros/EngSoftware-HausParkApi/pkg/utils"
)

type mockSpaceRepo struct {
	getAll func() ([]models.ParkingSpace, error)
	create func(space *models.ParkingSpace) (*models.ParkingSpace, error)
}

func (m *mockSpaceRepo) GetAll() ([]models.ParkingSpace, error) { return m.getAll() }
func (m *mockSpaceRepo) Create(s *models.ParkingSpace) (*models.ParkingSpace, error) {
	return m.create(s)
}

var _ service.ParkingSpaceRepository = (*mockSpaceRepo)(nil)

type mockHostLookup struct {
	getByID func(id uint) (*models.User, error)
}

func (m *mockHostLookup) GetByID(id uint) (*models.User, error) { return m.getByID(id) }

var _ service.HostLookup = (*mockHostLookup)(nil)

func existingHost() *mockHostLookup {
	return &mockHostLookup{
		getByID: func(id uint) (*models.User, error) { return &models.User{ID: id}, nil },
	}
}

func missingHost() *mockHostLookup {
	return &mockHostLookup{
		getByID: func(id uint) (*models.User, error) { return nil, models.ErrNotFound },
	}
}

func echoSpaceRepo() *mockSpaceRepo {
	return &mockSpaceRepo{
		create: func(s *models.ParkingSpace) (*models.ParkingSpace, error) {
			s.ID = 1
			return s, nil
		},
	}
}

func validSpacePayload() []byte {
	return []byte(`{
		"address": "Rua das Laranjeiras 123",
		"width": 12.5,
		"height": 10,
		"length": 15,
		"description": "covered spot near the gate",
		"price": 18.5
	}`)
}

func newSpaceService(spaces *mockSpaceRepo, hosts *mockHostLookup) *service.ParkingSpaceService {
	return service.NewParkingSpaceService(spaces, hosts, utils.NewValidator())
}

func TestParkingSpaceService_Create_Valid(t *testing.T) {
	svc := newSpaceService(echoSpaceRepo(), existingHost())

	space, err := svc.CreateParkingSpace(42, validSpacePayload())

	require.NoError(t, err)
	assert.Equal(t, uint(1), space.ID)
	assert.Equal(t, uint(42), space.HostID)
	assert.Equal(t, "Rua das Laranjeiras 123", space.Address)
	assert.Equal(t, 12.5, space.Width)
	require.NotNil(t, space.Description)
	assert.Equal(t, "covered spot near the gate", *space.Description)
}

func TestParkingSpaceService_Create_AppliesDefaults(t *testing.T) {
	svc := newSpaceService(echoSpaceRepo(), existingHost())

	space, err := svc.CreateParkingSpace(42, validSpacePayload())

	require.NoError(t, err)
	assert.Equal(t, 1, space.NumberOfCars)
	assert.True(t, space.AcceptsParlay)
	assert.False(t, space.HasInsurance)
	assert.False(t, space.HasWashingService)
	assert.False(t, space.HasOvernightService)
	assert.False(t, space.HasChargingService)
}

func TestParkingSpaceService_Create_SubmittedFlagsWinOverDefaults(t *testing.T) {
	svc := newSpaceService(echoSpaceRepo(), existingHost())

	space, err := svc.CreateParkingSpace(42, []byte(`{
		"address": "Rua das Laranjeiras 123",
		"width": 12.5,
		"height": 10,
		"length": 15,
		"price": 18.5,
		"number_of_cars": 3,
		"accepts_parlay": false,
		"has_insurance": true
	}`))

	require.NoError(t, err)
	assert.Equal(t, 3, space.NumberOfCars)
	assert.False(t, space.AcceptsParlay)
	assert.True(t, space.HasInsurance)
	// No default for description: omitted stays nil, not "".
	assert.Nil(t, space.Description)
}

func TestParkingSpaceService_Create_MissingHostBeatsInvalidBody(t *testing.T) {
	created := false
	spaces := &mockSpaceRepo{
		create: func(s *models.ParkingSpace) (*models.ParkingSpace, error) {
			created = true
			return s, nil
		},
	}
	svc := newSpaceService(spaces, missingHost())

	// Body is invalid too; the missing host must win.
	_, err := svc.CreateParkingSpace(99999, []byte(`{"address":"x"}`))

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.False(t, created)
}

func TestParkingSpaceService_Create_MissingHostBeatsMalformedBody(t *testing.T) {
	svc := newSpaceService(echoSpaceRepo(), missingHost())

	_, err := svc.CreateParkingSpace(99999, []byte(`{not json`))

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestParkingSpaceService_Create_InvalidBodyWithExistingHost(t *testing.T) {
	svc := newSpaceService(echoSpaceRepo(), existingHost())

	_, err := svc.CreateParkingSpace(42, []byte(`{"address":"x"}`))

	var validationErr models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Violations, models.FieldError{
		Field:   "address",
		Message: "Address should have at least 10 chars",
	})
}

func TestParkingSpaceService_GetAll(t *testing.T) {
	spaces := &mockSpaceRepo{
		getAll: func() ([]models.ParkingSpace, error) {
			return []models.ParkingSpace{{ID: 1}, {ID: 2}}, nil
		},
	}
	svc := newSpaceService(spaces, existingHost())

	got, err := svc.GetAllParkingSpaces()

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
