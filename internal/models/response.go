package models

// ErrorResponse wraps the normalized error list every failure is reduced to
// before leaving the API.
type ErrorResponse struct {
	Error []FieldError `json:"error"`
}

// MessageResponse is the confirmation body for operations without a record
// to return (e.g. delete).
type MessageResponse struct {
	Message string `json:"message"`
}

type UsersResponse struct {
	Users []User `json:"users"`
}

type ParkingSpacesResponse struct {
	ParkingSpaces []ParkingSpace `json:"parkingSpaces"`
}
