package models

import (
	"time"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	CPF       string    `json:"cpf" gorm:"unique;not null"`
	Phone     string    `json:"phone" gorm:"unique;not null"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Password  string    `json:"password" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserRequest is the create payload. Fields are pointers so an absent field
// can be told apart from a zero value: nil fails "required" while an empty
// string falls through to the format rules.
type UserRequest struct {
	Name     *string `json:"name" validate:"required,min=10"`
	CPF      *string `json:"cpf" validate:"required,len=11"`
	Phone    *string `json:"phone" validate:"required,phone"`
	Email    *string `json:"email" validate:"required,email"`
	Password *string `json:"password" validate:"required,password"`
}

func (r UserRequest) ToUser() *User {
	return &User{
		Name:     *r.Name,
		CPF:      *r.CPF,
		Phone:    *r.Phone,
		Email:    *r.Email,
		Password: *r.Password,
	}
}

// UserUpdateRequest mirrors UserRequest minus cpf, which is immutable after
// creation.
type UserUpdateRequest struct {
	Name     *string `json:"name" validate:"required,min=10"`
	Phone    *string `json:"phone" validate:"required,phone"`
	Email    *string `json:"email" validate:"required,email"`
	Password *string `json:"password" validate:"required,password"`
}

// Apply copies the update fields onto an existing user. CPF and timestamps
// stay untouched.
func (r UserUpdateRequest) Apply(user *User) {
	user.Name = *r.Name
	user.Phone = *r.Phone
	user.Email = *r.Email
	user.Password = *r.Password
}
