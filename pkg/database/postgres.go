package database

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDatabase opens the Postgres connection. The handle is passed down
// explicitly through the repositories; there is no package-level global.
func NewDatabase(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	return gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
}
