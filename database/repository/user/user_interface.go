package userRepo

import "mediconnect/models"

// UserRepository abstracts user storage. Lookups return (nil, nil) when no
// matching record exists.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Update(user *models.User) error
	Delete(id string) error
	List() ([]models.User, error)
	// ListDoctors returns doctor accounts, optionally filtered by
	// specialization and location (exact match, empty means any).
	ListDoctors(specialization, location string) ([]models.User, error)
}
