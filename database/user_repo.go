package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sdp-portal/projectbank-backend/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// FindByGoogleID returns the account record for the given provider id, or nil
// when the user has never signed in.
func (r *UserRepo) FindByGoogleID(googleID string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "google_id = ?", googleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Add inserts a new account record.
func (r *UserRepo) Add(user *models.User) error {
	return r.db.Create(user).Error
}
