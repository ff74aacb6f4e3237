package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sdp-portal/projectbank-backend/models"
)

type TeacherRepo struct {
	db *gorm.DB
}

func NewTeacherRepo(db *gorm.DB) *TeacherRepo {
	return &TeacherRepo{db}
}

// FindByUserID returns the teacher profile for the given OAuth user id, or nil
// when no profile has been provisioned.
func (r *TeacherRepo) FindByUserID(userID string) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.First(&teacher, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

// FindAll returns every teacher profile, used to enrich project listings.
func (r *TeacherRepo) FindAll() ([]*models.Teacher, error) {
	var teachers []*models.Teacher
	err := r.db.Find(&teachers).Error
	return teachers, err
}

// Add inserts a new teacher profile.
func (r *TeacherRepo) Add(teacher *models.Teacher) error {
	return r.db.Create(teacher).Error
}

// UpdateProfile overwrites exactly the editable profile fields and returns the
// post-update record, or nil when no teacher matches userID. Applying the same
// update twice leaves the same stored state.
func (r *TeacherRepo) UpdateProfile(userID, name, block, roomNumber, department string) (*models.Teacher, error) {
	result := r.db.Model(&models.Teacher{}).Where("user_id = ?", userID).Updates(map[string]any{
		"name":        name,
		"block":       block,
		"room_number": roomNumber,
		"department":  department,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByUserID(userID)
}
