package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sdp-portal/projectbank-backend/models"
)

type StudentRepo struct {
	db    *gorm.DB
	locks keyedMutex
}

func NewStudentRepo(db *gorm.DB) *StudentRepo {
	return &StudentRepo{db: db}
}

// FindByUserID returns the student profile for the given OAuth user id, or nil
// when no profile has been provisioned.
func (r *StudentRepo) FindByUserID(userID string) (*models.Student, error) {
	var student models.Student
	err := r.db.First(&student, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// FindAll returns every student profile.
func (r *StudentRepo) FindAll() ([]*models.Student, error) {
	var students []*models.Student
	err := r.db.Find(&students).Error
	return students, err
}

// Add inserts a new student profile.
func (r *StudentRepo) Add(student *models.Student) error {
	return r.db.Create(student).Error
}

// UpdateProfile overwrites exactly the editable profile fields and returns the
// post-update record, or nil when no student matches userID. Applying the same
// update twice leaves the same stored state.
func (r *StudentRepo) UpdateProfile(userID, name, idNumber, degree, firstDegree, secondDegree, cg string) (*models.Student, error) {
	result := r.db.Model(&models.Student{}).Where("user_id = ?", userID).Updates(map[string]any{
		"name":          name,
		"id_number":     idNumber,
		"degree":        degree,
		"first_degree":  firstDegree,
		"second_degree": secondDegree,
		"cg":            cg,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return r.FindByUserID(userID)
}

// SaveDraft upserts the draft into the student's embedded draft list and
// persists the whole student row. The per-student lock serializes the
// read-modify-write so two concurrent saves cannot drop one another. The bool
// reports whether the student exists.
func (r *StudentRepo) SaveDraft(studentID string, draft models.Draft) (bool, error) {
	unlock := r.locks.Lock(studentID)
	defer unlock()

	student, err := r.FindByUserID(studentID)
	if err != nil {
		return false, err
	}
	if student == nil {
		return false, nil
	}

	student.UpsertDraft(draft)
	if err := r.db.Save(student).Error; err != nil {
		return false, err
	}
	return true, nil
}
