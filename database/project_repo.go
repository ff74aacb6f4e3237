package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sdp-portal/projectbank-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindByTeacher returns every project posted by the given teacher.
func (r *ProjectRepo) FindByTeacher(teacherID string) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Where("teacher_id = ?", teacherID).Find(&projects).Error
	return projects, err
}

// FindAll returns all projects from the database
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil when no such project exists.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update replaces the stored project's fields with the given record's.
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project by id. The bool reports whether a row was deleted,
// so the handler can distinguish a missing project from a successful delete.
func (r *ProjectRepo) Delete(id uuid.UUID) (bool, error) {
	result := r.db.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
