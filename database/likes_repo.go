package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sdp-portal/projectbank-backend/models"
)

type LikesRepo struct {
	db    *gorm.DB
	locks keyedMutex
}

func NewLikesRepo(db *gorm.DB) *LikesRepo {
	return &LikesRepo{db: db}
}

// FindByStudent returns the student's ledger row, or nil when the student has
// never liked anything.
func (r *LikesRepo) FindByStudent(studentID string) (*models.LikesLedger, error) {
	var ledger models.LikesLedger
	err := r.db.First(&ledger, "student_id = ?", studentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ledger, nil
}

// AddLiked appends projectID to the student's liked list, creating the ledger
// row on first like. The append is unconditional: liking the same project
// twice records it twice. The per-student lock keeps concurrent likes from
// overwriting each other.
func (r *LikesRepo) AddLiked(studentID, projectID string) error {
	unlock := r.locks.Lock(studentID)
	defer unlock()

	ledger, err := r.FindByStudent(studentID)
	if err != nil {
		return err
	}

	if ledger == nil {
		ledger = &models.LikesLedger{
			StudentID:     studentID,
			LikedProjects: []models.LikedProject{{ProjectID: projectID}},
		}
		return r.db.Create(ledger).Error
	}

	ledger.LikedProjects = append(ledger.LikedProjects, models.LikedProject{ProjectID: projectID})
	return r.db.Save(ledger).Error
}

// RemoveLiked filters every occurrence of projectID out of the student's liked
// list. The bool reports whether a ledger row exists for the student.
func (r *LikesRepo) RemoveLiked(studentID, projectID string) (bool, error) {
	unlock := r.locks.Lock(studentID)
	defer unlock()

	ledger, err := r.FindByStudent(studentID)
	if err != nil {
		return false, err
	}
	if ledger == nil {
		return false, nil
	}

	ledger.RemoveProject(projectID)
	if err := r.db.Save(ledger).Error; err != nil {
		return false, err
	}
	return true, nil
}
