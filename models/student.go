package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Student is the profile record provisioned on first student sign-in. CG is the
// current CGPA kept as the decimal string the form submitted; eligibility
// parsing happens at read time, not here. Drafts are embedded in the student
// row as a JSON column, mirroring the one-document-per-student shape the
// frontend expects.
type Student struct {
	ID           uuid.UUID                  `json:"id" gorm:"type:uuid;primaryKey;not null"`
	UserID       string                     `json:"userId" gorm:"type:text;not null;uniqueIndex:idx_student_user_id"`
	Name         string                     `json:"name" gorm:"type:text;not null"`
	IDNumber     string                     `json:"idNumber" gorm:"type:text"`
	Degree       string                     `json:"degree" gorm:"type:text"`
	FirstDegree  string                     `json:"firstDegree" gorm:"type:text"`
	SecondDegree string                     `json:"secondDegree" gorm:"type:text"`
	CG           string                     `json:"cg" gorm:"type:text"`
	Drafts       datatypes.JSONSlice[Draft] `json:"drafts" gorm:"type:json"`
}

// Draft is a saved in-progress application to one project. At most one draft
// exists per (student, projectId) pair; UpsertDraft enforces that.
type Draft struct {
	ProjectID              string   `json:"projectId"`
	ProjectName            string   `json:"projectName"`
	ProjectDescription     string   `json:"projectDescription"`
	ReasonToDoProject      string   `json:"reason_to_do_project"`
	CurrentCGPA            string   `json:"current_cgpa"`
	PrerequisitesFulfilled []string `json:"pre_requisites_fulfilled"`
}

// UpsertDraft replaces the draft with the same projectId in place, preserving
// its position, or appends when no draft for that project exists yet.
func (s *Student) UpsertDraft(draft Draft) {
	for i := range s.Drafts {
		if s.Drafts[i].ProjectID == draft.ProjectID {
			s.Drafts[i] = draft
			return
		}
	}
	s.Drafts = append(s.Drafts, draft)
}

// DraftFor returns the draft saved against projectId, or nil when the student
// has not drafted an application for that project.
func (s *Student) DraftFor(projectID string) *Draft {
	for i := range s.Drafts {
		if s.Drafts[i].ProjectID == projectID {
			return &s.Drafts[i]
		}
	}
	return nil
}
