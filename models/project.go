package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project represents a posting created by a teacher. Field names on the wire
// match what the frontend forms submit and render.
type Project struct {
	ID                 uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey;not null"`
	TeacherID          string                      `json:"teacherId" gorm:"type:text;not null;index:idx_project_teacher_id"`
	ProjectName        string                      `json:"project_name" gorm:"type:text;not null"`
	ProjectDescription string                      `json:"project_description" gorm:"type:text;not null"`
	ProjectType        string                      `json:"project_type" gorm:"type:text;not null"`
	ProjectDomain      string                      `json:"project_domain" gorm:"type:text;not null"`
	CGCutoff           string                      `json:"cg_cutoff" gorm:"type:text;not null"`
	Prerequisites      datatypes.JSONSlice[string] `json:"pre_requisites" gorm:"type:json"`
}

// Project types accepted by the frontend form.
const (
	ProjectTypeDesign = "design"
	ProjectTypeLabel  = "label"
	ProjectTypeStudy  = "study"
)
