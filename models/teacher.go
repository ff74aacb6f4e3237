package models

import "github.com/google/uuid"

// Teacher is the profile record provisioned on first teacher sign-in. UserID is
// the opaque identifier issued by the OAuth provider.
type Teacher struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;not null"`
	UserID     string    `json:"userId" gorm:"type:text;not null;uniqueIndex:idx_teacher_user_id"`
	Name       string    `json:"name" gorm:"type:text;not null"`
	Block      string    `json:"block" gorm:"type:text"`
	RoomNumber string    `json:"roomNumber" gorm:"type:text"`
	Department string    `json:"department" gorm:"type:text"`
}
