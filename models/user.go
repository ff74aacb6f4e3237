package models

import "github.com/google/uuid"

// User is the account record created during OAuth sign-in, before the
// role-specific Teacher or Student profile is provisioned.
type User struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;not null"`
	GoogleID    string    `json:"googleId" gorm:"type:text;not null;uniqueIndex:idx_user_google_id"`
	DisplayName string    `json:"displayName" gorm:"type:text;not null"`
	Email       string    `json:"email" gorm:"type:text;not null"`
	Image       string    `json:"image" gorm:"type:text"`
	UserType    string    `json:"user_type" gorm:"type:text;not null"`
}
