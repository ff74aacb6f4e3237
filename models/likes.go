package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LikesLedger holds the liked-project list for one student. The row is created
// lazily on the first like. Liked entries are not deduplicated on append;
// repeated likes of the same project produce repeated entries, which is the
// behavior the frontend was built against.
type LikesLedger struct {
	ID            uuid.UUID                         `json:"id" gorm:"type:uuid;primaryKey;not null"`
	StudentID     string                            `json:"studentId" gorm:"type:text;not null;uniqueIndex:idx_likes_student_id"`
	LikedProjects datatypes.JSONSlice[LikedProject] `json:"likedProjects" gorm:"type:json"`
}

// LikedProject wraps a single liked project id.
type LikedProject struct {
	ProjectID string `json:"projectId"`
}

// RemoveProject filters out every entry matching projectID, duplicates
// included.
func (l *LikesLedger) RemoveProject(projectID string) {
	kept := l.LikedProjects[:0]
	for _, p := range l.LikedProjects {
		if p.ProjectID != projectID {
			kept = append(kept, p)
		}
	}
	l.LikedProjects = kept
}
