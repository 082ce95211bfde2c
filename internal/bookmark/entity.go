package bookmark

import (
	"time"

	"github.com/google/uuid"
)

type Bookmark struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CourseID   uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	SubtopicID uuid.UUID `gorm:"type:uuid;not null" json:"subtopic_id"`
	CreatedAt  time.Time `json:"created_at"`
}
