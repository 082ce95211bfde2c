package bookmark

import "github.com/google/uuid"

type CreateBookmarkDTO struct {
	CourseID   uuid.UUID `json:"course_id" validate:"required"`
	SubtopicID uuid.UUID `json:"subtopic_id" validate:"required"`
}
