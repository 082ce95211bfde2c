package note

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteDTO struct {
	CourseID   uuid.UUID `json:"course_id" validate:"required"`
	SubtopicID uuid.UUID `json:"subtopic_id" validate:"required"`
	Content    string    `json:"content" validate:"required"`
}

type NoteResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	CourseID   uuid.UUID `json:"course_id"`
	SubtopicID uuid.UUID `json:"subtopic_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}
