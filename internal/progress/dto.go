package progress

import "github.com/google/uuid"

type UpdateProgressDTO struct {
	CourseID   uuid.UUID  `json:"course_id" validate:"required"`
	ChapterID  *uuid.UUID `json:"chapter_id,omitempty"`
	SubtopicID *uuid.UUID `json:"subtopic_id,omitempty"`
	StudyTime  int        `json:"study_time" validate:"gte=0"`
}
