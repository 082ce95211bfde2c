package course

import (
	"github.com/google/uuid"
	"github.com/saulo-duarte/coursegen/internal/enrichment"
)

type GenerateCourseDTO struct {
	Topic string `json:"topic" validate:"required"`
}

type SubtopicContentResponse struct {
	Content    string               `json:"content"`
	SubtopicID uuid.UUID            `json:"subtopic_id"`
	Videos     []enrichment.Video   `json:"videos"`
	Articles   []enrichment.Article `json:"articles"`
}
