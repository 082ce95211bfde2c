package progress

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FinalQuizKey is the quiz_scores key used for the course's final quiz.
const FinalQuizKey = "final"

type UserProgress struct {
	ID                 uuid.UUID                          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID                          `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_course" json:"user_id"`
	CourseID           uuid.UUID                          `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_course" json:"course_id"`
	CompletedChapters  datatypes.JSONType[[]uuid.UUID]    `json:"completed_chapters"`
	CompletedSubtopics datatypes.JSONType[[]uuid.UUID]    `json:"completed_subtopics"`
	QuizScores         datatypes.JSONType[map[string]int] `json:"quiz_scores"`
	TotalProgress      float64                            `gorm:"not null" json:"total_progress"`
	StudyTime          int                                `gorm:"not null" json:"study_time"`
	CurrentChapterID   *uuid.UUID                         `gorm:"type:uuid" json:"current_chapter_id,omitempty"`
	CurrentSubtopicID  *uuid.UUID                         `gorm:"type:uuid" json:"current_subtopic_id,omitempty"`
	LastAccessed       time.Time                          `json:"last_accessed"`
	CompletedAt        *time.Time                         `json:"completed_at,omitempty"`
	CreatedAt          time.Time                          `json:"created_at"`
	UpdatedAt          time.Time                          `json:"updated_at"`
}

// NewRecord returns a zeroed progress record with a fresh id.
func NewRecord(userID, courseID uuid.UUID) *UserProgress {
	now := time.Now().UTC()
	return &UserProgress{
		ID:                 uuid.New(),
		UserID:             userID,
		CourseID:           courseID,
		CompletedChapters:  datatypes.NewJSONType([]uuid.UUID{}),
		CompletedSubtopics: datatypes.NewJSONType([]uuid.UUID{}),
		QuizScores:         datatypes.NewJSONType(map[string]int{}),
		LastAccessed:       now,
	}
}

// Zero stands in for a missing record; it has no id.
func Zero(userID, courseID uuid.UUID) *UserProgress {
	p := NewRecord(userID, courseID)
	p.ID = uuid.Nil
	return p
}

func (p *UserProgress) Scores() map[string]int {
	scores := p.QuizScores.Data()
	if scores == nil {
		scores = map[string]int{}
	}
	return scores
}

func contains(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
