package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Kind string

const (
	KindChapter Kind = "chapter"
	KindFinal   Kind = "final"
)

const PassingScore = 60

// Quiz holds one current question set per (course, chapter) pair; a nil ChapterID is the final quiz.
type Quiz struct {
	ID        uuid.UUID                      `gorm:"type:uuid;primaryKey" json:"id"`
	CourseID  uuid.UUID                      `gorm:"type:uuid;not null;index:idx_quiz_key" json:"course_id"`
	ChapterID *uuid.UUID                     `gorm:"type:uuid;index:idx_quiz_key" json:"chapter_id"`
	Kind      Kind                           `gorm:"type:text;not null" json:"kind"`
	Questions datatypes.JSONType[[]Question] `gorm:"not null" json:"questions"`
	CreatedAt time.Time                      `json:"created_at"`
}

type Question struct {
	ID            uuid.UUID `json:"id"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer int       `json:"correct_answer"`
	Explanation   string    `json:"explanation"`
}

func (q *Quiz) QuestionList() []Question {
	return q.Questions.Data()
}
