package course

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/coursegen/internal/enrichment"
	"gorm.io/datatypes"
)

// Course is stored as one row; chapters and the other embedded parts are JSON document columns.
type Course struct {
	ID          uuid.UUID                                `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID                                `gorm:"type:uuid;not null;index" json:"user_id"`
	Topic       string                                   `gorm:"type:text;not null" json:"topic"`
	Title       string                                   `gorm:"type:text;not null" json:"title"`
	Description string                                   `gorm:"type:text" json:"description"`
	Chapters    datatypes.JSONType[[]Chapter]            `gorm:"not null" json:"chapters"`
	Roadmap     *string                                  `gorm:"type:text" json:"roadmap,omitempty"`
	FinalQuizID *uuid.UUID                               `gorm:"type:uuid" json:"final_quiz_id,omitempty"`
	Glossary    datatypes.JSONType[[]GlossaryTerm]       `json:"glossary"`
	Resources   datatypes.JSONType[enrichment.Resources] `json:"resources"`
	Metadata    datatypes.JSONType[Metadata]             `json:"metadata"`
	CreatedAt   time.Time                                `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time                                `json:"updated_at"`
	CompletedAt *time.Time                               `json:"completed_at,omitempty"`
}

type Chapter struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Summary       string     `json:"summary"`
	Subtopics     []Subtopic `json:"subtopics"`
	Completed     bool       `json:"completed"`
	QuizCompleted bool       `json:"quiz_completed"`
	QuizScore     *int       `json:"quiz_score"`
}

type Subtopic struct {
	ID            uuid.UUID            `json:"id"`
	Title         string               `json:"title"`
	EstimatedTime int                  `json:"estimated_time"`
	Difficulty    Difficulty           `json:"difficulty"`
	Content       *string              `json:"content"`
	Completed     bool                 `json:"completed"`
	Videos        []enrichment.Video   `json:"videos"`
	Articles      []enrichment.Article `json:"articles"`
}

type GlossaryTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

type Metadata struct {
	TotalDuration          int                `json:"total_duration"`
	DifficultyDistribution map[Difficulty]int `json:"difficulty_distribution"`
	TotalChapters          int                `json:"total_chapters"`
	TotalSubtopics         int                `json:"total_subtopics"`
}

func (c *Course) ChapterList() []Chapter {
	return c.Chapters.Data()
}

// LocateSubtopic returns the first match scanning chapters then subtopics in order.
func LocateSubtopic(chapters []Chapter, id uuid.UUID) (ci, si int, ok bool) {
	for i := range chapters {
		for j := range chapters[i].Subtopics {
			if chapters[i].Subtopics[j].ID == id {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}

func LocateChapter(chapters []Chapter, id uuid.UUID) (int, bool) {
	for i := range chapters {
		if chapters[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

func CountSubtopics(chapters []Chapter) int {
	n := 0
	for _, ch := range chapters {
		n += len(ch.Subtopics)
	}
	return n
}
