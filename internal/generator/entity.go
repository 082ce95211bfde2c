package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type Outline struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Chapters    []OutlineChapter `json:"chapters"`
	Glossary    []GlossaryEntry  `json:"glossary"`
}

type OutlineChapter struct {
	Title     string            `json:"title"`
	Summary   string            `json:"summary"`
	Subtopics []OutlineSubtopic `json:"subtopics"`
}

type OutlineSubtopic struct {
	Title         string  `json:"title"`
	EstimatedTime Minutes `json:"estimated_time"`
	Difficulty    string  `json:"difficulty"`
}

type GlossaryEntry struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

type QuestionDraft struct {
	Question      string      `json:"question"`
	Options       []string    `json:"options"`
	CorrectAnswer AnswerIndex `json:"correct_answer"`
	Explanation   string      `json:"explanation"`
}

type quizPayload struct {
	Questions []QuestionDraft `json:"questions"`
}

type LessonRequest struct {
	Topic         string
	ChapterTitle  string
	SubtopicTitle string
	Difficulty    string
	EstimatedTime int
}

type ChapterQuizRequest struct {
	Topic        string
	ChapterTitle string
	Subtopics    []string
}

type FinalQuizRequest struct {
	Topic       string
	CourseTitle string
	Chapters    []string
}

// Minutes accepts 15, 15.0, "15" and "15 minutes".
type Minutes int

func (m *Minutes) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*m = Minutes(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("estimated_time: %w", err)
	}
	fields := strings.Fields(s)
	if len(fields) == 0 {
		*m = 0
		return nil
	}
	v, err := strconv.Atoi(fields[0])
	if err != nil {
		return fmt.Errorf("estimated_time %q is not a number", s)
	}
	*m = Minutes(v)
	return nil
}

// AnswerIndex accepts a zero-based index, its string form, or an option letter ("A".."Z").
type AnswerIndex int

func (a *AnswerIndex) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*a = AnswerIndex(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("correct_answer: %w", err)
	}
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		*a = AnswerIndex(v)
		return nil
	}
	if len(s) >= 1 {
		c := strings.ToUpper(s[:1])[0]
		if c >= 'A' && c <= 'Z' {
			*a = AnswerIndex(c - 'A')
			return nil
		}
	}
	return fmt.Errorf("correct_answer %q is not an option index", s)
}
