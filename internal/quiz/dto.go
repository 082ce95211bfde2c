package quiz

import "github.com/google/uuid"

type SubmitQuizDTO struct {
	QuizID  uuid.UUID `json:"quiz_id" validate:"required"`
	Answers []int     `json:"answers" validate:"required"`
}

type QuestionResult struct {
	QuestionID    uuid.UUID `json:"question_id"`
	Selected      *int      `json:"selected"`
	CorrectAnswer int       `json:"correct_answer"`
	IsCorrect     bool      `json:"is_correct"`
	Explanation   string    `json:"explanation"`
}

type SubmitResult struct {
	QuizID         uuid.UUID        `json:"quiz_id"`
	Score          int              `json:"score"`
	CorrectAnswers int              `json:"correct_answers"`
	TotalQuestions int              `json:"total_questions"`
	Passed         bool             `json:"passed"`
	Results        []QuestionResult `json:"results"`
}
