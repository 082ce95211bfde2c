package generator

import (
	"context"
	"errors"
	"strings"

	"github.com/saulo-duarte/coursegen/internal/apperr"
	"github.com/saulo-duarte/coursegen/internal/config"
)

const (
	msgGeneration  = "failed to generate content"
	msgCourseParse = "failed to parse course structure from AI response"
	msgQuizParse   = "failed to parse quiz from AI response"
)

var (
	ErrNoChapters       = errors.New("outline contains no chapters")
	ErrNoValidQuestions = errors.New("quiz contains no valid questions")
)

type Generator interface {
	CourseOutline(ctx context.Context, topic string) (*Outline, error)
	Roadmap(ctx context.Context, topic string, outline *Outline) (string, error)
	SubtopicContent(ctx context.Context, req LessonRequest) (string, error)
	ChapterQuiz(ctx context.Context, req ChapterQuizRequest) ([]QuestionDraft, error)
	FinalQuiz(ctx context.Context, req FinalQuizRequest) ([]QuestionDraft, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Generator {
	return &service{provider: provider}
}

func (s *service) generate(ctx context.Context, user string) (string, error) {
	text, err := s.provider.Generate(ctx, SystemPrompt, user)
	if err != nil {
		return "", apperr.Generation(msgGeneration, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", apperr.Generation(msgGeneration, ErrEmptyResponse)
	}
	return text, nil
}

func (s *service) CourseOutline(ctx context.Context, topic string) (*Outline, error) {
	log := config.WithContext(ctx).WithField("topic", topic)

	text, err := s.generate(ctx, BuildOutlinePrompt(topic))
	if err != nil {
		return nil, err
	}

	var outline Outline
	if err := ExtractJSON(text, &outline); err != nil {
		log.WithError(err).Error("Failed to parse course outline")
		return nil, apperr.Generation(msgCourseParse, err)
	}
	if len(outline.Chapters) == 0 {
		log.Error("Course outline has no chapters")
		return nil, apperr.Generation(msgCourseParse, ErrNoChapters)
	}

	log.Infof("Generated outline with %d chapters", len(outline.Chapters))
	return &outline, nil
}

func (s *service) Roadmap(ctx context.Context, topic string, outline *Outline) (string, error) {
	text, err := s.generate(ctx, BuildRoadmapPrompt(topic, outline))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (s *service) SubtopicContent(ctx context.Context, req LessonRequest) (string, error) {
	return s.generate(ctx, BuildLessonPrompt(req))
}

func (s *service) ChapterQuiz(ctx context.Context, req ChapterQuizRequest) ([]QuestionDraft, error) {
	return s.quiz(ctx, BuildChapterQuizPrompt(req))
}

func (s *service) FinalQuiz(ctx context.Context, req FinalQuizRequest) ([]QuestionDraft, error) {
	return s.quiz(ctx, BuildFinalQuizPrompt(req))
}

func (s *service) quiz(ctx context.Context, prompt string) ([]QuestionDraft, error) {
	log := config.WithContext(ctx)

	text, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var payload quizPayload
	if err := ExtractJSON(text, &payload); err != nil {
		log.WithError(err).Error("Failed to parse quiz")
		return nil, apperr.Malformed(msgQuizParse, err)
	}

	valid := make([]QuestionDraft, 0, len(payload.Questions))
	for _, q := range payload.Questions {
		if q.Valid() {
			valid = append(valid, q)
		}
	}
	if dropped := len(payload.Questions) - len(valid); dropped > 0 {
		log.Warnf("Dropped %d invalid quiz questions", dropped)
	}
	if len(valid) == 0 {
		return nil, apperr.Malformed(msgQuizParse, ErrNoValidQuestions)
	}
	return valid, nil
}

// Valid reports whether the question has text, at least two options and an in-range answer.
func (q QuestionDraft) Valid() bool {
	if strings.TrimSpace(q.Question) == "" || len(q.Options) < 2 {
		return false
	}
	idx := int(q.CorrectAnswer)
	return idx >= 0 && idx < len(q.Options)
}
