package note

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/coursegen/internal/apperr"
	"github.com/saulo-duarte/coursegen/internal/config"
	"github.com/saulo-duarte/coursegen/internal/course"
)

var ErrEmptyContent = apperr.Validation("content is required")

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateNoteDTO) (*NoteResponse, error)
	List(ctx context.Context, userID uuid.UUID, courseID *uuid.UUID) ([]NoteResponse, error)
}

type service struct {
	repo    Repository
	courses course.Service
}

func NewService(repo Repository, courses course.Service) Service {
	return &service{repo: repo, courses: courses}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateNoteDTO) (*NoteResponse, error) {
	if strings.TrimSpace(dto.Content) == "" {
		return nil, ErrEmptyContent
	}
	if err := s.courses.RequireSubtopic(ctx, userID, dto.CourseID, dto.SubtopicID); err != nil {
		return nil, err
	}

	n := Note{
		ID:         uuid.New(),
		UserID:     userID,
		CourseID:   dto.CourseID,
		SubtopicID: dto.SubtopicID,
		Content:    dto.Content,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, &n); err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to create note")
		return nil, err
	}

	return toResponse(&n), nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID, courseID *uuid.UUID) ([]NoteResponse, error) {
	notes, err := s.repo.FindAllByUserID(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	responses := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		responses = append(responses, *toResponse(&notes[i]))
	}
	return responses, nil
}

func toResponse(n *Note) *NoteResponse {
	return &NoteResponse{
		ID:         n.ID,
		UserID:     n.UserID,
		CourseID:   n.CourseID,
		SubtopicID: n.SubtopicID,
		Content:    n.Content,
		CreatedAt:  n.CreatedAt,
	}
}
