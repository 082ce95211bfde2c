package bookmark

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/coursegen/internal/config"
	"github.com/saulo-duarte/coursegen/internal/course"
	"github.com/sirupsen/logrus"
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateBookmarkDTO) (*Bookmark, error)
	List(ctx context.Context, userID uuid.UUID, courseID *uuid.UUID) ([]Bookmark, error)
}

type service struct {
	repo    Repository
	courses course.Service
}

func NewService(repo Repository, courses course.Service) Service {
	return &service{repo: repo, courses: courses}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateBookmarkDTO) (*Bookmark, error) {
	if err := s.courses.RequireSubtopic(ctx, userID, dto.CourseID, dto.SubtopicID); err != nil {
		return nil, err
	}

	b := &Bookmark{
		ID:         uuid.New(),
		UserID:     userID,
		CourseID:   dto.CourseID,
		SubtopicID: dto.SubtopicID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, b); err != nil {
		config.WithContext(ctx).WithFields(logrus.Fields{
			"course_id":   dto.CourseID,
			"subtopic_id": dto.SubtopicID,
		}).WithError(err).Error("Failed to create bookmark")
		return nil, err
	}
	return b, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID, courseID *uuid.UUID) ([]Bookmark, error) {
	return s.repo.FindAllByUserID(ctx, userID, courseID)
}
