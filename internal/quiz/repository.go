package quiz

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository interface {
	// Replace deletes the current quiz for q's (course, chapter) key and inserts q.
	Replace(ctx context.Context, q *Quiz) error
	GetByID(ctx context.Context, id uuid.UUID) (*Quiz, error)
	GetCurrent(ctx context.Context, courseID uuid.UUID, chapterID *uuid.UUID) (*Quiz, error)
	WithTx(tx *gorm.DB) QuizRepository
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) WithTx(tx *gorm.DB) QuizRepository {
	return &quizRepository{db: tx}
}

func keyScope(courseID uuid.UUID, chapterID *uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("course_id = ?", courseID)
		if chapterID == nil {
			return db.Where("chapter_id IS NULL")
		}
		return db.Where("chapter_id = ?", *chapterID)
	}
}

func (r *quizRepository) Replace(ctx context.Context, q *Quiz) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(keyScope(q.CourseID, q.ChapterID)).Delete(&Quiz{}).Error; err != nil {
			return err
		}
		return tx.Create(q).Error
	})
}

// GetByID returns nil, nil when no quiz matches.
func (r *quizRepository) GetByID(ctx context.Context, id uuid.UUID) (*Quiz, error) {
	var q Quiz
	if err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *quizRepository) GetCurrent(ctx context.Context, courseID uuid.UUID, chapterID *uuid.UUID) (*Quiz, error) {
	var q Quiz
	err := r.db.WithContext(ctx).
		Scopes(keyScope(courseID, chapterID)).
		Order("created_at DESC").
		First(&q).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}
