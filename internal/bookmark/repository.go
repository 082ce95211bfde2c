package bookmark

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, b *Bookmark) error
	FindAllByUserID(ctx context.Context, userID uuid.UUID, courseID *uuid.UUID) ([]Bookmark, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, b *Bookmark) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) FindAllByUserID(ctx context.Context, userID uuid.UUID, courseID *uuid.UUID) ([]Bookmark, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if courseID != nil {
		q = q.Where("course_id = ?", *courseID)
	}

	bookmarks := []Bookmark{}
	if err := q.Order("created_at ASC").Find(&bookmarks).Error; err != nil {
		return nil, err
	}
	return bookmarks, nil
}
