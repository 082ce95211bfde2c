package note

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, n *Note) error
	FindAllByUserID(ctx context.Context, userID uuid.UUID, courseID *uuid.UUID) ([]Note, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *Note) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) FindAllByUserID(ctx context.Context, userID uuid.UUID, courseID *uuid.UUID) ([]Note, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if courseID != nil {
		q = q.Where("course_id = ?", *courseID)
	}

	notes := []Note{}
	if err := q.Order("created_at ASC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}
