package progress

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, p *UserProgress) error
	GetByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*UserProgress, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]UserProgress, error)
	Save(ctx context.Context, p *UserProgress) error
	WithTx(tx *gorm.DB) Repository
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, p *UserProgress) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// GetByUserAndCourse returns nil, nil when the pair has no record yet.
func (r *repository) GetByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*UserProgress, error) {
	var p UserProgress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]UserProgress, error) {
	var records []UserProgress
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository) Save(ctx context.Context, p *UserProgress) error {
	return r.db.WithContext(ctx).Save(p).Error
}
