package course

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Create(ctx context.Context, c *Course) error
	GetByID(ctx context.Context, id uuid.UUID) (*Course, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Course, error)
	UpdateChapters(ctx context.Context, id uuid.UUID, chapters []Chapter) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	WithTx(tx *gorm.DB) Repository
	// Invalidate drops any cached copy of the course. Call it once a transaction that wrote
	// the course has committed.
	Invalidate(ctx context.Context, id uuid.UUID)
}

type repository struct {
	db *gorm.DB
	// locking is set on transaction-scoped repositories so reads take a row lock.
	locking bool
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx, locking: true}
}

func (r *repository) Invalidate(context.Context, uuid.UUID) {}

func (r *repository) Create(ctx context.Context, c *Course) error {
	return r.db.WithContext(ctx).Create(c).Error
}

// GetByID returns nil, nil when no course matches.
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Course, error) {
	q := r.db.WithContext(ctx)
	if r.locking {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var c Course
	if err := q.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Course, error) {
	var courses []Course
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// UpdateChapters replaces the whole chapters document and bumps updated_at.
func (r *repository) UpdateChapters(ctx context.Context, id uuid.UUID, chapters []Chapter) error {
	return r.Update(ctx, id, map[string]interface{}{
		"chapters": datatypes.NewJSONType(chapters),
	})
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	if _, ok := fields["updated_at"]; !ok {
		fields["updated_at"] = time.Now().UTC()
	}
	return r.db.WithContext(ctx).
		Model(&Course{}).
		Where("id = ?", id).
		Updates(fields).Error
}
