package progress

import (
	"context"

	"github.com/google/uuid"
	"github.com/saulo-duarte/coursegen/internal/course"
	"gorm.io/gorm"
)

type seeder struct{}

// NewSeeder creates zeroed progress records inside the caller's transaction.
func NewSeeder() course.ProgressSeeder {
	return seeder{}
}

func (seeder) Seed(ctx context.Context, tx *gorm.DB, userID, courseID uuid.UUID) error {
	return NewRepository(tx).Create(ctx, NewRecord(userID, courseID))
}
