package progress

import (
	"github.com/saulo-duarte/coursegen/internal/course"
	"gorm.io/gorm"
)

type ProgressContainer struct {
	Handler *Handler
	Service Service
}

func NewProgressContainer(db *gorm.DB, courses course.Repository) *ProgressContainer {
	repo := NewRepository(db)
	service := NewService(db, repo, courses)
	handler := NewHandler(service)

	return &ProgressContainer{
		Handler: handler,
		Service: service,
	}
}
