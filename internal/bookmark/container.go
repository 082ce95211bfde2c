package bookmark

import (
	"github.com/saulo-duarte/coursegen/internal/course"
	"gorm.io/gorm"
)

type BookmarkContainer struct {
	Handler *Handler
	Service Service
}

func NewBookmarkContainer(db *gorm.DB, courses course.Service) *BookmarkContainer {
	repo := NewRepository(db)
	service := NewService(repo, courses)
	handler := NewHandler(service)

	return &BookmarkContainer{
		Handler: handler,
		Service: service,
	}
}
