package note

import (
	"github.com/saulo-duarte/coursegen/internal/course"
	"gorm.io/gorm"
)

type NoteContainer struct {
	Handler *Handler
	Service Service
}

func NewNoteContainer(db *gorm.DB, courses course.Service) *NoteContainer {
	repo := NewRepository(db)
	service := NewService(repo, courses)
	handler := NewHandler(service)

	return &NoteContainer{
		Handler: handler,
		Service: service,
	}
}
