package quiz

import (
	"github.com/saulo-duarte/coursegen/internal/course"
	"github.com/saulo-duarte/coursegen/internal/generator"
	"github.com/saulo-duarte/coursegen/internal/progress"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Handler *Handler
}

func NewQuizContainer(
	db *gorm.DB,
	courses *course.CourseContainer,
	progressService progress.Service,
	gen generator.Generator,
) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(db, repo, courses.Service, courses.Repo, progressService, gen)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
	}
}
