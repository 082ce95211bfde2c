package dashboard

import (
	"github.com/saulo-duarte/coursegen/internal/course"
	"github.com/saulo-duarte/coursegen/internal/progress"
)

type DashboardContainer struct {
	Handler *Handler
}

func NewDashboardContainer(courses course.Service, progressService progress.Service) *DashboardContainer {
	service := NewService(courses, progressService)
	handler := NewHandler(service)

	return &DashboardContainer{
		Handler: handler,
	}
}
