package course

import (
	"time"

	"github.com/saulo-duarte/coursegen/internal/cache"
	"github.com/saulo-duarte/coursegen/internal/enrichment"
	"github.com/saulo-duarte/coursegen/internal/generator"
	"gorm.io/gorm"
)

type CourseContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

// NewCourseContainer wires the course feature. store may be nil, which disables caching.
func NewCourseContainer(
	db *gorm.DB,
	gen generator.Generator,
	searcher enrichment.Searcher,
	seeder ProgressSeeder,
	store cache.Store,
	cacheTTL time.Duration,
) *CourseContainer {
	repo := NewRepository(db)
	if store != nil {
		repo = NewCachedRepository(repo, store, cacheTTL)
	}
	service := NewService(db, repo, gen, searcher, seeder)
	handler := NewHandler(service)

	return &CourseContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
