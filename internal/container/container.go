package container

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/coursegen/internal/auth"
	"github.com/saulo-duarte/coursegen/internal/bookmark"
	"github.com/saulo-duarte/coursegen/internal/cache"
	"github.com/saulo-duarte/coursegen/internal/config"
	"github.com/saulo-duarte/coursegen/internal/course"
	"github.com/saulo-duarte/coursegen/internal/dashboard"
	"github.com/saulo-duarte/coursegen/internal/enrichment"
	"github.com/saulo-duarte/coursegen/internal/generator"
	"github.com/saulo-duarte/coursegen/internal/note"
	"github.com/saulo-duarte/coursegen/internal/progress"
	"github.com/saulo-duarte/coursegen/internal/quiz"
	"github.com/saulo-duarte/coursegen/internal/router"
	"github.com/saulo-duarte/coursegen/internal/user"
	"gorm.io/gorm"
)

type Container struct {
	Settings *config.Settings
	DB       *gorm.DB
	Cache    cache.Store

	UserContainer      *user.UserContainer
	CourseContainer    *course.CourseContainer
	ProgressContainer  *progress.ProgressContainer
	QuizContainer      *quiz.QuizContainer
	DashboardContainer *dashboard.DashboardContainer
	NoteContainer      *note.NoteContainer
	BookmarkContainer  *bookmark.BookmarkContainer
}

func New(ctx context.Context) (*Container, error) {
	settings := config.Load()
	config.Init()
	auth.Init()

	if err := config.Connect(ctx, settings.DatabaseDriver, settings.DatabaseDSN); err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	if err := Migrate(config.DB); err != nil {
		return nil, fmt.Errorf("failed to migrate DB: %w", err)
	}

	c := Build(ctx, settings, config.DB, newProvider(ctx, settings), enrichment.NewFromSettings(ctx, settings), newCache(ctx, settings))
	return c, nil
}

// Build wires every feature on top of already opened infrastructure. store may be nil.
func Build(
	ctx context.Context,
	settings *config.Settings,
	db *gorm.DB,
	provider generator.Provider,
	searcher enrichment.Searcher,
	store cache.Store,
) *Container {
	gen := generator.NewService(provider)
	secure := settings.IsProduction()

	userContainer := user.NewUserContainer(db, settings.BcryptCost, secure)
	courseContainer := course.NewCourseContainer(db, gen, searcher, progress.NewSeeder(), store, settings.CourseCacheTTL)
	progressContainer := progress.NewProgressContainer(db, courseContainer.Repo)
	quizContainer := quiz.NewQuizContainer(db, courseContainer, progressContainer.Service, gen)
	dashboardContainer := dashboard.NewDashboardContainer(courseContainer.Service, progressContainer.Service)
	noteContainer := note.NewNoteContainer(db, courseContainer.Service)
	bookmarkContainer := bookmark.NewBookmarkContainer(db, courseContainer.Service)

	config.WithContext(ctx).WithField("cache", store != nil).Info("Application container ready")

	return &Container{
		Settings:           settings,
		DB:                 db,
		Cache:              store,
		UserContainer:      userContainer,
		CourseContainer:    courseContainer,
		ProgressContainer:  progressContainer,
		QuizContainer:      quizContainer,
		DashboardContainer: dashboardContainer,
		NoteContainer:      noteContainer,
		BookmarkContainer:  bookmarkContainer,
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&course.Course{},
		&quiz.Quiz{},
		&progress.UserProgress{},
		&note.Note{},
		&bookmark.Bookmark{},
	)
}

func (c *Container) Router() *router.RouterConfig {
	return &router.RouterConfig{
		UserHandler:      c.UserContainer.Handler,
		CourseHandler:    c.CourseContainer.Handler,
		QuizHandler:      c.QuizContainer.Handler,
		ProgressHandler:  c.ProgressContainer.Handler,
		DashboardHandler: c.DashboardContainer.Handler,
		NoteHandler:      c.NoteContainer.Handler,
		BookmarkHandler:  c.BookmarkContainer.Handler,
		AllowedOrigins:   c.Settings.AllowedOrigins,
		SecureCookies:    c.Settings.IsProduction(),
	}
}

// Close releases the cache and database connections.
func (c *Container) Close() error {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			config.Logger.WithError(err).Warn("Failed to close cache")
		}
	}
	if c.DB == nil {
		return nil
	}
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func newProvider(ctx context.Context, s *config.Settings) generator.Provider {
	log := config.WithContext(ctx)
	if s.GeminiAPIKey == "" {
		log.Warn("GEMINI_API_KEY not set, course generation disabled")
		return generator.NewUnavailableProvider()
	}
	p, err := generator.NewGeminiProvider(ctx, s.GeminiAPIKey, s.GeminiModel, s.GeminiMaxTokens)
	if err != nil {
		log.WithError(err).Error("Failed to create Gemini client, course generation disabled")
		return generator.NewUnavailableProvider()
	}
	return p
}

func newCache(ctx context.Context, s *config.Settings) cache.Store {
	if s.RedisURL == "" {
		return nil
	}
	store, err := cache.NewRedisStore(ctx, s.RedisURL, "coursegen:")
	if err != nil {
		config.WithContext(ctx).WithError(err).Warn("Redis unavailable, course cache disabled")
		return nil
	}
	return store
}
