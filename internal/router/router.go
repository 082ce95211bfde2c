package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/coursegen/internal/auth"
	"github.com/saulo-duarte/coursegen/internal/bookmark"
	"github.com/saulo-duarte/coursegen/internal/config"
	"github.com/saulo-duarte/coursegen/internal/course"
	"github.com/saulo-duarte/coursegen/internal/dashboard"
	"github.com/saulo-duarte/coursegen/internal/middlewares"
	"github.com/saulo-duarte/coursegen/internal/note"
	"github.com/saulo-duarte/coursegen/internal/progress"
	"github.com/saulo-duarte/coursegen/internal/quiz"
	"github.com/saulo-duarte/coursegen/internal/user"
)

type RouterConfig struct {
	UserHandler      *user.Handler
	CourseHandler    *course.Handler
	QuizHandler      *quiz.Handler
	ProgressHandler  *progress.Handler
	DashboardHandler *dashboard.Handler
	NoteHandler      *note.Handler
	BookmarkHandler  *bookmark.Handler

	AllowedOrigins []string
	SecureCookies  bool
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		config.ErrorJSON(w, http.StatusNotFound, "Not Found")
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			config.JSON(w, http.StatusOK, map[string]string{"message": "AI Course Generator API"})
		})
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			config.JSON(w, http.StatusOK, map[string]string{"status": "healthy"})
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/logout", auth.NewHandler(cfg.SecureCookies).Logout)
			r.Mount("/", user.Routes(cfg.UserHandler))
		})

		r.Mount("/courses", course.Routes(
			cfg.CourseHandler,
			quiz.CourseRoutes(cfg.QuizHandler),
			progress.CourseRoutes(cfg.ProgressHandler),
		))
		r.Mount("/quiz", quiz.Routes(cfg.QuizHandler))
		r.Mount("/progress", progress.Routes(cfg.ProgressHandler))
		r.Mount("/dashboard", dashboard.Routes(cfg.DashboardHandler))
		r.Mount("/notes", note.Routes(cfg.NoteHandler))
		r.Mount("/bookmarks", bookmark.Routes(cfg.BookmarkHandler))
	})

	return r
}
