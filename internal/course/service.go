package course

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/coursegen/internal/apperr"
	"github.com/saulo-duarte/coursegen/internal/config"
	"github.com/saulo-duarte/coursegen/internal/enrichment"
	"github.com/saulo-duarte/coursegen/internal/generator"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrTopicRequired    = apperr.Validation("topic is required")
	ErrCourseNotFound   = apperr.NotFound("Course not found")
	ErrChapterNotFound  = apperr.NotFound("Chapter not found")
	ErrSubtopicNotFound = apperr.NotFound("Subtopic not found")
)

// ProgressSeeder creates the zeroed progress record inside the course-creation transaction.
type ProgressSeeder interface {
	Seed(ctx context.Context, tx *gorm.DB, userID, courseID uuid.UUID) error
}

type Service interface {
	Generate(ctx context.Context, userID uuid.UUID, dto GenerateCourseDTO) (*Course, error)
	List(ctx context.Context, userID uuid.UUID) ([]Course, error)
	Get(ctx context.Context, userID, courseID uuid.UUID) (*Course, error)
	GenerateSubtopicContent(ctx context.Context, userID, courseID, subtopicID uuid.UUID) (*SubtopicContentResponse, error)
	// RequireSubtopic fails unless the caller owns the course and it contains the subtopic.
	RequireSubtopic(ctx context.Context, userID, courseID, subtopicID uuid.UUID) error
}

type service struct {
	db       *gorm.DB
	repo     Repository
	gen      generator.Generator
	searcher enrichment.Searcher
	seeder   ProgressSeeder
}

func NewService(db *gorm.DB, repo Repository, gen generator.Generator, searcher enrichment.Searcher, seeder ProgressSeeder) Service {
	return &service{
		db:       db,
		repo:     repo,
		gen:      gen,
		searcher: searcher,
		seeder:   seeder,
	}
}

func (s *service) Generate(ctx context.Context, userID uuid.UUID, dto GenerateCourseDTO) (*Course, error) {
	topic := strings.TrimSpace(dto.Topic)
	if topic == "" {
		return nil, ErrTopicRequired
	}
	log := config.WithContext(ctx).WithFields(logrus.Fields{"user_id": userID, "topic": topic})
	log.Info("Generating course")

	outline, err := s.gen.CourseOutline(ctx, topic)
	if err != nil {
		return nil, err
	}

	var (
		roadmap   string
		resources enrichment.Resources
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := s.gen.Roadmap(gctx, topic, outline)
		roadmap = r
		return err
	})
	g.Go(func() error {
		resources = s.enrich(gctx, topic, enrichment.DefaultCourseVideos, enrichment.DefaultCourseArticles)
		return nil
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Roadmap generation failed")
		return nil, err
	}

	course := assemble(userID, topic, outline, roadmap, resources)

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, course); err != nil {
			return err
		}
		return s.seeder.Seed(ctx, tx, userID, course.ID)
	})
	if err != nil {
		log.WithError(err).Error("Failed to persist course")
		return nil, err
	}

	log.WithField("course_id", course.ID).Infof("Course generated with %d chapters", len(outline.Chapters))
	return course, nil
}

func assemble(userID uuid.UUID, topic string, outline *generator.Outline, roadmap string, resources enrichment.Resources) *Course {
	chapters := make([]Chapter, 0, len(outline.Chapters))
	for _, oc := range outline.Chapters {
		ch := Chapter{
			ID:        uuid.New(),
			Title:     oc.Title,
			Summary:   oc.Summary,
			Subtopics: make([]Subtopic, 0, len(oc.Subtopics)),
		}
		for _, sub := range oc.Subtopics {
			minutes := int(sub.EstimatedTime)
			if minutes < 0 {
				minutes = 0
			}
			ch.Subtopics = append(ch.Subtopics, Subtopic{
				ID:            uuid.New(),
				Title:         sub.Title,
				EstimatedTime: minutes,
				Difficulty:    ParseDifficulty(sub.Difficulty),
				Videos:        []enrichment.Video{},
				Articles:      []enrichment.Article{},
			})
		}
		chapters = append(chapters, ch)
	}

	glossary := make([]GlossaryTerm, 0, len(outline.Glossary))
	for _, g := range outline.Glossary {
		if strings.TrimSpace(g.Term) == "" {
			continue
		}
		glossary = append(glossary, GlossaryTerm{Term: g.Term, Definition: g.Definition})
	}

	now := time.Now().UTC()
	c := &Course{
		ID:          uuid.New(),
		UserID:      userID,
		Topic:       topic,
		Title:       outline.Title,
		Description: outline.Description,
		Chapters:    datatypes.NewJSONType(chapters),
		Glossary:    datatypes.NewJSONType(glossary),
		Resources:   datatypes.NewJSONType(resources),
		Metadata:    datatypes.NewJSONType(ComputeMetadata(chapters)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if roadmap != "" {
		c.Roadmap = &roadmap
	}
	return c
}

// enrich runs both searches concurrently; neither can fail.
func (s *service) enrich(ctx context.Context, query string, videos, articles int) enrichment.Resources {
	var res enrichment.Resources
	var g errgroup.Group
	g.Go(func() error {
		res.Videos = s.searcher.SearchVideos(ctx, query, videos)
		return nil
	})
	g.Go(func() error {
		res.Articles = s.searcher.SearchArticles(ctx, query, articles)
		return nil
	})
	_ = g.Wait()

	if res.Videos == nil {
		res.Videos = []enrichment.Video{}
	}
	if res.Articles == nil {
		res.Articles = []enrichment.Article{}
	}
	return res
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]Course, error) {
	courses, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list courses")
		return nil, err
	}
	if courses == nil {
		courses = []Course{}
	}
	return courses, nil
}

// Get hides courses owned by someone else behind NotFound.
func (s *service) Get(ctx context.Context, userID, courseID uuid.UUID) (*Course, error) {
	c, err := s.repo.GetByID(ctx, courseID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load course")
		return nil, err
	}
	if c == nil || c.UserID != userID {
		return nil, ErrCourseNotFound
	}
	return c, nil
}

func (s *service) RequireSubtopic(ctx context.Context, userID, courseID, subtopicID uuid.UUID) error {
	c, err := s.Get(ctx, userID, courseID)
	if err != nil {
		return err
	}
	if _, _, ok := LocateSubtopic(c.ChapterList(), subtopicID); !ok {
		return ErrSubtopicNotFound
	}
	return nil
}

func (s *service) GenerateSubtopicContent(ctx context.Context, userID, courseID, subtopicID uuid.UUID) (*SubtopicContentResponse, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{"course_id": courseID, "subtopic_id": subtopicID})

	c, err := s.Get(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	chapters := c.ChapterList()
	ci, si, ok := LocateSubtopic(chapters, subtopicID)
	if !ok {
		return nil, ErrSubtopicNotFound
	}
	chapter := chapters[ci]
	st := &chapters[ci].Subtopics[si]

	var (
		content   string
		resources enrichment.Resources
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := s.gen.SubtopicContent(gctx, generator.LessonRequest{
			Topic:         c.Topic,
			ChapterTitle:  chapter.Title,
			SubtopicTitle: st.Title,
			Difficulty:    string(st.Difficulty),
			EstimatedTime: st.EstimatedTime,
		})
		content = text
		return err
	})
	g.Go(func() error {
		resources = s.enrich(gctx, c.Topic+" "+st.Title, enrichment.DefaultTopicVideos, enrichment.DefaultTopicArticles)
		return nil
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Subtopic content generation failed")
		return nil, err
	}

	// The course may have changed during generation; splice into the current chapters.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		current, err := repo.GetByID(ctx, c.ID)
		if err != nil {
			return err
		}
		if current == nil {
			return ErrCourseNotFound
		}
		latest := current.ChapterList()
		ci, si, ok := LocateSubtopic(latest, subtopicID)
		if !ok {
			return ErrSubtopicNotFound
		}
		sub := &latest[ci].Subtopics[si]
		sub.Content = &content
		sub.Videos = resources.Videos
		sub.Articles = resources.Articles
		return repo.UpdateChapters(ctx, c.ID, latest)
	})
	if err != nil {
		log.WithError(err).Error("Failed to store subtopic content")
		return nil, err
	}
	s.repo.Invalidate(ctx, c.ID)

	return &SubtopicContentResponse{
		Content:    content,
		SubtopicID: subtopicID,
		Videos:     resources.Videos,
		Articles:   resources.Articles,
	}, nil
}
