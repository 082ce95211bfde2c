package course_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/saulo-duarte/coursegen/internal/apperr"
	"github.com/saulo-duarte/coursegen/internal/cache"
	"github.com/saulo-duarte/coursegen/internal/config"
	"github.com/saulo-duarte/coursegen/internal/course"
	"github.com/saulo-duarte/coursegen/internal/enrichment"
	"github.com/saulo-duarte/coursegen/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeGenerator struct {
	outline    *generator.Outline
	outlineErr error
	roadmapErr error
	contentErr error
	lessons    []generator.LessonRequest
	mu         sync.Mutex
	// onContent runs while a lesson is being generated.
	onContent func()
}

func (f *fakeGenerator) CourseOutline(context.Context, string) (*generator.Outline, error) {
	return f.outline, f.outlineErr
}

func (f *fakeGenerator) Roadmap(context.Context, string, *generator.Outline) (string, error) {
	if f.roadmapErr != nil {
		return "", f.roadmapErr
	}
	return "# Roadmap", nil
}

func (f *fakeGenerator) SubtopicContent(_ context.Context, req generator.LessonRequest) (string, error) {
	f.mu.Lock()
	f.lessons = append(f.lessons, req)
	f.mu.Unlock()
	if f.onContent != nil {
		f.onContent()
	}
	if f.contentErr != nil {
		return "", f.contentErr
	}
	return "## Lesson on " + req.SubtopicTitle, nil
}

func (f *fakeGenerator) ChapterQuiz(context.Context, generator.ChapterQuizRequest) ([]generator.QuestionDraft, error) {
	return nil, errors.New("not used")
}

func (f *fakeGenerator) FinalQuiz(context.Context, generator.FinalQuizRequest) ([]generator.QuestionDraft, error) {
	return nil, errors.New("not used")
}

type fakeSearcher struct{}

func (fakeSearcher) SearchVideos(_ context.Context, query string, limit int) []enrichment.Video {
	return []enrichment.Video{{Title: query, VideoID: "v1", URL: "https://www.youtube.com/watch?v=v1"}}
}

func (fakeSearcher) SearchArticles(_ context.Context, query string, limit int) []enrichment.Article {
	return []enrichment.Article{{Title: query, URL: "https://go.dev", Source: "go.dev"}}
}

type fakeSeeder struct {
	err   error
	calls int
}

func (f *fakeSeeder) Seed(_ context.Context, tx *gorm.DB, userID, courseID uuid.UUID) error {
	f.calls++
	return f.err
}

func machineLearningOutline() *generator.Outline {
	difficulties := []string{"Beginner", "intermediate", "ADVANCED", "Expert"}
	o := &generator.Outline{
		Title:       "Machine Learning Foundations",
		Description: "From regression to deep learning.",
		Glossary:    []generator.GlossaryEntry{{Term: "Gradient", Definition: "Direction of steepest ascent."}, {Term: " "}},
	}
	for i := 0; i < 10; i++ {
		ch := generator.OutlineChapter{Title: fmt.Sprintf("Chapter %d", i+1), Summary: "Summary"}
		for j := 0; j < 3; j++ {
			ch.Subtopics = append(ch.Subtopics, generator.OutlineSubtopic{
				Title:         fmt.Sprintf("Subtopic %d.%d", i+1, j+1),
				EstimatedTime: generator.Minutes(10 + j*5),
				Difficulty:    difficulties[(i+j)%len(difficulties)],
			})
		}
		o.Chapters = append(o.Chapters, ch)
	}
	return o
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&course.Course{}))
	return db
}

type fixture struct {
	db     *gorm.DB
	repo   course.Repository
	gen    *fakeGenerator
	seeder *fakeSeeder
	svc    course.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	f := &fixture{
		db:     db,
		repo:   course.NewRepository(db),
		gen:    &fakeGenerator{outline: machineLearningOutline()},
		seeder: &fakeSeeder{},
	}
	f.svc = course.NewService(db, f.repo, f.gen, fakeSearcher{}, f.seeder)
	return f
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("BuildsAndPersistsCourse", func(t *testing.T) {
		f := newFixture(t)

		c, err := f.svc.Generate(ctx, owner, course.GenerateCourseDTO{Topic: "  Machine Learning "})
		require.NoError(t, err)
		assert.Equal(t, 1, f.seeder.calls)

		assert.Equal(t, "Machine Learning", c.Topic)
		assert.Equal(t, owner, c.UserID)
		assert.NotEmpty(t, c.Title)
		assert.NotEmpty(t, c.Description)
		require.NotNil(t, c.Roadmap)
		assert.Equal(t, "# Roadmap", *c.Roadmap)

		chapters := c.ChapterList()
		require.GreaterOrEqual(t, len(chapters), 10)

		seen := map[uuid.UUID]bool{}
		total, subtopics := 0, 0
		for _, ch := range chapters {
			assert.GreaterOrEqual(t, len(ch.Subtopics), 3)
			assert.False(t, seen[ch.ID])
			seen[ch.ID] = true
			for _, st := range ch.Subtopics {
				assert.False(t, seen[st.ID])
				seen[st.ID] = true
				assert.True(t, st.Difficulty.IsValid())
				total += st.EstimatedTime
				subtopics++
			}
		}

		meta := c.Metadata.Data()
		assert.Equal(t, total, meta.TotalDuration)
		assert.Equal(t, 10, meta.TotalChapters)
		assert.Equal(t, subtopics, meta.TotalSubtopics)
		histogram := 0
		for _, n := range meta.DifficultyDistribution {
			histogram += n
		}
		assert.Equal(t, subtopics, histogram)

		assert.Len(t, c.Glossary.Data(), 1)
		assert.Len(t, c.Resources.Data().Videos, 1)
		assert.Len(t, c.Resources.Data().Articles, 1)

		stored, err := f.repo.GetByID(ctx, c.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, c.ChapterList(), stored.ChapterList())
	})

	t.Run("EmptyTopic", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Generate(ctx, owner, course.GenerateCourseDTO{Topic: "   "})
		assert.ErrorIs(t, err, course.ErrTopicRequired)
		assert.Equal(t, 400, apperr.Status(err))
	})

	t.Run("OutlineFailure", func(t *testing.T) {
		f := newFixture(t)
		f.gen.outlineErr = apperr.Generation("failed to parse course structure from AI response", errors.New("bad json"))

		_, err := f.svc.Generate(ctx, owner, course.GenerateCourseDTO{Topic: "Go"})
		assert.Equal(t, 500, apperr.Status(err))
		assert.Equal(t, 0, f.seeder.calls)
	})

	t.Run("RoadmapFailureAborts", func(t *testing.T) {
		f := newFixture(t)
		f.gen.roadmapErr = apperr.Generation("failed to generate content", errors.New("timeout"))

		_, err := f.svc.Generate(ctx, owner, course.GenerateCourseDTO{Topic: "Go"})
		require.Error(t, err)

		courses, err := f.repo.ListByUser(ctx, owner)
		require.NoError(t, err)
		assert.Empty(t, courses)
	})

	t.Run("SeedFailureRollsBack", func(t *testing.T) {
		f := newFixture(t)
		f.seeder.err = errors.New("progress insert failed")

		_, err := f.svc.Generate(ctx, owner, course.GenerateCourseDTO{Topic: "Go"})
		require.Error(t, err)

		courses, err := f.repo.ListByUser(ctx, owner)
		require.NoError(t, err)
		assert.Empty(t, courses)
	})
}

func TestGetAndList(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner, stranger := uuid.New(), uuid.New()

	c, err := f.svc.Generate(ctx, owner, course.GenerateCourseDTO{Topic: "Go"})
	require.NoError(t, err)

	t.Run("RepeatedGetIsStable", func(t *testing.T) {
		a, err := f.svc.Get(ctx, owner, c.ID)
		require.NoError(t, err)
		b, err := f.svc.Get(ctx, owner, c.ID)
		require.NoError(t, err)

		ja, _ := json.Marshal(a.ChapterList())
		jb, _ := json.Marshal(b.ChapterList())
		assert.JSONEq(t, string(ja), string(jb))
	})

	t.Run("OtherOwnerIsNotFound", func(t *testing.T) {
		_, err := f.svc.Get(ctx, stranger, c.ID)
		assert.ErrorIs(t, err, course.ErrCourseNotFound)
	})

	t.Run("UnknownCourse", func(t *testing.T) {
		_, err := f.svc.Get(ctx, owner, uuid.New())
		assert.Equal(t, 404, apperr.Status(err))
	})

	t.Run("ListIsScopedToOwner", func(t *testing.T) {
		mine, err := f.svc.List(ctx, owner)
		require.NoError(t, err)
		assert.Len(t, mine, 1)

		theirs, err := f.svc.List(ctx, stranger)
		require.NoError(t, err)
		assert.NotNil(t, theirs)
		assert.Empty(t, theirs)
	})
}

func TestGenerateSubtopicContent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner := uuid.New()

	c, err := f.svc.Generate(ctx, owner, course.GenerateCourseDTO{Topic: "Go"})
	require.NoError(t, err)
	target := c.ChapterList()[2].Subtopics[1]

	t.Run("StoresContentAndEnrichment", func(t *testing.T) {
		resp, err := f.svc.GenerateSubtopicContent(ctx, owner, c.ID, target.ID)
		require.NoError(t, err)
		assert.Equal(t, target.ID, resp.SubtopicID)
		assert.Equal(t, "## Lesson on "+target.Title, resp.Content)
		assert.Len(t, resp.Videos, 1)
		assert.Equal(t, "Go "+target.Title, resp.Videos[0].Title)

		require.Len(t, f.gen.lessons, 1)
		assert.Equal(t, "Chapter 3", f.gen.lessons[0].ChapterTitle)

		stored, err := f.repo.GetByID(ctx, c.ID)
		require.NoError(t, err)
		st := stored.ChapterList()[2].Subtopics[1]
		require.NotNil(t, st.Content)
		assert.Equal(t, resp.Content, *st.Content)
		assert.Len(t, st.Articles, 1)
		assert.Nil(t, stored.ChapterList()[0].Subtopics[0].Content)
	})

	t.Run("UnknownSubtopic", func(t *testing.T) {
		_, err := f.svc.GenerateSubtopicContent(ctx, owner, c.ID, uuid.New())
		assert.ErrorIs(t, err, course.ErrSubtopicNotFound)
	})

	t.Run("KeepsConcurrentChapterFlags", func(t *testing.T) {
		f.gen.onContent = func() {
			current, err := f.repo.GetByID(ctx, c.ID)
			if !assert.NoError(t, err) {
				return
			}
			chapters := current.ChapterList()
			score := 80
			chapters[1].QuizCompleted = true
			chapters[1].QuizScore = &score
			assert.NoError(t, f.repo.UpdateChapters(ctx, c.ID, chapters))
		}
		defer func() { f.gen.onContent = nil }()

		other := c.ChapterList()[1].Subtopics[0]
		_, err := f.svc.GenerateSubtopicContent(ctx, owner, c.ID, other.ID)
		require.NoError(t, err)

		stored, err := f.repo.GetByID(ctx, c.ID)
		require.NoError(t, err)
		chapter := stored.ChapterList()[1]
		assert.True(t, chapter.QuizCompleted)
		require.NotNil(t, chapter.QuizScore)
		assert.Equal(t, 80, *chapter.QuizScore)
		assert.NotNil(t, chapter.Subtopics[0].Content)
		assert.NotNil(t, stored.ChapterList()[2].Subtopics[1].Content)
	})

	t.Run("GenerationFailureLeavesCourseUntouched", func(t *testing.T) {
		f.gen.contentErr = apperr.Generation("failed to generate content", errors.New("boom"))
		defer func() { f.gen.contentErr = nil }()

		other := c.ChapterList()[0].Subtopics[0]
		_, err := f.svc.GenerateSubtopicContent(ctx, owner, c.ID, other.ID)
		assert.Equal(t, 500, apperr.Status(err))

		stored, err := f.repo.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Nil(t, stored.ChapterList()[0].Subtopics[0].Content)
	})
}

func TestRequireSubtopic(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	f := newFixture(t)

	c, err := f.svc.Generate(ctx, owner, course.GenerateCourseDTO{Topic: "Machine Learning"})
	require.NoError(t, err)
	subtopic := c.ChapterList()[0].Subtopics[0].ID

	assert.NoError(t, f.svc.RequireSubtopic(ctx, owner, c.ID, subtopic))
	assert.ErrorIs(t, f.svc.RequireSubtopic(ctx, owner, c.ID, uuid.New()), course.ErrSubtopicNotFound)
	assert.ErrorIs(t, f.svc.RequireSubtopic(ctx, uuid.New(), c.ID, subtopic), course.ErrCourseNotFound)
}

func TestCachedRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	store := cache.NewMemoryStore()
	repo := course.NewCachedRepository(course.NewRepository(db), store, 0)
	svc := course.NewService(db, repo, &fakeGenerator{outline: machineLearningOutline()}, fakeSearcher{}, &fakeSeeder{})
	owner := uuid.New()

	c, err := svc.Generate(ctx, owner, course.GenerateCourseDTO{Topic: "Go"})
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	_, err = store.Get(ctx, "course:"+c.ID.String())
	require.NoError(t, err, "course should be cached after first read")

	chapters := c.ChapterList()
	chapters[0].Title = "Renamed"
	require.NoError(t, repo.UpdateChapters(ctx, c.ID, chapters))

	_, err = store.Get(ctx, "course:"+c.ID.String())
	assert.ErrorIs(t, err, cache.ErrMiss)

	fresh, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", fresh.ChapterList()[0].Title)
}

// readingStore re-reads the course whenever an entry is dropped, like a request landing right after invalidation.
type readingStore struct {
	cache.Store
	onDelete func()
}

func (s *readingStore) Delete(ctx context.Context, key string) error {
	err := s.Store.Delete(ctx, key)
	if s.onDelete != nil {
		s.onDelete()
	}
	return err
}

func newFileDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "courses.db") + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := config.Open("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&course.Course{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestCachedRepositoryTransaction(t *testing.T) {
	ctx := context.Background()
	db := newFileDB(t)
	store := &readingStore{Store: cache.NewMemoryStore()}
	repo := course.NewCachedRepository(course.NewRepository(db), store, 0)
	svc := course.NewService(db, repo, &fakeGenerator{outline: machineLearningOutline()}, fakeSearcher{}, &fakeSeeder{})

	c, err := svc.Generate(ctx, uuid.New(), course.GenerateCourseDTO{Topic: "Go"})
	require.NoError(t, err)
	store.onDelete = func() {
		_, err := repo.GetByID(ctx, c.ID)
		require.NoError(t, err)
	}

	chapters := c.ChapterList()
	chapters[0].Title = "Renamed"
	err = db.Transaction(func(tx *gorm.DB) error {
		txRepo := repo.WithTx(tx)
		if err := txRepo.UpdateChapters(ctx, c.ID, chapters); err != nil {
			return err
		}

		inside, err := txRepo.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", inside.ChapterList()[0].Title)

		outside, err := repo.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Chapter 1", outside.ChapterList()[0].Title)
		return nil
	})
	require.NoError(t, err)

	repo.Invalidate(ctx, c.ID)

	fresh, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", fresh.ChapterList()[0].Title)

	raw, err := store.Get(ctx, "course:"+c.ID.String())
	require.NoError(t, err)
	var cached course.Course
	require.NoError(t, json.Unmarshal(raw, &cached))
	assert.Equal(t, "Renamed", cached.ChapterList()[0].Title)
}

func TestParseDifficulty(t *testing.T) {
	tests := map[string]course.Difficulty{
		"Beginner":     course.Beginner,
		"intermediate": course.Intermediate,
		" ADVANCED ":   course.Advanced,
		"Expert":       course.Beginner,
		"":             course.Beginner,
	}
	for in, want := range tests {
		if got := course.ParseDifficulty(in); got != want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", in, got, want)
		}
	}
}
