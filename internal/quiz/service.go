package quiz

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/coursegen/internal/apperr"
	"github.com/saulo-duarte/coursegen/internal/config"
	"github.com/saulo-duarte/coursegen/internal/course"
	"github.com/saulo-duarte/coursegen/internal/generator"
	"github.com/saulo-duarte/coursegen/internal/progress"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrQuizNotFound = apperr.NotFound("Quiz not found")

type QuizService interface {
	GenerateChapterQuiz(ctx context.Context, userID, courseID, chapterID uuid.UUID) (*Quiz, error)
	GetChapterQuiz(ctx context.Context, userID, courseID, chapterID uuid.UUID) (*Quiz, error)
	GenerateFinalQuiz(ctx context.Context, userID, courseID uuid.UUID) (*Quiz, error)
	GetFinalQuiz(ctx context.Context, userID, courseID uuid.UUID) (*Quiz, error)
	Submit(ctx context.Context, userID uuid.UUID, dto SubmitQuizDTO) (*SubmitResult, error)
}

type quizService struct {
	db         *gorm.DB
	repo       QuizRepository
	courses    course.Service
	courseRepo course.Repository
	progress   progress.Service
	gen        generator.Generator
}

func NewService(
	db *gorm.DB,
	repo QuizRepository,
	courses course.Service,
	courseRepo course.Repository,
	progressService progress.Service,
	gen generator.Generator,
) QuizService {
	return &quizService{
		db:         db,
		repo:       repo,
		courses:    courses,
		courseRepo: courseRepo,
		progress:   progressService,
		gen:        gen,
	}
}

func newQuiz(courseID uuid.UUID, chapterID *uuid.UUID, kind Kind, drafts []generator.QuestionDraft) *Quiz {
	questions := make([]Question, 0, len(drafts))
	for _, d := range drafts {
		questions = append(questions, Question{
			ID:            uuid.New(),
			Question:      d.Question,
			Options:       d.Options,
			CorrectAnswer: int(d.CorrectAnswer),
			Explanation:   d.Explanation,
		})
	}
	return &Quiz{
		ID:        uuid.New(),
		CourseID:  courseID,
		ChapterID: chapterID,
		Kind:      kind,
		Questions: datatypes.NewJSONType(questions),
		CreatedAt: time.Now().UTC(),
	}
}

func (s *quizService) GenerateChapterQuiz(ctx context.Context, userID, courseID, chapterID uuid.UUID) (*Quiz, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{"course_id": courseID, "chapter_id": chapterID})

	c, err := s.courses.Get(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	chapters := c.ChapterList()
	ci, ok := course.LocateChapter(chapters, chapterID)
	if !ok {
		return nil, course.ErrChapterNotFound
	}

	ch := chapters[ci]
	titles := make([]string, 0, len(ch.Subtopics))
	for _, st := range ch.Subtopics {
		titles = append(titles, st.Title)
	}

	drafts, err := s.gen.ChapterQuiz(ctx, generator.ChapterQuizRequest{
		Topic:        c.Topic,
		ChapterTitle: ch.Title,
		Subtopics:    titles,
	})
	if err != nil {
		return nil, err
	}

	q := newQuiz(c.ID, &chapterID, KindChapter, drafts)
	if err := s.repo.Replace(ctx, q); err != nil {
		log.WithError(err).Error("Failed to store chapter quiz")
		return nil, err
	}

	log.WithField("quiz_id", q.ID).Infof("Chapter quiz generated with %d questions", len(drafts))
	return q, nil
}

func (s *quizService) GetChapterQuiz(ctx context.Context, userID, courseID, chapterID uuid.UUID) (*Quiz, error) {
	if _, err := s.courses.Get(ctx, userID, courseID); err != nil {
		return nil, err
	}
	return s.current(ctx, courseID, &chapterID)
}

func (s *quizService) GenerateFinalQuiz(ctx context.Context, userID, courseID uuid.UUID) (*Quiz, error) {
	log := config.WithContext(ctx).WithField("course_id", courseID)

	c, err := s.courses.Get(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	chapters := c.ChapterList()
	titles := make([]string, 0, len(chapters))
	for _, ch := range chapters {
		titles = append(titles, ch.Title)
	}

	drafts, err := s.gen.FinalQuiz(ctx, generator.FinalQuizRequest{
		Topic:       c.Topic,
		CourseTitle: c.Title,
		Chapters:    titles,
	})
	if err != nil {
		return nil, err
	}

	q := newQuiz(c.ID, nil, KindFinal, drafts)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Replace(ctx, q); err != nil {
			return err
		}
		return s.courseRepo.WithTx(tx).Update(ctx, c.ID, map[string]interface{}{"final_quiz_id": q.ID})
	})
	if err != nil {
		log.WithError(err).Error("Failed to store final quiz")
		return nil, err
	}
	s.courseRepo.Invalidate(ctx, c.ID)

	log.WithField("quiz_id", q.ID).Infof("Final quiz generated with %d questions", len(drafts))
	return q, nil
}

func (s *quizService) GetFinalQuiz(ctx context.Context, userID, courseID uuid.UUID) (*Quiz, error) {
	if _, err := s.courses.Get(ctx, userID, courseID); err != nil {
		return nil, err
	}
	return s.current(ctx, courseID, nil)
}

func (s *quizService) current(ctx context.Context, courseID uuid.UUID, chapterID *uuid.UUID) (*Quiz, error) {
	q, err := s.repo.GetCurrent(ctx, courseID, chapterID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load quiz")
		return nil, err
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}
	return q, nil
}

func (s *quizService) Submit(ctx context.Context, userID uuid.UUID, dto SubmitQuizDTO) (*SubmitResult, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{"user_id": userID, "quiz_id": dto.QuizID})

	q, err := s.repo.GetByID(ctx, dto.QuizID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}

	c, err := s.courses.Get(ctx, userID, q.CourseID)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}

	result := Grade(q.QuestionList(), dto.Answers)
	result.QuizID = q.ID

	key := progress.FinalQuizKey
	if q.ChapterID != nil {
		key = q.ChapterID.String()
	}

	wroteCourse := false
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recorded, err := s.progress.RecordQuizScore(ctx, tx, userID, c.ID, key, result.Score)
		if err != nil {
			return err
		}
		if !recorded {
			log.Debug("No progress record, quiz score not stored")
		}

		if q.Kind != KindChapter || q.ChapterID == nil {
			return nil
		}
		courses := s.courseRepo.WithTx(tx)
		current, err := courses.GetByID(ctx, c.ID)
		if err != nil || current == nil {
			return err
		}
		chapters := current.ChapterList()
		ci, ok := course.LocateChapter(chapters, *q.ChapterID)
		if !ok {
			return nil
		}
		score := result.Score
		chapters[ci].QuizCompleted = true
		chapters[ci].QuizScore = &score
		if err := courses.UpdateChapters(ctx, c.ID, chapters); err != nil {
			return err
		}
		wroteCourse = true
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to record quiz result")
		return nil, err
	}
	if wroteCourse {
		s.courseRepo.Invalidate(ctx, c.ID)
	}

	log.Infof("Quiz submitted: score %d, passed %t", result.Score, result.Passed)
	return result, nil
}
