package progress

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/coursegen/internal/apperr"
	"github.com/saulo-duarte/coursegen/internal/config"
	"github.com/saulo-duarte/coursegen/internal/course"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrNegativeStudyTime = apperr.Validation("study_time must not be negative")

type Service interface {
	Update(ctx context.Context, userID uuid.UUID, dto UpdateProgressDTO) (*UserProgress, error)
	Get(ctx context.Context, userID, courseID uuid.UUID) (*UserProgress, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]UserProgress, error)
	// RecordQuizScore stores score under key when a record exists; it reports whether anything was written.
	RecordQuizScore(ctx context.Context, tx *gorm.DB, userID, courseID uuid.UUID, key string, score int) (bool, error)
}

type service struct {
	db      *gorm.DB
	repo    Repository
	courses course.Repository
}

func NewService(db *gorm.DB, repo Repository, courses course.Repository) Service {
	return &service{db: db, repo: repo, courses: courses}
}

func ownedCourse(ctx context.Context, courses course.Repository, userID, courseID uuid.UUID) (*course.Course, error) {
	c, err := courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if c == nil || c.UserID != userID {
		return nil, course.ErrCourseNotFound
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, userID uuid.UUID, dto UpdateProgressDTO) (*UserProgress, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{"user_id": userID, "course_id": dto.CourseID})

	if dto.StudyTime < 0 {
		return nil, ErrNegativeStudyTime
	}

	var (
		result      *UserProgress
		wroteCourse bool
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		courses := s.courses.WithTx(tx)
		repo := s.repo.WithTx(tx)

		c, err := ownedCourse(ctx, courses, userID, dto.CourseID)
		if err != nil {
			return err
		}
		chapters := c.ChapterList()

		currentChapter := dto.ChapterID
		if dto.SubtopicID != nil {
			ci, _, ok := course.LocateSubtopic(chapters, *dto.SubtopicID)
			if !ok {
				return course.ErrSubtopicNotFound
			}
			if currentChapter == nil {
				id := chapters[ci].ID
				currentChapter = &id
			}
		}
		if dto.ChapterID != nil {
			if _, ok := course.LocateChapter(chapters, *dto.ChapterID); !ok {
				return course.ErrChapterNotFound
			}
		}

		p, err := repo.GetByUserAndCourse(ctx, userID, c.ID)
		if err != nil {
			return err
		}
		created := p == nil
		if created {
			p = NewRecord(userID, c.ID)
		}

		now := time.Now().UTC()
		p.StudyTime += dto.StudyTime
		p.LastAccessed = now
		if currentChapter != nil {
			p.CurrentChapterID = currentChapter
		}

		completed := p.CompletedSubtopics.Data()
		if dto.SubtopicID != nil {
			p.CurrentSubtopicID = dto.SubtopicID
			if !contains(completed, *dto.SubtopicID) {
				completed = append(completed, *dto.SubtopicID)
			}
		}
		if completed == nil {
			completed = []uuid.UUID{}
		}
		p.CompletedSubtopics = datatypes.NewJSONType(completed)

		changed := applyCompletion(p, chapters)
		justCompleted := p.TotalProgress >= 100 && p.CompletedAt == nil
		if justCompleted {
			p.CompletedAt = &now
		}

		if created {
			err = repo.Create(ctx, p)
		} else {
			err = repo.Save(ctx, p)
		}
		if err != nil {
			return err
		}

		if changed || justCompleted {
			fields := map[string]interface{}{"chapters": datatypes.NewJSONType(chapters)}
			if justCompleted && c.CompletedAt == nil {
				fields["completed_at"] = now
			}
			if err := courses.Update(ctx, c.ID, fields); err != nil {
				return err
			}
			wroteCourse = true
		}

		result = p
		return nil
	})
	if err != nil {
		if !apperr.HasCode(err, apperr.CodeNotFound) {
			log.WithError(err).Error("Failed to update progress")
		}
		return nil, err
	}
	if wroteCourse {
		s.courses.Invalidate(ctx, dto.CourseID)
	}

	log.Debugf("Progress updated to %.2f%%", result.TotalProgress)
	return result, nil
}

// applyCompletion recomputes total progress and completed chapters from the completed subtopic set,
// mirroring the flags onto chapters in place. It reports whether any chapter flag changed.
func applyCompletion(p *UserProgress, chapters []course.Chapter) bool {
	done := make(map[uuid.UUID]bool)
	for _, id := range p.CompletedSubtopics.Data() {
		done[id] = true
	}

	completedChapters := p.CompletedChapters.Data()
	if completedChapters == nil {
		completedChapters = []uuid.UUID{}
	}

	changed := false
	total, finished := 0, 0
	for i := range chapters {
		ch := &chapters[i]
		all := len(ch.Subtopics) > 0
		for j := range ch.Subtopics {
			st := &ch.Subtopics[j]
			total++
			if done[st.ID] {
				finished++
				if !st.Completed {
					st.Completed = true
					changed = true
				}
			} else {
				all = false
			}
		}
		if all {
			if !ch.Completed {
				ch.Completed = true
				changed = true
			}
			if !contains(completedChapters, ch.ID) {
				completedChapters = append(completedChapters, ch.ID)
			}
		}
	}

	p.CompletedChapters = datatypes.NewJSONType(completedChapters)
	p.TotalProgress = percentage(finished, total)
	return changed
}

func percentage(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(n)/float64(total)*10000) / 100
}

// Get returns the caller's record for an owned course, or a zero record when none exists yet.
func (s *service) Get(ctx context.Context, userID, courseID uuid.UUID) (*UserProgress, error) {
	if _, err := ownedCourse(ctx, s.courses, userID, courseID); err != nil {
		return nil, err
	}
	p, err := s.repo.GetByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load progress")
		return nil, err
	}
	if p == nil {
		return Zero(userID, courseID), nil
	}
	return p, nil
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]UserProgress, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) RecordQuizScore(ctx context.Context, tx *gorm.DB, userID, courseID uuid.UUID, key string, score int) (bool, error) {
	repo := s.repo
	if tx != nil {
		repo = repo.WithTx(tx)
	}

	p, err := repo.GetByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		return false, err
	}
	if p == nil {
		return false, nil
	}

	scores := p.Scores()
	scores[key] = score
	p.QuizScores = datatypes.NewJSONType(scores)
	p.LastAccessed = time.Now().UTC()
	if err := repo.Save(ctx, p); err != nil {
		return false, err
	}
	return true, nil
}
