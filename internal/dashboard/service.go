package dashboard

import (
	"context"
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/saulo-duarte/coursegen/internal/config"
	"github.com/saulo-duarte/coursegen/internal/course"
	"github.com/saulo-duarte/coursegen/internal/progress"
)

const RecentActivityLimit = 5

type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*DashboardResponse, error)
}

type service struct {
	courses  course.Service
	progress progress.Service
}

func NewService(courses course.Service, progressService progress.Service) Service {
	return &service{courses: courses, progress: progressService}
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*DashboardResponse, error) {
	log := config.WithContext(ctx).WithField("user_id", userID)

	courses, err := s.courses.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	records, err := s.progress.ListByUser(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to load progress records")
		return nil, err
	}

	byCourse := make(map[uuid.UUID]*progress.UserProgress, len(records))
	for i := range records {
		byCourse[records[i].CourseID] = &records[i]
	}

	resp := &DashboardResponse{
		Courses:        make([]CourseCard, 0, len(courses)),
		RecentActivity: []CourseCard{},
	}
	var progressSum float64
	for i := range courses {
		c := &courses[i]
		p, ok := byCourse[c.ID]
		if !ok {
			p = progress.Zero(userID, c.ID)
			p.LastAccessed = c.UpdatedAt
		}

		card := buildCard(c, p)
		resp.Courses = append(resp.Courses, card)

		resp.Stats.TotalStudyTime += p.StudyTime
		progressSum += p.TotalProgress
		if p.TotalProgress >= 100 {
			resp.Stats.CompletedCourses++
		}
	}

	resp.Stats.TotalCourses = len(courses)
	if len(courses) > 0 {
		resp.Stats.AverageProgress = math.Round(progressSum/float64(len(courses))*100) / 100
	}

	sort.SliceStable(resp.Courses, func(i, j int) bool {
		a, b := resp.Courses[i], resp.Courses[j]
		if !a.LastAccessed.Equal(b.LastAccessed) {
			return a.LastAccessed.After(b.LastAccessed)
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	n := len(resp.Courses)
	if n > RecentActivityLimit {
		n = RecentActivityLimit
	}
	resp.RecentActivity = append(resp.RecentActivity, resp.Courses[:n]...)

	return resp, nil
}

func buildCard(c *course.Course, p *progress.UserProgress) CourseCard {
	meta := c.Metadata.Data()
	totalSubtopics := meta.TotalSubtopics
	if totalSubtopics == 0 {
		totalSubtopics = course.CountSubtopics(c.ChapterList())
	}
	totalChapters := meta.TotalChapters
	if totalChapters == 0 {
		totalChapters = len(c.ChapterList())
	}

	return CourseCard{
		CourseID:           c.ID,
		Title:              c.Title,
		Topic:              c.Topic,
		Description:        c.Description,
		TotalChapters:      totalChapters,
		CompletedChapters:  len(p.CompletedChapters.Data()),
		TotalSubtopics:     totalSubtopics,
		CompletedSubtopics: len(p.CompletedSubtopics.Data()),
		Progress:           p.TotalProgress,
		StudyTime:          p.StudyTime,
		LastAccessed:       p.LastAccessed,
		CreatedAt:          c.CreatedAt,
	}
}
