package dashboard_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/coursegen/internal/course"
	"github.com/saulo-duarte/coursegen/internal/dashboard"
	"github.com/saulo-duarte/coursegen/internal/progress"
	"gorm.io/datatypes"
)

type fakeCourses struct {
	course.Service
	list []course.Course
}

func (f *fakeCourses) List(context.Context, uuid.UUID) ([]course.Course, error) {
	return f.list, nil
}

type fakeProgress struct {
	progress.Service
	records []progress.UserProgress
}

func (f *fakeProgress) ListByUser(context.Context, uuid.UUID) ([]progress.UserProgress, error) {
	return f.records, nil
}

func newCourse(owner uuid.UUID, title string, created time.Time) course.Course {
	chapters := []course.Chapter{{ID: uuid.New(), Subtopics: []course.Subtopic{{ID: uuid.New()}, {ID: uuid.New()}}}}
	return course.Course{
		ID:        uuid.New(),
		UserID:    owner,
		Title:     title,
		Chapters:  datatypes.NewJSONType(chapters),
		Metadata:  datatypes.NewJSONType(course.ComputeMetadata(chapters)),
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func record(owner, courseID uuid.UUID, pct float64, study int, accessed time.Time) progress.UserProgress {
	p := progress.NewRecord(owner, courseID)
	p.TotalProgress = pct
	p.StudyTime = study
	p.LastAccessed = accessed
	return *p
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	var courses []course.Course
	for i := 0; i < 7; i++ {
		courses = append(courses, newCourse(owner, fmt.Sprintf("Course %d", i), base.Add(time.Duration(i)*time.Hour)))
	}
	records := []progress.UserProgress{
		record(owner, courses[0].ID, 100, 120, base.Add(48*time.Hour)),
		record(owner, courses[1].ID, 50, 30, base.Add(72*time.Hour)),
		record(owner, courses[2].ID, 0, 0, base.Add(-time.Hour)),
	}

	svc := dashboard.NewService(&fakeCourses{list: courses}, &fakeProgress{records: records})
	resp, err := svc.Get(ctx, owner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Stats", func(t *testing.T) {
		want := dashboard.Stats{TotalCourses: 7, CompletedCourses: 1, TotalStudyTime: 150, AverageProgress: 21.43}
		if resp.Stats != want {
			t.Errorf("stats = %+v, want %+v", resp.Stats, want)
		}
	})

	t.Run("SortedByLastAccessed", func(t *testing.T) {
		if len(resp.Courses) != 7 {
			t.Fatalf("expected 7 cards, got %d", len(resp.Courses))
		}
		if resp.Courses[0].CourseID != courses[1].ID || resp.Courses[1].CourseID != courses[0].ID {
			t.Errorf("most recently accessed courses should lead, got %s then %s", resp.Courses[0].Title, resp.Courses[1].Title)
		}
		if resp.Courses[2].CourseID != courses[6].ID {
			t.Errorf("courses without progress fall back to their update time, got %s", resp.Courses[2].Title)
		}
		if resp.Courses[6].CourseID != courses[2].ID {
			t.Errorf("oldest access should be last, got %s", resp.Courses[6].Title)
		}
		for i := 1; i < len(resp.Courses); i++ {
			if resp.Courses[i].LastAccessed.After(resp.Courses[i-1].LastAccessed) {
				t.Fatalf("cards not sorted at index %d", i)
			}
		}
	})

	t.Run("RecentActivityIsTopFive", func(t *testing.T) {
		if len(resp.RecentActivity) != dashboard.RecentActivityLimit {
			t.Fatalf("expected %d recent items, got %d", dashboard.RecentActivityLimit, len(resp.RecentActivity))
		}
		for i, card := range resp.RecentActivity {
			if card.CourseID != resp.Courses[i].CourseID {
				t.Errorf("recent activity %d does not match card order", i)
			}
		}
	})

	t.Run("CardCounts", func(t *testing.T) {
		card := resp.Courses[0]
		if card.TotalSubtopics != 2 || card.TotalChapters != 1 || card.StudyTime != 30 || card.Progress != 50 {
			t.Errorf("unexpected card %+v", card)
		}
	})
}

func TestDashboardEmpty(t *testing.T) {
	svc := dashboard.NewService(&fakeCourses{}, &fakeProgress{})
	resp, err := svc.Get(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Stats.TotalCourses != 0 || resp.Stats.AverageProgress != 0 {
		t.Errorf("unexpected stats %+v", resp.Stats)
	}
	if resp.Courses == nil || resp.RecentActivity == nil {
		t.Error("empty dashboard should return empty lists, not null")
	}
}
