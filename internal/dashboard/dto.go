package dashboard

import (
	"time"

	"github.com/google/uuid"
)

type Stats struct {
	TotalCourses     int     `json:"total_courses"`
	CompletedCourses int     `json:"completed_courses"`
	TotalStudyTime   int     `json:"total_study_time"`
	AverageProgress  float64 `json:"average_progress"`
}

type CourseCard struct {
	CourseID           uuid.UUID `json:"course_id"`
	Title              string    `json:"title"`
	Topic              string    `json:"topic"`
	Description        string    `json:"description"`
	TotalChapters      int       `json:"total_chapters"`
	CompletedChapters  int       `json:"completed_chapters"`
	TotalSubtopics     int       `json:"total_subtopics"`
	CompletedSubtopics int       `json:"completed_subtopics"`
	Progress           float64   `json:"progress"`
	StudyTime          int       `json:"study_time"`
	LastAccessed       time.Time `json:"last_accessed"`
	CreatedAt          time.Time `json:"created_at"`
}

type DashboardResponse struct {
	Stats          Stats        `json:"stats"`
	Courses        []CourseCard `json:"courses"`
	RecentActivity []CourseCard `json:"recent_activity"`
}
