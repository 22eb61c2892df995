package userProfileController

import (
	"fmt"
	"math"
	"slices"
	"time"

	"learnhub/models"
)

const (
	ActivityCourseStarted     = "course_started"
	ActivityCourseCompleted   = "course_completed"
	ActivityCertificateEarned = "certificate_earned"
)

type Activity struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	CourseID  uint      `json:"course_id"`
	Timestamp time.Time `json:"timestamp"`
}

// AverageProgress is the rounded mean of progress values, 0 for none.
// Values outside 0-100 are averaged as they are.
func AverageProgress(progress []int) int {
	if len(progress) == 0 {
		return 0
	}
	sum := 0
	for _, p := range progress {
		sum += p
	}
	return int(math.Round(float64(sum) / float64(len(progress))))
}

// BuildActivityFeed merges enrollments and certificates, newest first, keeping at most limit items.
func BuildActivityFeed(enrollments []models.Enrollment, certificates []models.Certificate, limit int) []Activity {
	feed := make([]Activity, 0, len(enrollments)+len(certificates))

	for _, e := range enrollments {
		item := Activity{
			ID:        fmt.Sprintf("enrollment-%d", e.ID),
			Type:      ActivityCourseStarted,
			Message:   fmt.Sprintf("Started learning %s", courseTitle(e.Course)),
			CourseID:  e.CourseID,
			Timestamp: e.CreatedAt,
		}
		if e.IsCompleted() {
			item.Type = ActivityCourseCompleted
			item.Message = fmt.Sprintf("Completed %s", courseTitle(e.Course))
		}
		feed = append(feed, item)
	}

	for _, cert := range certificates {
		feed = append(feed, Activity{
			ID:        fmt.Sprintf("certificate-%d", cert.ID),
			Type:      ActivityCertificateEarned,
			Message:   fmt.Sprintf("Earned a certificate for %s", courseTitle(cert.Course)),
			CourseID:  cert.CourseID,
			Timestamp: cert.IssuedAt,
		})
	}

	slices.SortStableFunc(feed, func(a, b Activity) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	if len(feed) > limit {
		feed = feed[:limit]
	}
	return feed
}

func courseTitle(course *models.Course) string {
	if course == nil || course.Title == "" {
		return "a course"
	}
	return course.Title
}
