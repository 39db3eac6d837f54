package course

import "github.com/rounds-golf/rounds-server/internal/scorecard"

// CourseStore defines the interface for course persistence.
type CourseStore interface {
	UpsertCourse(c Course) error
	GetCourse(courseID string) (*Course, error)
	GetAllCourses() ([]Course, error)
	// ParLookup returns a lookup function over the course's hole pars,
	// suitable for scorecard par computations.
	ParLookup(courseID string) (scorecard.ParLookup, error)
	Clear()
}
