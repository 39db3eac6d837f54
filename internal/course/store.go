package course

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/rounds-golf/rounds-server/internal/scorecard"
)

// New creates a new CourseStore.
func New(db *sql.DB) CourseStore {
	return &store{
		db: db,
	}
}

func (s *store) UpsertCourse(c Course) error {
	if !c.Valid() {
		return fmt.Errorf("course %s has %d pars, want %d", c.ID, len(c.Pars), scorecard.Holes)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	parsJSON, err := json.Marshal(c.Pars)
	if err != nil {
		return fmt.Errorf("failed to marshal pars for course %s: %w", c.ID, err)
	}

	total := 0
	for _, p := range c.Pars {
		total += p
	}

	_, err = s.db.Exec(`
		INSERT INTO courses (id, name, tee_name, pars_json, total_par)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			tee_name = excluded.tee_name,
			pars_json = excluded.pars_json,
			total_par = excluded.total_par;
	`, c.ID, c.Name, c.TeeName, string(parsJSON), total)
	if err != nil {
		return fmt.Errorf("failed to upsert course %s: %w", c.ID, err)
	}
	log.Info("Upserted course", "courseID", c.ID, "name", c.Name, "totalPar", total)
	return nil
}

func (s *store) GetCourse(courseID string) (*Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getCourseLocked(courseID)
}

func (s *store) getCourseLocked(courseID string) (*Course, error) {
	var c Course
	var parsJSON string
	err := s.db.QueryRow(`
		SELECT id, name, tee_name, pars_json, total_par FROM courses WHERE id = ?
	`, courseID).Scan(&c.ID, &c.Name, &c.TeeName, &parsJSON, &c.TotalPar)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("course %s not found", courseID)
		}
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	if err := json.Unmarshal([]byte(parsJSON), &c.Pars); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pars for course %s: %w", courseID, err)
	}
	return &c, nil
}

func (s *store) GetAllCourses() ([]Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, tee_name, pars_json, total_par FROM courses ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []Course
	for rows.Next() {
		var c Course
		var parsJSON string
		if err := rows.Scan(&c.ID, &c.Name, &c.TeeName, &parsJSON, &c.TotalPar); err != nil {
			log.Error("Failed to scan course row", "error", err)
			continue
		}
		if err := json.Unmarshal([]byte(parsJSON), &c.Pars); err != nil {
			log.Error("Failed to unmarshal course pars", "courseID", c.ID, "error", err)
			continue
		}
		courses = append(courses, c)
	}
	return courses, nil
}

// ParLookup returns a closure over the course's pars. The returned function
// reports 0 for hole numbers outside 1-18, matching the scorecard contract.
func (s *store) ParLookup(courseID string) (scorecard.ParLookup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, err := s.getCourseLocked(courseID)
	if err != nil {
		return nil, err
	}

	pars := make([]int, len(c.Pars))
	copy(pars, c.Pars)
	return func(hole int) int {
		if hole < 1 || hole > len(pars) {
			return 0
		}
		return pars[hole-1]
	}, nil
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM courses"); err != nil {
		log.Error("Failed to clear courses", "error", err)
	}
}
