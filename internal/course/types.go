package course

import (
	"database/sql"
	"sync"

	"github.com/rounds-golf/rounds-server/internal/scorecard"
)

// store handles all database operations for courses.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Course represents a golf course layout from a given set of tees.
type Course struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	TeeName  string `json:"tee_name"`
	Pars     []int  `json:"pars"`
	TotalPar int    `json:"total_par"`
}

// Valid reports whether the course carries a full set of hole pars.
func (c Course) Valid() bool {
	return len(c.Pars) == scorecard.Holes
}
