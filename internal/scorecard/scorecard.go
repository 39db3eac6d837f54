// Package scorecard maintains the live 18-hole score state for the two
// players in a match and derives running totals from it. It owns no par
// data; par is injected as a lookup function by the caller.
package scorecard

import (
	"errors"
	"fmt"
)

// Holes is the number of holes in a round.
const Holes = 18

// ErrInvalidHole is returned when a hole number is outside 1..18.
// Invalid holes fail fast and leave the card unchanged; they are never
// silently clamped.
var ErrInvalidHole = errors.New("invalid hole number")

// ParLookup returns the par for a 1-indexed hole. Supplied by the course
// layer; the scorecard never owns course data.
type ParLookup func(hole int) int

// side holds one player's 18 slots. A zero stroke count means the hole has
// not been entered yet; strokes are always positive once recorded.
type side [Holes]int

// Card is the per-match score state: one 18-slot sequence for the current
// user and one for the opponent. All slots start empty. A Card is not safe
// for concurrent use; only the local user mutates it.
type Card struct {
	mine     side
	opponent side
}

// New returns a card with all 36 slots empty. Cards must be created fresh
// for every live match so stale state from a previous match never carries
// over.
func New() *Card {
	return &Card{}
}

// Restore rebuilds a card from two persisted slot sequences. Slices shorter
// than 18 leave the remaining holes empty; longer ones are truncated.
func Restore(mine, opponent []int) *Card {
	c := &Card{}
	for i := 0; i < len(mine) && i < Holes; i++ {
		c.mine[i] = mine[i]
	}
	for i := 0; i < len(opponent) && i < Holes; i++ {
		c.opponent[i] = opponent[i]
	}
	return c
}

func (c *Card) sideFor(forCurrentUser bool) *side {
	if forCurrentUser {
		return &c.mine
	}
	return &c.opponent
}

// CheckHole validates a 1-indexed hole number.
func CheckHole(hole int) error {
	if hole < 1 || hole > Holes {
		return fmt.Errorf("%w: %d (must be 1-%d)", ErrInvalidHole, hole, Holes)
	}
	return nil
}

// UpdateScore records the stroke count for the given hole, overwriting any
// previously entered value. Returns ErrInvalidHole for holes outside 1..18.
func (c *Card) UpdateScore(hole, strokes int, forCurrentUser bool) error {
	if err := CheckHole(hole); err != nil {
		return err
	}
	c.sideFor(forCurrentUser)[hole-1] = strokes
	return nil
}

// Reset clears all 36 slots back to empty. Mandatory at match start.
func (c *Card) Reset() {
	c.mine = side{}
	c.opponent = side{}
}

// HoleScore returns the recorded strokes for a hole and whether it has been
// entered. Invalid holes report as not entered.
func (c *Card) HoleScore(hole int, forCurrentUser bool) (int, bool) {
	if CheckHole(hole) != nil {
		return 0, false
	}
	strokes := c.sideFor(forCurrentUser)[hole-1]
	return strokes, strokes > 0
}

// TotalScore sums all recorded strokes for the player. Empty slots
// contribute nothing; they are not zero-filled.
func (c *Card) TotalScore(forCurrentUser bool) int {
	total := 0
	for _, strokes := range c.sideFor(forCurrentUser) {
		total += strokes
	}
	return total
}

// TotalPar sums par only over holes the player has a recorded score for.
// This is "par so far", not full-course par: the asymmetric, score-driven
// definition is what makes the score-to-par figure meaningful mid-round.
func (c *Card) TotalPar(forCurrentUser bool, par ParLookup) int {
	total := 0
	for i, strokes := range c.sideFor(forCurrentUser) {
		if strokes > 0 {
			total += par(i + 1)
		}
	}
	return total
}

// ScoreToPar is TotalScore minus TotalPar over the holes played so far.
func (c *Card) ScoreToPar(forCurrentUser bool, par ParLookup) int {
	return c.TotalScore(forCurrentUser) - c.TotalPar(forCurrentUser, par)
}

// IsComplete reports whether all 18 slots are filled for the player,
// regardless of the order they were entered in.
func (c *Card) IsComplete(forCurrentUser bool) bool {
	for _, strokes := range c.sideFor(forCurrentUser) {
		if strokes == 0 {
			return false
		}
	}
	return true
}

// HolesPlayed counts the slots with a recorded score.
func (c *Card) HolesPlayed(forCurrentUser bool) int {
	played := 0
	for _, strokes := range c.sideFor(forCurrentUser) {
		if strokes > 0 {
			played++
		}
	}
	return played
}

// SideScores returns a copy of the player's 18 slots (0 = not entered),
// suitable for persisting.
func (c *Card) SideScores(forCurrentUser bool) []int {
	s := c.sideFor(forCurrentUser)
	out := make([]int, Holes)
	copy(out, s[:])
	return out
}

// FormatToPar renders a score-to-par value the way players read it:
// "E" at even par, "+N" over, "-N" under. This is a user-facing contract.
func FormatToPar(toPar int) string {
	switch {
	case toPar == 0:
		return "E"
	case toPar > 0:
		return fmt.Sprintf("+%d", toPar)
	default:
		return fmt.Sprintf("%d", toPar)
	}
}
