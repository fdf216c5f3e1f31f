package kokaton

import "fmt"

// Score counts destroyed bombs. It only ever goes up.
type Score struct {
	value int
}

// Inc adds one kill.
func (s *Score) Inc() { s.value++ }

// Value returns the current count.
func (s *Score) Value() int { return s.value }

// Label formats the score for display, e.g. "Score: 3".
func (s *Score) Label(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, s.value)
}
