package domain

import "fmt"

// FiveStar is a quality rating from 0 to 5.
type FiveStar int

const (
	MinFiveStar FiveStar = 0
	MaxFiveStar FiveStar = 5
)

// Valid reports whether s lies in 0..5.
func (s FiveStar) Valid() bool { return s >= MinFiveStar && s <= MaxFiveStar }

// Score is one named quality signal.
type Score struct {
	Name     string   `json:"name"`
	Category string   `json:"category,omitempty"`
	Reason   string   `json:"reason,omitempty"`
	Score    FiveStar `json:"score"`
}

// Validate rejects unnamed or out-of-range scores.
func (s Score) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: score has no name", ErrInvalidScore)
	}
	if !s.Score.Valid() {
		return fmt.Errorf("%w: %s = %d", ErrInvalidScore, s.Name, s.Score)
	}
	return nil
}

// Scores holds at most one Score per name.
type Scores map[string]Score

// Put stores s under its name, replacing any earlier score of that name.
func (sc Scores) Put(s Score) {
	sc[s.Name] = s
}

// Stars renders a FiveStar as a compact star bar.
func Stars(s FiveStar) string {
	out := make([]rune, 0, int(MaxFiveStar))
	for i := MinFiveStar; i < MaxFiveStar; i++ {
		if i < s {
			out = append(out, '★')
		} else {
			out = append(out, '☆')
		}
	}
	return string(out)
}
