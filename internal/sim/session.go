package sim

// Session spans every round of one process and owns the high score.
type Session struct {
	highScore int
}

// NewSession starts with a zero high score.
func NewSession() *Session {
	return &Session{}
}

// HighScore returns the best score recorded so far.
func (s *Session) HighScore() int { return s.highScore }

// Record raises the high score to score if it is higher and returns the
// resulting high score.
func (s *Session) Record(score int) int {
	if score > s.highScore {
		s.highScore = score
	}
	return s.highScore
}
