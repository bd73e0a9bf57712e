package demo

// DeckSession is the flashcard review flow: look at the front, flip, rate
// how it went, move on. No spaced-repetition math lives here; the rating
// only picks the toast the UI shows.
type DeckSession struct {
	cards      []Flashcard
	current    int
	showAnswer bool
	studied    []int
}

func NewDeckSession(cards []Flashcard) *DeckSession {
	return &DeckSession{cards: cards}
}

// Complete reports whether every card has been reviewed.
func (s *DeckSession) Complete() bool {
	return s.current >= len(s.cards)
}

func (s *DeckSession) ShowAnswer() bool { return s.showAnswer }
func (s *DeckSession) Studied() []int   { return s.studied }

func (s *DeckSession) Current() (Flashcard, bool) {
	if s.Complete() {
		return Flashcard{}, false
	}
	return s.cards[s.current], true
}

// Flip toggles between the card's front and back.
func (s *DeckSession) Flip() {
	if s.Complete() {
		return
	}
	s.showAnswer = !s.showAnswer
}

// Next records the rating for the current card and advances; after the last
// card the session is complete.
func (s *DeckSession) Next(difficulty string) error {
	if s.Complete() {
		return ErrSessionComplete
	}
	switch difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return ErrUnknownDifficulty
	}

	s.studied = append(s.studied, s.cards[s.current].ID)
	s.current++
	s.showAnswer = false
	return nil
}

// Progress is the percentage of the deck reached so far.
func (s *DeckSession) Progress() float64 {
	if len(s.cards) == 0 {
		return 0
	}
	pos := s.current + 1
	if pos > len(s.cards) {
		pos = len(s.cards)
	}
	return float64(pos) / float64(len(s.cards)) * 100
}

func (s *DeckSession) Reset() {
	s.current = 0
	s.showAnswer = false
	s.studied = nil
}
