package demo

import "errors"

var (
	ErrSessionComplete   = errors.New("session already complete")
	ErrNoAnswer          = errors.New("no answer selected")
	ErrUnknownDifficulty = errors.New("unknown difficulty rating")
)

// QuizSession walks a user through the sample quiz one question at a time:
// pick an answer, submit to reveal the correct one, advance to the next.
type QuizSession struct {
	questions  []QuizQuestion
	answers    []*int
	current    int
	showResult bool
	score      int
	complete   bool
}

func NewQuizSession(questions []QuizQuestion) *QuizSession {
	return &QuizSession{
		questions: questions,
		answers:   make([]*int, len(questions)),
	}
}

func (s *QuizSession) Current() (QuizQuestion, int) {
	return s.questions[s.current], s.current
}

func (s *QuizSession) Complete() bool   { return s.complete }
func (s *QuizSession) ShowResult() bool { return s.showResult }

// SelectAnswer records the choice for the current question; ignored once the
// result is revealed.
func (s *QuizSession) SelectAnswer(option int) {
	if s.complete || s.showResult {
		return
	}
	if option < 0 || option >= len(s.questions[s.current].Options) {
		return
	}
	choice := option
	s.answers[s.current] = &choice
}

// Submit reveals the current question's result and scores it. Returns whether
// the selected answer was correct.
func (s *QuizSession) Submit() (correct bool, err error) {
	if s.complete {
		return false, ErrSessionComplete
	}
	answer := s.answers[s.current]
	if answer == nil {
		return false, ErrNoAnswer
	}

	s.showResult = true
	if *answer == s.questions[s.current].CorrectAnswer {
		s.score++
		return true, nil
	}
	return false, nil
}

// Advance moves to the next question after a reveal; on the last question it
// completes the session instead.
func (s *QuizSession) Advance() {
	if !s.showResult || s.complete {
		return
	}
	s.showResult = false
	if s.current < len(s.questions)-1 {
		s.current++
	} else {
		s.complete = true
	}
}

func (s *QuizSession) Score() QuizScore {
	return QuizScore{
		Correct:    s.score,
		Total:      len(s.questions),
		Percentage: roundPct(s.score, len(s.questions)),
	}
}

// Progress is the percentage of questions dealt with, counting a revealed
// question as done.
func (s *QuizSession) Progress() float64 {
	if len(s.questions) == 0 {
		return 0
	}
	done := s.current
	if s.showResult || s.complete {
		done++
	}
	return float64(done) / float64(len(s.questions)) * 100
}

func (s *QuizSession) Reset() {
	s.answers = make([]*int, len(s.questions))
	s.current = 0
	s.showResult = false
	s.score = 0
	s.complete = false
}

// ScoreQuiz grades a full answer sheet against the quiz; nil entries count as
// unanswered.
func ScoreQuiz(questions []QuizQuestion, answers []*int) QuizScore {
	var correct int
	for i, q := range questions {
		if i < len(answers) && answers[i] != nil && *answers[i] == q.CorrectAnswer {
			correct++
		}
	}
	return QuizScore{
		Correct:    correct,
		Total:      len(questions),
		Percentage: roundPct(correct, len(questions)),
	}
}

func roundPct(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(float64(part)/float64(total)*100 + 0.5)
}
