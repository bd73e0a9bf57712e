package demo

import (
	"fmt"
	"time"
)

// ExamSession is the timed mock exam: an answer sheet over weighted
// questions, a per-second countdown, a one-shot low-time warning, and
// auto-submit when the clock runs out. The countdown only moves when Tick is
// called, so the owning layer controls (and can cancel) the pacing.
type ExamSession struct {
	questions []ExamQuestion
	answers   []*int
	current   int
	timeLeft  int // seconds
	complete  bool
	warned    bool
}

func NewExamSession(questions []ExamQuestion, duration time.Duration) *ExamSession {
	return &ExamSession{
		questions: questions,
		answers:   make([]*int, len(questions)),
		timeLeft:  int(duration / time.Second),
	}
}

func (s *ExamSession) Complete() bool { return s.complete }
func (s *ExamSession) TimeLeft() int  { return s.timeLeft }

func (s *ExamSession) Current() (ExamQuestion, int) {
	return s.questions[s.current], s.current
}

// SelectAnswer records a choice on the answer sheet; the sheet stays editable
// until submission.
func (s *ExamSession) SelectAnswer(question, option int) {
	if s.complete || question < 0 || question >= len(s.questions) {
		return
	}
	if option < 0 || option >= len(s.questions[question].Options) {
		return
	}
	choice := option
	s.answers[question] = &choice
}

// GoTo jumps the question navigator.
func (s *ExamSession) GoTo(question int) {
	if s.complete || question < 0 || question >= len(s.questions) {
		return
	}
	s.current = question
}

// Tick burns one second off the clock. It reports true exactly once, when
// the remaining time first drops to the warning threshold. Hitting zero
// submits the exam.
func (s *ExamSession) Tick() (warning bool) {
	if s.complete || s.timeLeft <= 0 {
		return false
	}
	s.timeLeft--
	if s.timeLeft == 0 {
		s.Submit()
		return false
	}
	if !s.warned && s.timeLeft <= int(ExamWarningThreshold/time.Second) {
		s.warned = true
		return true
	}
	return false
}

func (s *ExamSession) Submit() {
	s.complete = true
}

func (s *ExamSession) Score() ExamScore {
	return ScoreExam(s.questions, s.answers)
}

// Answered counts the sheet's filled entries.
func (s *ExamSession) Answered() int {
	var n int
	for _, a := range s.answers {
		if a != nil {
			n++
		}
	}
	return n
}

// FormatTimeLeft renders the countdown as MM:SS.
func (s *ExamSession) FormatTimeLeft() string {
	return fmt.Sprintf("%02d:%02d", s.timeLeft/60, s.timeLeft%60)
}

// ScoreExam grades an answer sheet with per-question weights; nil entries
// count as unanswered.
func ScoreExam(questions []ExamQuestion, answers []*int) ExamScore {
	var total, max int
	for i, q := range questions {
		max += q.Points
		if i < len(answers) && answers[i] != nil && *answers[i] == q.CorrectAnswer {
			total += q.Points
		}
	}
	return ExamScore{
		TotalScore: total,
		MaxScore:   max,
		Percentage: roundPct(total, max),
	}
}
