package demo

import (
	"reflect"
	"testing"
	"time"
)

func intPtr(i int) *int { return &i }

func TestQuizSession(t *testing.T) {
	s := NewQuizSession(SampleQuiz)

	// submitting without an answer is rejected
	if _, err := s.Submit(); err != ErrNoAnswer {
		t.Errorf("Submit() error = %v; want %v", err, ErrNoAnswer)
	}

	// q1: correct
	s.SelectAnswer(SampleQuiz[0].CorrectAnswer)
	correct, err := s.Submit()
	if err != nil || !correct {
		t.Errorf("Submit() = (%v, %v); want (true, nil)", correct, err)
	}
	// selections are frozen during the reveal
	s.SelectAnswer(0)
	s.Advance()

	// q2: wrong
	s.SelectAnswer(SampleQuiz[1].CorrectAnswer + 1)
	if correct, _ = s.Submit(); correct {
		t.Error("Submit() accepted a wrong answer as correct")
	}
	s.Advance()

	// q3: correct, completes the session
	s.SelectAnswer(SampleQuiz[2].CorrectAnswer)
	if _, err = s.Submit(); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	s.Advance()

	if !s.Complete() {
		t.Error("session not complete after the last question")
	}
	want := QuizScore{Correct: 2, Total: 3, Percentage: 67}
	if got := s.Score(); got != want {
		t.Errorf("Score() = %+v; want %+v", got, want)
	}

	s.Reset()
	if s.Complete() || s.Score().Correct != 0 || s.Progress() != 0 {
		t.Error("Reset() did not restore a fresh session")
	}
}

func TestScoreQuiz(t *testing.T) {
	tests := []struct {
		name    string
		answers []*int
		want    QuizScore
	}{
		{name: "no answers", answers: nil, want: QuizScore{Correct: 0, Total: 3, Percentage: 0}},
		{
			name:    "all correct",
			answers: []*int{intPtr(1), intPtr(2), intPtr(0)},
			want:    QuizScore{Correct: 3, Total: 3, Percentage: 100},
		},
		{
			name:    "partial with unanswered",
			answers: []*int{intPtr(1), nil, intPtr(3)},
			want:    QuizScore{Correct: 1, Total: 3, Percentage: 33},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreQuiz(SampleQuiz, tt.answers); got != tt.want {
				t.Errorf("ScoreQuiz() = %+v; want %+v", got, tt.want)
			}
		})
	}
}

func TestExamSession_scoring(t *testing.T) {
	s := NewExamSession(SampleExam, ExamDuration)

	// answer the two 15-point questions correctly, flub one
	s.SelectAnswer(1, SampleExam[1].CorrectAnswer)
	s.SelectAnswer(2, SampleExam[2].CorrectAnswer)
	s.SelectAnswer(0, SampleExam[0].CorrectAnswer+1)

	if got := s.Answered(); got != 3 {
		t.Errorf("Answered() = %d; want 3", got)
	}

	s.Submit()
	want := ExamScore{TotalScore: 30, MaxScore: 70, Percentage: 43}
	if got := s.Score(); got != want {
		t.Errorf("Score() = %+v; want %+v", got, want)
	}

	// the sheet is frozen after submission
	s.SelectAnswer(3, SampleExam[3].CorrectAnswer)
	if got := s.Score(); got != want {
		t.Errorf("Score() after late answer = %+v; want %+v", got, want)
	}
}

func TestExamSession_countdown(t *testing.T) {
	s := NewExamSession(SampleExam, 10*time.Minute)

	// burn down to just above the warning threshold
	for i := 0; i < 5*60-1; i++ {
		if s.Tick() {
			t.Fatalf("warning raised early with %s left", s.FormatTimeLeft())
		}
	}
	if got := s.FormatTimeLeft(); got != "05:01" {
		t.Errorf("FormatTimeLeft() = %q; want %q", got, "05:01")
	}

	// warning fires exactly once, at the threshold
	if !s.Tick() {
		t.Error("no warning at the 5 minute mark")
	}
	if s.Tick() {
		t.Error("warning raised twice")
	}

	// running out the clock auto-submits
	for !s.Complete() {
		s.Tick()
	}
	if s.TimeLeft() != 0 {
		t.Errorf("TimeLeft() = %d; want 0", s.TimeLeft())
	}
}

func TestDeckSession(t *testing.T) {
	s := NewDeckSession(SampleDeck)

	card, ok := s.Current()
	if !ok || card.ID != SampleDeck[0].ID {
		t.Fatalf("Current() = (%+v, %v); want first card", card, ok)
	}

	s.Flip()
	if !s.ShowAnswer() {
		t.Error("Flip() did not reveal the back")
	}

	if err := s.Next("brutal"); err != ErrUnknownDifficulty {
		t.Errorf("Next() error = %v; want %v", err, ErrUnknownDifficulty)
	}

	ratings := []string{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyEasy}
	for _, r := range ratings {
		if err := s.Next(r); err != nil {
			t.Fatalf("Next(%s) failed: %v", r, err)
		}
		if s.ShowAnswer() {
			t.Error("Next() left the answer showing")
		}
	}

	if !s.Complete() {
		t.Error("deck not complete after reviewing every card")
	}
	if err := s.Next(DifficultyEasy); err != ErrSessionComplete {
		t.Errorf("Next() after completion = %v; want %v", err, ErrSessionComplete)
	}
	if want := []int{1, 2, 3, 4}; !reflect.DeepEqual(s.Studied(), want) {
		t.Errorf("Studied() = %v; want %v", s.Studied(), want)
	}

	s.Reset()
	if s.Complete() || len(s.Studied()) != 0 {
		t.Error("Reset() did not restore a fresh session")
	}
}
