// Package demo holds the scripted content and state machines behind the
// feature showcase panels (quiz, flashcards, mock exam, chat). Everything
// here is fixed sample data: the panels illustrate the product, they do not
// generate anything.
package demo

type QuizQuestion struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

type ExamQuestion struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
	Points        int      `json:"points"`
}

// Flashcard difficulty grades, as the reviewer rates them.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type Flashcard struct {
	ID         int    `json:"id"`
	Front      string `json:"front"`
	Back       string `json:"back"`
	Difficulty string `json:"difficulty"`
}

// Chat message roles.
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ExamScore is the weighted result of a submitted answer sheet.
type ExamScore struct {
	TotalScore int `json:"total_score"`
	MaxScore   int `json:"max_score"`
	Percentage int `json:"percentage"` // rounded
}

// QuizScore counts plain correct answers; every quiz question weighs the same.
type QuizScore struct {
	Correct    int `json:"correct"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"` // rounded
}
