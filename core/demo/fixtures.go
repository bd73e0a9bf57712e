package demo

import "time"

// Sample content shown until real course materials can drive generation.

var SampleQuiz = []QuizQuestion{
	{
		ID:       1,
		Question: "What is the primary function of photosynthesis in plants?",
		Options: []string{
			"To break down glucose for energy",
			"To convert light energy into chemical energy",
			"To absorb water from the soil",
			"To release oxygen as waste",
		},
		CorrectAnswer: 1,
		Explanation:   "Photosynthesis converts light energy into chemical energy (glucose) using CO2 and water.",
	},
	{
		ID:       2,
		Question: "Which organelle is responsible for cellular respiration?",
		Options: []string{
			"Nucleus",
			"Chloroplast",
			"Mitochondria",
			"Ribosome",
		},
		CorrectAnswer: 2,
		Explanation:   "Mitochondria are the powerhouses of the cell, responsible for cellular respiration and ATP production.",
	},
	{
		ID:       3,
		Question: "What is the chemical formula for water?",
		Options: []string{
			"H2O",
			"CO2",
			"NaCl",
			"C6H12O6",
		},
		CorrectAnswer: 0,
		Explanation:   "Water consists of two hydrogen atoms and one oxygen atom, hence H2O.",
	},
}

// ExamDuration is the mock exam's time budget; ExamWarningThreshold is when
// the session raises its one-shot "time is running out" warning.
const (
	ExamDuration         = 30 * time.Minute
	ExamWarningThreshold = 5 * time.Minute
)

var SampleExam = []ExamQuestion{
	{
		ID:       1,
		Question: "What is the primary function of chloroplasts in plant cells?",
		Options: []string{
			"Protein synthesis",
			"Photosynthesis",
			"Cellular respiration",
			"DNA storage",
		},
		CorrectAnswer: 1,
		Points:        10,
	},
	{
		ID:       2,
		Question: "Which of the following best describes the process of mitosis?",
		Options: []string{
			"Cell division that produces gametes",
			"Cell division that produces identical diploid cells",
			"The process of protein folding",
			"The breakdown of cellular waste",
		},
		CorrectAnswer: 1,
		Points:        15,
	},
	{
		ID:       3,
		Question: "In which phase of cellular respiration is the most ATP produced?",
		Options: []string{
			"Glycolysis",
			"Krebs cycle",
			"Electron transport chain",
			"Fermentation",
		},
		CorrectAnswer: 2,
		Points:        15,
	},
	{
		ID:       4,
		Question: "What is the difference between prokaryotic and eukaryotic cells?",
		Options: []string{
			"Size difference only",
			"Presence or absence of a membrane-bound nucleus",
			"Number of chromosomes",
			"Ability to reproduce",
		},
		CorrectAnswer: 1,
		Points:        20,
	},
	{
		ID:       5,
		Question: "Which molecule serves as the primary energy currency in cells?",
		Options: []string{
			"DNA",
			"RNA",
			"ATP",
			"Glucose",
		},
		CorrectAnswer: 2,
		Points:        10,
	},
}

var SampleDeck = []Flashcard{
	{
		ID:         1,
		Front:      "What is photosynthesis?",
		Back:       "The process by which plants use sunlight, carbon dioxide, and water to produce glucose and oxygen.",
		Difficulty: DifficultyMedium,
	},
	{
		ID:         2,
		Front:      "Define cellular respiration",
		Back:       "The process by which cells break down glucose and other organic molecules to release energy in the form of ATP.",
		Difficulty: DifficultyMedium,
	},
	{
		ID:         3,
		Front:      "What is the powerhouse of the cell?",
		Back:       "Mitochondria - they produce ATP through cellular respiration.",
		Difficulty: DifficultyEasy,
	},
	{
		ID:         4,
		Front:      "Explain the difference between prokaryotic and eukaryotic cells",
		Back:       "Prokaryotic cells lack a membrane-bound nucleus (bacteria), while eukaryotic cells have a nucleus enclosed by a nuclear membrane (plants, animals, fungi).",
		Difficulty: DifficultyHard,
	},
}

// SamplePanelCards is the short loop shown by the dashboard card widget.
var SamplePanelCards = []Flashcard{
	{ID: 1, Front: "Photosynthesis", Back: "The process by which plants convert light energy into chemical energy"},
	{ID: 2, Front: "Mitochondria", Back: "The powerhouse of the cell, responsible for energy production"},
	{ID: 3, Front: "DNA", Back: "Deoxyribonucleic acid - carries genetic information"},
}

var SampleChat = []ChatMessage{
	{Role: RoleUser, Text: "What is photosynthesis?"},
	{Role: RoleBot, Text: "Photosynthesis is the process by which plants convert light energy into chemical energy using chlorophyll..."},
	{Role: RoleUser, Text: "Can you quiz me on this topic?"},
	{Role: RoleBot, Text: "Sure! Here's a question: Which organelle is primarily responsible for photosynthesis?"},
}
