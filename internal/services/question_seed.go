package services

import (
	"fmt"

	"github.com/examforge/exam-portal/internal/models"
)

type seedQuestion struct {
	text       string
	options    [models.OptionCount]string
	correct    int
	difficulty models.DifficultyLevel
	subject    string
}

var defaultQuestionBank = []seedQuestion{
	{"What is the capital of France?", [4]string{"London", "Berlin", "Paris", "Madrid"}, 2, models.DifficultyEasy, "Geography"},
	{"Which planet is known as the Red Planet?", [4]string{"Venus", "Mars", "Jupiter", "Saturn"}, 1, models.DifficultyEasy, "Science"},
	{"What is 2 + 2?", [4]string{"3", "4", "5", "6"}, 1, models.DifficultyEasy, "Mathematics"},
	{"Who wrote 'Romeo and Juliet'?", [4]string{"Charles Dickens", "William Shakespeare", "Jane Austen", "Mark Twain"}, 1, models.DifficultyMedium, "Literature"},
	{"What is the largest ocean on Earth?", [4]string{"Atlantic Ocean", "Indian Ocean", "Arctic Ocean", "Pacific Ocean"}, 3, models.DifficultyEasy, "Geography"},
	{"Which programming language is known for its use in web development?", [4]string{"Python", "JavaScript", "C++", "Java"}, 1, models.DifficultyMedium, "Computer Science"},
	{"What is the chemical symbol for gold?", [4]string{"Go", "Gd", "Au", "Ag"}, 2, models.DifficultyMedium, "Chemistry"},
	{"In which year did World War II end?", [4]string{"1944", "1945", "1946", "1947"}, 1, models.DifficultyMedium, "History"},
	{"What is the square root of 64?", [4]string{"6", "7", "8", "9"}, 2, models.DifficultyEasy, "Mathematics"},
	{"Which organ in the human body produces insulin?", [4]string{"Liver", "Kidney", "Pancreas", "Heart"}, 2, models.DifficultyMedium, "Biology"},
	{"What is the smallest unit of matter?", [4]string{"Molecule", "Atom", "Electron", "Proton"}, 1, models.DifficultyMedium, "Physics"},
	{"Which continent is the Sahara Desert located on?", [4]string{"Asia", "Australia", "Africa", "South America"}, 2, models.DifficultyEasy, "Geography"},
	{"What does 'HTML' stand for?", [4]string{"High Tech Modern Language", "HyperText Markup Language", "Home Tool Markup Language", "Hyperlink and Text Markup Language"}, 1, models.DifficultyMedium, "Computer Science"},
	{"Who painted the Mona Lisa?", [4]string{"Vincent van Gogh", "Pablo Picasso", "Leonardo da Vinci", "Michelangelo"}, 2, models.DifficultyMedium, "Art"},
	{"What is the currency of Japan?", [4]string{"Yuan", "Won", "Yen", "Rupiah"}, 2, models.DifficultyEasy, "Economics"},
}

func sampleQuestions() ([]*models.Question, error) {
	questions := make([]*models.Question, 0, len(defaultQuestionBank))
	for _, sq := range defaultQuestionBank {
		q, err := models.NewQuestion(sq.text, sq.options[:], sq.correct, sq.difficulty, sq.subject)
		if err != nil {
			return nil, fmt.Errorf("invalid seed question %q: %w", sq.text, err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}
