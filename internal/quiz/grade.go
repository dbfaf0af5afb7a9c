package quiz

import "github.com/Vovarama1992/fine_teaching/internal/lang"

var messages = map[string][2]string{
	lang.Korean:  {"정답입니다!", "틀렸습니다."},
	lang.English: {"Correct!", "Incorrect."},
}

// Grade compares the selected answer with the supplied correct answer by
// exact string equality.
func Grade(s Submission) Result {
	ok := s.SelectedAnswer == s.CorrectAnswer

	msg := messages[lang.Profile(s.TargetLang)]
	text := msg[1]
	if ok {
		text = msg[0]
	}

	return Result{
		IsCorrect:     ok,
		ResultMessage: text,
		Explanation:   s.Explanation,
		CorrectAnswer: s.CorrectAnswer,
	}
}
