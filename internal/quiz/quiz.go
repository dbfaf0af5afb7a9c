package quiz

// QuestionCount is how many questions a generated quiz must contain.
const QuestionCount = 5

// Labels are the choice labels every question must use, in order.
var Labels = [...]string{"A", "B", "C", "D"}

type Question struct {
	ID          int               `json:"id"`
	Question    string            `json:"question"`
	Options     map[string]string `json:"options"`
	Correct     string            `json:"correct"`
	Explanation string            `json:"explanation"`
}

// Submission is a single graded answer. The caller supplies the correct
// answer; nothing about the quiz is kept between requests.
type Submission struct {
	QuestionID     int
	SelectedAnswer string
	CorrectAnswer  string
	Explanation    string
	TargetLang     string
}

type Result struct {
	IsCorrect     bool   `json:"is_correct"`
	ResultMessage string `json:"result_message"`
	Explanation   string `json:"explanation"`
	CorrectAnswer string `json:"correct_answer"`
}
