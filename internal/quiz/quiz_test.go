package quiz

import (
	"fmt"
	"strings"
	"testing"
)

func question(id int, correct string) string {
	return fmt.Sprintf(`{"id": %d, "question": "Q%d?", "options": {"A": "one", "B": "two", "C": "three", "D": "four"}, "correct": %q, "explanation": "because"}`,
		id, id, correct)
}

func array(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = question(i+1, "B")
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func TestParseAcceptedShapes(t *testing.T) {
	tests := map[string]string{
		"bare array":      array(5),
		"fenced array":    "```json\n" + array(5) + "\n```",
		"wrapped object":  `{"questions": ` + array(5) + `}`,
		"chatty preamble": "Here is your quiz:\n" + array(5) + "\nGood luck!",
		"fenced no lang":  "```\n" + array(5) + "\n```",
		"bracket in note": "Note [1]: " + `{"questions": ` + array(5) + `}`,
		"trailing object": `{"questions": ` + array(5) + `} {end}`,
		"trailing array":  array(5) + "\n[see above]",
		"brace in string": strings.Replace(array(5), `"Q1?"`, `"What is {x] in Q1?"`, 1),
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			qs, err := Parse(raw)
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			if len(qs) != QuestionCount {
				t.Fatalf("len = %d, want %d", len(qs), QuestionCount)
			}
			for i, q := range qs {
				if q.ID != i+1 {
					t.Errorf("question %d: ID = %d", i, q.ID)
				}
				if len(q.Options) != 4 {
					t.Errorf("question %d: %d options", i, len(q.Options))
				}
				for _, l := range Labels {
					if q.Options[l] == "" {
						t.Errorf("question %d: option %s empty", i, l)
					}
				}
				if q.Correct != "B" {
					t.Errorf("question %d: Correct = %q", i, q.Correct)
				}
			}
		})
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	badOption := strings.Replace(array(5), `"D": "four"`, `"E": "four"`, 1)
	badCorrect := strings.Replace(array(5), `"correct": "B"`, `"correct": "Z"`, 1)
	emptyQuestion := strings.Replace(array(5), `"question": "Q3?"`, `"question": "  "`, 1)
	threeOptions := strings.Replace(array(5), `, "D": "four"`, ``, 1)

	tests := map[string]string{
		"not json":            "Sorry, I cannot create a quiz.",
		"truncated":           array(5)[:200],
		"four questions":      array(4),
		"six questions":       array(6),
		"unknown label":       badOption,
		"correct not a label": badCorrect,
		"blank question":      emptyQuestion,
		"three options":       threeOptions,
		"wrong types":         `[{"id": "one", "question": 5}]`,
		"empty":               "",
		"only footnotes":      "See [1] and [2] for {details}.",
		"missing closer":      strings.TrimSuffix(array(5), "]"),
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			qs, err := Parse(raw)
			if err == nil {
				t.Fatalf("expected error, got %d questions", len(qs))
			}
			if qs != nil {
				t.Errorf("partial result returned: %v", qs)
			}
		})
	}
}

func TestParseNormalizes(t *testing.T) {
	raw := strings.Replace(array(5), `"correct": "B"`, `"correct": " c "`, 1)
	raw = strings.ReplaceAll(raw, `"id": 2`, `"id": 1`)

	qs, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if qs[0].Correct != "C" {
		t.Errorf("Correct = %q, want C", qs[0].Correct)
	}
	for i, q := range qs {
		if q.ID != i+1 {
			t.Errorf("duplicate ids not renumbered: qs[%d].ID = %d", i, q.ID)
		}
	}
}

func TestGrade(t *testing.T) {
	for _, answer := range []string{"A", "B", "C", "D", "anything"} {
		r := Grade(Submission{SelectedAnswer: answer, CorrectAnswer: answer, TargetLang: "en"})
		if !r.IsCorrect || r.ResultMessage != "Correct!" {
			t.Errorf("Grade(%q,%q) = %+v", answer, answer, r)
		}
	}

	r := Grade(Submission{SelectedAnswer: "A", CorrectAnswer: "B", Explanation: "B is right", TargetLang: "en"})
	if r.IsCorrect || r.ResultMessage != "Incorrect." {
		t.Errorf("wrong answer graded as %+v", r)
	}
	if r.Explanation != "B is right" || r.CorrectAnswer != "B" {
		t.Errorf("echo fields = %+v", r)
	}
}

func TestGradeIgnoresExplanationAndUsesExactMatch(t *testing.T) {
	cases := []struct {
		selected, correct string
		want              bool
	}{
		{"A", "A", true},
		{"a", "A", false},
		{"A ", "A", false},
		{"", "A", false},
	}
	for _, c := range cases {
		for _, expl := range []string{"", "정답은 A", "the answer is " + c.selected} {
			r := Grade(Submission{SelectedAnswer: c.selected, CorrectAnswer: c.correct, Explanation: expl, TargetLang: "ko"})
			if r.IsCorrect != c.want {
				t.Errorf("Grade(%q,%q,expl=%q).IsCorrect = %v", c.selected, c.correct, expl, r.IsCorrect)
			}
		}
	}
}

func TestGradeKoreanMessages(t *testing.T) {
	ok := Grade(Submission{SelectedAnswer: "C", CorrectAnswer: "C", TargetLang: "ko"})
	if ok.ResultMessage != "정답입니다!" {
		t.Errorf("ResultMessage = %q", ok.ResultMessage)
	}
	bad := Grade(Submission{SelectedAnswer: "A", CorrectAnswer: "C", TargetLang: "ko-KR"})
	if bad.ResultMessage != "틀렸습니다." {
		t.Errorf("ResultMessage = %q", bad.ResultMessage)
	}
}
